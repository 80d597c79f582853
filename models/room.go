package models

// Room is a bookable unit. RoomType holds a RoomType id but nothing checks
// that the referenced type exists.
type Room struct {
	// Seq keeps insertion order; it is never exposed.
	Seq      uint64 `json:"-" gorm:"primaryKey;autoIncrement"`
	ID       string `json:"id" gorm:"column:room_id;uniqueIndex;type:varchar(64)"`
	Name     string `json:"name"`
	RoomType string `json:"roomType" gorm:"column:room_type;index;type:varchar(64)"`
	// nil only when a room was created in lenient mode without a price
	Price *float64 `json:"price,omitempty"`
}

// CreateRoomInput is the POST /rooms payload.
type CreateRoomInput struct {
	Name     string   `json:"name" validate:"required"`
	RoomType string   `json:"roomType" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
}

// UpdateRoomInput is a partial room. Nil fields, whether absent or sent as
// JSON null, keep their stored value. There is no ID field: ids never change
// after creation.
type UpdateRoomInput struct {
	Name     *string  `json:"name"`
	RoomType *string  `json:"roomType"`
	Price    *float64 `json:"price"`
}

// Apply merges the supplied fields over r.
func (in UpdateRoomInput) Apply(r *Room) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.RoomType != nil {
		r.RoomType = *in.RoomType
	}
	if in.Price != nil {
		p := *in.Price
		r.Price = &p
	}
}

package models

// RoomType is a named category rooms may point at, e.g. "Suite".
type RoomType struct {
	Seq  uint64 `json:"-" gorm:"primaryKey;autoIncrement"`
	ID   string `json:"id" gorm:"column:room_type_id;uniqueIndex;type:varchar(64)"`
	Name string `json:"name"`
}

type CreateRoomTypeInput struct {
	Name string `json:"name" validate:"required"`
}

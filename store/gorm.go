package store

import (
	"errors"

	"gorm.io/gorm"

	"hotel-inventory/models"
)

// Gorm is a Store on top of a gorm connection. Rows come back ordered by
// their autoincrement Seq, which matches insertion order.
type Gorm struct {
	DB *gorm.DB
}

// NewGorm migrates the room tables and returns the store.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&models.RoomType{}, &models.Room{}); err != nil {
		return nil, err
	}
	return &Gorm{DB: db}, nil
}

func (g *Gorm) AddRoomType(rt models.RoomType) (models.RoomType, error) {
	rt.Seq = 0
	err := g.DB.Create(&rt).Error
	return rt, err
}

func (g *Gorm) RoomTypes() ([]models.RoomType, error) {
	types := []models.RoomType{}
	if err := g.DB.Order("seq").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (g *Gorm) AddRoom(r models.Room) (models.Room, error) {
	r.Seq = 0
	err := g.DB.Create(&r).Error
	return r, err
}

func (g *Gorm) Rooms() ([]models.Room, error) {
	rooms := []models.Room{}
	if err := g.DB.Order("seq").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (g *Gorm) FindRoom(id string) (models.Room, error) {
	return findRoom(g.DB, id)
}

func (g *Gorm) UpdateRoom(id string, fn func(*models.Room)) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		room, err := findRoom(tx, id)
		if err != nil {
			return err
		}
		seq := room.Seq
		fn(&room)
		room.ID, room.Seq = id, seq
		// Save writes every column, so a nil price stays NULL.
		return tx.Save(&room).Error
	})
}

func (g *Gorm) DeleteRoom(id string) error {
	result := g.DB.Where("room_id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func findRoom(db *gorm.DB, id string) (models.Room, error) {
	var room models.Room
	err := db.Where("room_id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, ErrNotFound
	}
	return room, err
}

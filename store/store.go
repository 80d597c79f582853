// Package store holds the room and room type collections.
//
// Collections keep insertion order. Reads return copies so callers never
// share memory with the store.
package store

import (
	"errors"
	"fmt"

	"hotel-inventory/config"
	"hotel-inventory/models"
)

var ErrNotFound = errors.New("not found")

type Store interface {
	AddRoomType(rt models.RoomType) (models.RoomType, error)
	RoomTypes() ([]models.RoomType, error)

	AddRoom(r models.Room) (models.Room, error)
	Rooms() ([]models.Room, error)
	FindRoom(id string) (models.Room, error)
	// UpdateRoom runs fn on the stored room while no other writer can touch
	// it. The room's ID is restored after fn returns.
	UpdateRoom(id string, fn func(*models.Room)) error
	DeleteRoom(id string) error
}

// Open returns the Store selected by cfg.StoreDriver.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "", config.StoreMemory:
		return NewMemory(), nil
	case config.StoreSQLite:
		db, err := config.OpenDatabase(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		return NewGorm(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

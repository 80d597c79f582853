package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotel-inventory/models"
	"hotel-inventory/store"
	"hotel-inventory/utils"
)

// RoomFilter narrows a room listing. Empty strings and nil prices mean the
// filter is absent.
type RoomFilter struct {
	Search   string
	RoomType string
	MinPrice *float64
	MaxPrice *float64
}

type RoomService struct {
	Store  store.Store
	NewID  utils.IDGenerator
	Strict bool
	// MinPriceAlone applies MinPrice even when MaxPrice is absent. When false
	// a lone MinPrice is ignored.
	MinPriceAlone bool

	validate *validator.Validate
}

func NewRoomService(st store.Store, newID utils.IDGenerator, strict, minPriceAlone bool) *RoomService {
	return &RoomService{
		Store:         st,
		NewID:         newID,
		Strict:        strict,
		MinPriceAlone: minPriceAlone,
		validate:      validator.New(),
	}
}

func (s *RoomService) Create(in models.CreateRoomInput) (models.Room, error) {
	if s.Strict {
		if err := s.validate.Struct(in); err != nil {
			return models.Room{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}
	room, err := s.Store.AddRoom(models.Room{
		ID:       s.NewID(),
		Name:     in.Name,
		RoomType: in.RoomType,
		Price:    in.Price,
	})
	if err != nil {
		log.Printf("❌ Room create failed: %v", err)
		return models.Room{}, err
	}
	log.Printf("✅ Room created id=%s name=%q roomType=%q", room.ID, room.Name, room.RoomType)
	return room, nil
}

// List returns the rooms matching f, in insertion order.
func (s *RoomService) List(f RoomFilter) ([]models.Room, error) {
	rooms, err := s.Store.Rooms()
	if err != nil {
		return nil, err
	}

	if f.Search != "" {
		rooms = keep(rooms, func(r models.Room) bool {
			return strings.Contains(r.Name, f.Search)
		})
	}
	if f.RoomType != "" {
		rooms = keep(rooms, func(r models.Room) bool {
			return r.RoomType == f.RoomType
		})
	}

	switch {
	case f.MinPrice != nil && f.MaxPrice != nil:
		lo, hi := *f.MinPrice, *f.MaxPrice
		rooms = keep(rooms, func(r models.Room) bool {
			return r.Price != nil && *r.Price >= lo && *r.Price <= hi
		})
	case f.MaxPrice != nil:
		hi := *f.MaxPrice
		rooms = keep(rooms, func(r models.Room) bool {
			return r.Price != nil && *r.Price <= hi
		})
	case f.MinPrice != nil && s.MinPriceAlone:
		lo := *f.MinPrice
		rooms = keep(rooms, func(r models.Room) bool {
			return r.Price != nil && *r.Price >= lo
		})
	}

	return rooms, nil
}

func (s *RoomService) GetByID(id string) (models.Room, error) {
	return s.Store.FindRoom(id)
}

func (s *RoomService) Update(id string, in models.UpdateRoomInput) error {
	if err := s.Store.UpdateRoom(id, in.Apply); err != nil {
		return err
	}
	log.Printf("✅ Room %s updated", id)
	return nil
}

func (s *RoomService) Delete(id string) error {
	if err := s.Store.DeleteRoom(id); err != nil {
		return err
	}
	log.Printf("✅ Room %s deleted", id)
	return nil
}

func keep(rooms []models.Room, pred func(models.Room) bool) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

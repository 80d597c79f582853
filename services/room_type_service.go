package services

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"hotel-inventory/models"
	"hotel-inventory/store"
	"hotel-inventory/utils"
)

type RoomTypeService struct {
	Store  store.Store
	NewID  utils.IDGenerator
	Strict bool

	validate *validator.Validate
}

func NewRoomTypeService(st store.Store, newID utils.IDGenerator, strict bool) *RoomTypeService {
	return &RoomTypeService{
		Store:    st,
		NewID:    newID,
		Strict:   strict,
		validate: validator.New(),
	}
}

func (s *RoomTypeService) Create(in models.CreateRoomTypeInput) (models.RoomType, error) {
	if s.Strict {
		if err := s.validate.Struct(in); err != nil {
			return models.RoomType{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}
	rt, err := s.Store.AddRoomType(models.RoomType{ID: s.NewID(), Name: in.Name})
	if err != nil {
		log.Printf("❌ RoomType create failed: %v", err)
		return models.RoomType{}, err
	}
	log.Printf("✅ RoomType created id=%s name=%q", rt.ID, rt.Name)
	return rt, nil
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	return s.Store.RoomTypes()
}

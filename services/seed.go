package services

import (
	"log"

	"hotel-inventory/models"
)

var defaultRoomTypes = []string{"Standard", "Superior", "Deluxe", "Connecting"}

// SeedRoomTypes adds the default room types when none exist yet.
func SeedRoomTypes(svc *RoomTypeService) {
	existing, err := svc.GetAll()
	if err != nil {
		log.Printf("warning: failed to read room types: %v", err)
		return
	}
	if len(existing) > 0 {
		log.Println("RoomTypes already seeded")
		return
	}
	for _, name := range defaultRoomTypes {
		if _, err := svc.Create(models.CreateRoomTypeInput{Name: name}); err != nil {
			log.Printf("warning: failed to seed room type %s: %v", name, err)
		}
	}
	log.Println("RoomTypes seeded")
}

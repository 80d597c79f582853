package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-inventory/models"
	"hotel-inventory/services"
	"hotel-inventory/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// GetRoomTypes handles GET /api/v1/rooms-types
func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rc.RoomTypeSvc.GetAll()
	if err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateRoomType handles POST /api/v1/rooms-types
func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var in models.CreateRoomTypeInput
	if err := bindJSON(c, &in); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rt, err := rc.RoomTypeSvc.Create(in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPayload) {
			utils.JSONError(c, http.StatusBadRequest, "Room type name is required.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, rt)
}

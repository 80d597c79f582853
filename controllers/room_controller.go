package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-inventory/models"
	"hotel-inventory/services"
	"hotel-inventory/store"
	"hotel-inventory/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// GET /api/v1/rooms?search=&roomType=&minPrice=&maxPrice=
// ----------------------------------------------------
func (rc *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Search:   c.Query("search"),
		RoomType: c.Query("roomType"),
	}

	var err error
	if filter.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rooms, err := rc.RoomSvc.List(filter)
	if err != nil {
		rc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// POST /api/v1/rooms
// ----------------------------------------------------
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var in models.CreateRoomInput
	if err := bindJSON(c, &in); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room, err := rc.RoomSvc.Create(in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPayload) {
			utils.JSONError(c, http.StatusBadRequest, "name, roomType and price are required.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// GET /api/v1/rooms/:roomId
// ----------------------------------------------------
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	room, err := rc.RoomSvc.GetByID(c.Param("roomId"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /api/v1/rooms/:roomId
// ----------------------------------------------------
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id := c.Param("roomId")

	var in models.UpdateRoomInput
	if err := bindJSON(c, &in); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400) for Room %s: %v", id, err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := rc.RoomSvc.Update(id, in); err != nil {
		rc.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ----------------------------------------------------
// DELETE /api/v1/rooms/:roomId
// ----------------------------------------------------
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	if err := rc.RoomSvc.Delete(c.Param("roomId")); err != nil {
		rc.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rc *RoomController) fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️ No room found with ID: %s", c.Param("roomId"))
		c.Status(http.StatusNotFound)
		return
	}
	log.Printf("❌ DB ERROR: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "Database error")
}

// priceParam returns nil when the query parameter is missing or empty.
// NaN and infinities are rejected along with non-numeric text.
func priceParam(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &v, nil
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booking-backend/apperrors"
	"booking-backend/middleware"
	"booking-backend/services"
	"booking-backend/utils"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

// GetHotels handles GET /api/hotels.
func (hc *HotelController) GetHotels(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONAppError(c, apperrors.Unauthorized("missing user"))
		return
	}

	hotels, err := hc.HotelSvc.GetHotels(c.Request.Context(), userID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetHotelRooms handles GET /api/hotels/:hotelId.
func (hc *HotelController) GetHotelRooms(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONAppError(c, apperrors.Unauthorized("missing user"))
		return
	}

	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil || hotelID == 0 {
		utils.JSONAppError(c, apperrors.BadRequest("invalid hotelId"))
		return
	}

	hotel, err := hc.HotelSvc.GetHotelWithRooms(c.Request.Context(), userID, uint(hotelID))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

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

// InputBooking is the body of POST/PUT booking requests.
type InputBooking struct {
	RoomID uint `json:"roomId" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// PostBooking handles POST /api/booking.
func (bc *BookingController) PostBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONAppError(c, apperrors.Unauthorized("missing user"))
		return
	}

	var input InputBooking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONAppError(c, apperrors.BadRequest("roomId is required"))
		return
	}

	result, err := bc.BookingSvc.Create(c.Request.Context(), input.RoomID, userID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// GetBooking handles GET /api/booking.
func (bc *BookingController) GetBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONAppError(c, apperrors.Unauthorized("missing user"))
		return
	}

	result, err := bc.BookingSvc.Find(c.Request.Context(), userID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// PutBooking handles PUT /api/booking/:bookingId.
func (bc *BookingController) PutBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONAppError(c, apperrors.Unauthorized("missing user"))
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		utils.JSONAppError(c, apperrors.BadRequest("invalid bookingId"))
		return
	}

	var input InputBooking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONAppError(c, apperrors.BadRequest("roomId is required"))
		return
	}

	result, err := bc.BookingSvc.Update(c.Request.Context(), uint(bookingID), input.RoomID, userID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

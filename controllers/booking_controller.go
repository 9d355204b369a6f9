package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"campusnest-backend/middleware"
	"campusnest-backend/services"
	"campusnest-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingPayload struct {
	MealsSelected []string `json:"mealsSelected"`
	StartDate     string   `json:"startDate" binding:"required"`
	EndDate       string   `json:"endDate" binding:"required"`
}

type SetStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// Book handles POST /bookings/book/:property_id.
func (ctrl *BookingController) Book(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("property_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	studentID := middleware.CallerID(c)

	booking, err := ctrl.BookingSvc.Create(
		studentID,
		uint(propertyID),
		payload.MealsSelected,
		payload.StartDate,
		payload.EndDate,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNotAvailable):
			utils.JSONError(c, http.StatusBadRequest, "property not available")
		case errors.Is(err, services.ErrInvalidDates):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking dates")
		default:
			log.Printf("Book error for property %d: %v", propertyID, err)
			utils.JSONError(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"message": "Booking created",
		"booking": booking,
	})
}

// ListAll handles GET /bookings (admin).
func (ctrl *BookingController) ListAll(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListAll()
	if err != nil {
		log.Printf("ListAll bookings error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// MyBookings handles GET /bookings/my (student).
func (ctrl *BookingController) MyBookings(c *gin.Context) {
	studentID := middleware.CallerID(c)

	bookings, err := ctrl.BookingSvc.ListByStudent(studentID)
	if err != nil {
		log.Printf("MyBookings error for student %d: %v", studentID, err)
		utils.JSONError(c, http.StatusInternalServerError, "server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// SetStatus handles PATCH /bookings/admin/:booking_id.
func (ctrl *BookingController) SetStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var payload SetStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.SetStatus(uint(bookingID), payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "invalid status")
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		default:
			log.Printf("SetStatus error for booking %d: %v", bookingID, err)
			utils.JSONError(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Booking " + booking.Status,
		"booking": booking,
	})
}

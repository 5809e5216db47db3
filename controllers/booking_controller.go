package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
)

type BookingController struct {
	email *models.EmailService
}

// NewBookingController accepts a nil email service; bookings still succeed,
// only the confirmation mail is skipped.
func NewBookingController(email *models.EmailService) *BookingController {
	return &BookingController{email: email}
}

// CreateBooking godoc
// @Summary Book an appointment
// @Description Validates the booking form and sends a confirmation email
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body models.BookingRequest true "Booking Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /bookings [post]
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if ctrl.email != nil {
		name := req.FirstName + " " + req.LastName
		if err := ctrl.email.SendBookingConfirmationEmail(req.Email, name, req); err != nil {
			log.Println("booking confirmation email failed:", err)
		}
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Booking received. A confirmation email is on its way.",
	})
}

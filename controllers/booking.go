package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"oviss-backend/services"
	"oviss-backend/utils"
)

// BookingController drives the booking workflow. Each endpoint maps to one
// workflow operation; GET /booking exposes the current state snapshot so a
// client can render the wizard.
type BookingController struct {
	App *services.App
}

type SelectOutletInput struct {
	OutletID string `json:"outletId" binding:"required"`
}

type SelectStylistInput struct {
	StylistID string `json:"stylistId"` // empty or "no-preference" clears
}

type SelectDateInput struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeInput struct {
	Time string `json:"time" binding:"required"`
}

// State returns the workflow snapshot: step, selections, running total and
// the valid time slots for the current stylist choice.
func (bc *BookingController) State(c *gin.Context) {
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

// Start resets every selection and enters outlet selection.
func (bc *BookingController) Start(c *gin.Context) {
	bc.App.Booking.StartNew()
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

// Reschedule pre-populates the workflow from an existing appointment.
func (bc *BookingController) Reschedule(c *gin.Context) {
	appt, ok := bc.App.Appointments.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	bc.App.Booking.StartReschedule(appt)
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

func (bc *BookingController) SelectOutlet(c *gin.Context) {
	var input SelectOutletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := bc.App.Booking.SelectOutlet(input.OutletID); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Outlet not found")
		return
	}
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

func (bc *BookingController) SelectStylist(c *gin.Context) {
	var input SelectStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := bc.App.Booking.SelectStylist(input.StylistID); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
		return
	}
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

func (bc *BookingController) SelectDate(c *gin.Context) {
	var input SelectDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := bc.App.Booking.SelectDate(input.Date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

func (bc *BookingController) SelectTime(c *gin.Context) {
	var input SelectTimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	bc.App.Booking.SelectTime(input.Time)
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

// ToggleService adds or removes one service from the selection.
func (bc *BookingController) ToggleService(c *gin.Context) {
	if err := bc.App.Booking.ToggleService(c.Param("id")); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, bc.App.Booking.Snapshot())
}

// Confirm commits the booking: add in create mode, update in reschedule
// mode. An incomplete selection leaves everything untouched.
func (bc *BookingController) Confirm(c *gin.Context) {
	user, ok := bc.App.Session.User()
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	appt, err := bc.App.Booking.Confirm(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrIncompleteBooking) {
			utils.RespondWithError(c, http.StatusBadRequest, "Select outlet, date, time and at least one service first")
			return
		}
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment no longer exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	c.JSON(http.StatusCreated, appt)
}

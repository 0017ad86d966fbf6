package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"oviss-backend/models"
	"oviss-backend/services"
	"oviss-backend/utils"
)

type AppointmentController struct {
	App *services.App
}

// AppointmentView is an appointment with its catalog references resolved
// for display. Unresolvable ids degrade to "Unknown"/"Any".
type AppointmentView struct {
	models.Appointment
	OutletName   string   `json:"outletName"`
	StylistName  string   `json:"stylistName"`
	ServiceNames []string `json:"serviceNames"`
	Total        float64  `json:"total"`
}

func (ac *AppointmentController) view(appt models.Appointment) AppointmentView {
	v := AppointmentView{Appointment: appt, OutletName: "Unknown", StylistName: "Any"}
	if outlet, ok := ac.App.Catalog.OutletByID(appt.OutletID); ok {
		v.OutletName = outlet.Name
	}
	if appt.StylistID != models.NoPreference {
		if stylist, ok := ac.App.Catalog.StylistByID(appt.StylistID); ok {
			v.StylistName = stylist.Name
		}
	}
	for _, id := range appt.ServiceIDs {
		if svc, ok := ac.App.Catalog.ServiceByID(id); ok {
			v.ServiceNames = append(v.ServiceNames, svc.Name)
			v.Total += svc.Price
		}
	}
	return v
}

// List returns the appointment collection, optionally filtered with
// ?status=upcoming.
func (ac *AppointmentController) List(c *gin.Context) {
	var appts []models.Appointment
	if c.Query("status") == models.StatusUpcoming {
		appts = ac.App.Appointments.Upcoming()
	} else {
		appts = ac.App.Appointments.All()
	}

	views := make([]AppointmentView, 0, len(appts))
	for _, a := range appts {
		views = append(views, ac.view(a))
	}
	c.JSON(http.StatusOK, views)
}

// Get returns one appointment with display fields resolved.
func (ac *AppointmentController) Get(c *gin.Context) {
	appt, ok := ac.App.Appointments.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, ac.view(appt))
}

// Cancel removes the appointment from the collection.
func (ac *AppointmentController) Cancel(c *gin.Context) {
	err := ac.App.Appointments.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

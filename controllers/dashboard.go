package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oviss-backend/models"
	"oviss-backend/services"
)

type DashboardController struct {
	App *services.App
}

type DashboardOverview struct {
	UpcomingCount     int                 `json:"upcomingCount"`
	NextAppointment   *models.Appointment `json:"nextAppointment"`
	NotificationCount int                 `json:"notificationCount"`
	FeaturedServices  []models.Service    `json:"featuredServices"`
}

// Overview returns the home-screen summary: booking counts, the next
// upcoming appointment and the service catalog highlights.
func (dc *DashboardController) Overview(c *gin.Context) {
	upcoming := dc.App.Appointments.Upcoming()

	overview := DashboardOverview{
		UpcomingCount:     len(upcoming),
		NotificationCount: dc.App.Notifier.Count(),
		FeaturedServices:  dc.App.Catalog.Services(),
	}
	if len(upcoming) > 0 {
		next := upcoming[0]
		for _, a := range upcoming[1:] {
			if a.Date < next.Date || (a.Date == next.Date && a.Time < next.Time) {
				next = a
			}
		}
		overview.NextAppointment = &next
	}

	c.JSON(http.StatusOK, overview)
}

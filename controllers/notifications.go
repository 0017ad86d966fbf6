package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oviss-backend/services"
)

type NotificationController struct {
	App *services.App
}

// List returns the notification feed, newest first.
func (nc *NotificationController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": nc.App.Notifier.List(),
		"count":         nc.App.Notifier.Count(),
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oviss-backend/services"
	"oviss-backend/utils"
)

type CatalogController struct {
	App *services.App
}

func (cc *CatalogController) Services(c *gin.Context) {
	c.JSON(http.StatusOK, cc.App.Catalog.Services())
}

func (cc *CatalogController) Stylists(c *gin.Context) {
	c.JSON(http.StatusOK, cc.App.Catalog.Stylists())
}

func (cc *CatalogController) Outlets(c *gin.Context) {
	c.JSON(http.StatusOK, cc.App.Catalog.Outlets())
}

func (cc *CatalogController) Outlet(c *gin.Context) {
	outlet, ok := cc.App.Catalog.OutletByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Outlet not found")
		return
	}
	c.JSON(http.StatusOK, outlet)
}

// Slots returns the bookable time slots, scoped to ?stylist=<id> or the
// union of every stylist's slots when absent.
func (cc *CatalogController) Slots(c *gin.Context) {
	if id := c.Query("stylist"); id != "" {
		stylist, ok := cc.App.Catalog.StylistByID(id)
		if !ok {
			utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"slots": stylist.AvailableSlots})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": cc.App.Catalog.AllSlots()})
}

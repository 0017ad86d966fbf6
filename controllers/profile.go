package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oviss-backend/models"
	"oviss-backend/services"
	"oviss-backend/utils"
)

type ProfileController struct {
	App *services.App
}

type UpdateProfileInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Gender     string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	ProfilePic string `json:"profilePic"`
}

// Get returns the current user plus visit statistics derived from the
// appointment collection.
func (pc *ProfileController) Get(c *gin.Context) {
	user, ok := pc.App.Session.User()
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	upcoming, completed := 0, 0
	for _, a := range pc.App.Appointments.All() {
		switch a.Status {
		case models.StatusUpcoming:
			upcoming++
		case models.StatusCompleted:
			completed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"stats": gin.H{
			"upcoming":  upcoming,
			"completed": completed,
		},
	})
}

// Update replaces the editable profile fields. The id and credit balance
// are kept from the existing record.
func (pc *ProfileController) Update(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, ok := pc.App.Session.User()
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Phone = input.Phone
	user.Gender = input.Gender
	user.ProfilePic = input.ProfilePic

	if err := pc.App.Session.UpdateUser(c.Request.Context(), user); err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oviss-backend/models"
	"oviss-backend/services"
	"oviss-backend/utils"
)

// AuthController implements the mock TAC login flow: request a code,
// verify it (any six digits pass), then register or resume the saved user.
type AuthController struct {
	App *services.App
}

type RequestTACInput struct {
	Identifier string `json:"identifier" binding:"required"` // phone or email
	Method     string `json:"method" binding:"required,oneof=phone email"`
}

type VerifyTACInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

type RegisterInput struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required"`
	Gender string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
}

// RequestTAC issues a verification code for the identifier. Delivery is a
// log line in demo mode; nothing about the code is remembered because
// verification is format-only.
func (ac *AuthController) RequestTAC(c *gin.Context) {
	var input RequestTACInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	identifier := strings.TrimSpace(input.Identifier)
	if input.Method == "phone" && !utils.ValidatePhone(identifier) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	code := utils.GenerateTAC()
	log.Printf("TAC for %s: %s", identifier, code)

	c.JSON(http.StatusOK, gin.H{"message": "TAC sent"})
}

// VerifyTAC accepts any six-digit code. If a saved user matches the
// identifier the session resumes immediately; otherwise the client should
// proceed to registration.
func (ac *AuthController) VerifyTAC(c *gin.Context) {
	var input VerifyTACInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateTAC(input.Code) {
		utils.RespondWithError(c, http.StatusUnauthorized, "TAC must be 6 digits")
		return
	}

	identifier := strings.TrimSpace(input.Identifier)
	if user, ok := ac.App.Session.User(); ok && (user.Phone == identifier || user.Email == identifier) {
		token, err := utils.GenerateToken(user.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "registered", "token": token, "user": user})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "new"})
}

// Register creates the user record, logs the session in and returns a
// token. Registration doubles as login; there is no password.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user := models.User{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Gender:        input.Gender,
		CreditBalance: models.DefaultCreditBalance,
	}
	ac.App.Session.Login(c.Request.Context(), user)

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Me returns the current user record.
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := ac.App.Session.User()
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session and the stored user record.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.App.Session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"invoicely/services/user"
	"invoicely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService wires the user service used by the package-level handlers.
func SetUserService(s user.UserService) {
	userService = s
}

// RegisterUserHandler handles POST /api/auth/register.
func RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req user.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := userService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("Registration failed", zap.Error(err))
		var authErr user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": authErr.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/auth/login.
func AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Authentication failed", zap.String("email", req.Email), zap.Error(err))
		var authErr user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /api/auth/me.
func GetProfileHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	usr, err := userService.GetProfile(c.Request.Context(), owner)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile", zap.String("userID", owner), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PUT /api/auth/me.
func UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var req user.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := userService.UpdateProfile(c.Request.Context(), owner, req)
	if err != nil {
		logger.Error("Failed to update profile", zap.String("userID", owner), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SignOutHandler handles POST /api/auth/logout. It revokes the presented
// bearer token.
func SignOutHandler(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing bearer token"})
		return
	}

	if err := userService.SignOut(c.Request.Context(), token); err != nil {
		utils.GetLogger().Error("Failed to sign out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

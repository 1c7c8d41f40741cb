package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cnic-auth/backend/internal/application"
	"github.com/cnic-auth/backend/internal/domain/repository"
	"github.com/cnic-auth/backend/internal/interface/middleware"
	"github.com/cnic-auth/backend/pkg/response"
)

type UserHandler struct {
	Registration *application.RegistrationService
	Auth         *application.AuthService
	Logger       *logrus.Logger
}

func NewUserHandler(reg *application.RegistrationService, auth *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Registration: reg, Auth: auth, Logger: logger}
}

type loginRequest struct {
	CNIC     string `json:"cnic" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Register POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req application.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	fieldErrs, err := h.Registration.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			response.Error(c, http.StatusBadRequest, "Email or CNIC already exists")
			return
		}
		h.Logger.WithError(err).Error("registration failed")
		response.Error(c, http.StatusInternalServerError, "registration failed")
		return
	}
	if fieldErrs != nil {
		response.FieldErrors(c, http.StatusBadRequest, fieldErrs)
		return
	}
	response.Message(c, http.StatusCreated, "User registered successfully")
}

// Login POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "cnic and password are required")
		return
	}

	res, err := h.Auth.Login(c.Request.Context(), req.CNIC, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// Identical body for unknown CNIC and wrong password.
			response.Error(c, http.StatusBadRequest, "Invalid CNIC or password")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access":  res.AccessToken,
		"refresh": res.RefreshToken,
		"user":    res.User,
	})
}

// Logout POST /api/logout (auth required)
func (h *UserHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid refresh token")
		return
	}
	if err := h.Auth.Logout(c.Request.Context(), req.Refresh); err != nil {
		if errors.Is(err, application.ErrInvalidToken) {
			response.Error(c, http.StatusBadRequest, "Invalid refresh token")
			return
		}
		// Blacklist outage, not a bad token.
		h.Logger.WithError(err).Error("logout failed")
		response.Error(c, http.StatusInternalServerError, "logout failed")
		return
	}
	response.Message(c, http.StatusResetContent, "Logged out successfully")
}

// Refresh POST /api/token/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}
	access, _, err := h.Auth.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// GetProfile GET /api/profile (auth required)
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Auth.Profile(uid)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

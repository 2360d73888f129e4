package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cuongbtq/cleanmatch-be/internal/api/dto"
	"github.com/cuongbtq/cleanmatch-be/internal/engine"
	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/gin-gonic/gin"
)

// UserHandler handles profile, payment-method and verification requests
type UserHandler struct {
	logger *slog.Logger
	engine *engine.Engine
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(deps *Dependencies) *UserHandler {
	return &UserHandler{logger: deps.Logger, engine: deps.Engine}
}

// GetUser handles GET /api/v1/users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be an integer"})
		return
	}

	user, ok := h.engine.FindUserByID(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// UpdateUser handles PUT /api/v1/users/me
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.engine.UpdateUser(sessionToken(c), engine.UpdateUserRequest{
		Name:           req.Name,
		Email:          req.Email,
		PaymentMethods: req.PaymentMethodsDomain(),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// AddPaymentMethod handles POST /api/v1/users/me/payment-methods
func (h *UserHandler) AddPaymentMethod(c *gin.Context) {
	var req dto.PaymentMethodDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.engine.AddPaymentMethod(sessionToken(c), domain.PaymentMethod{
		Type:    req.Type,
		Details: req.Details,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// RemovePaymentMethod handles DELETE /api/v1/users/me/payment-methods/:index
func (h *UserHandler) RemovePaymentMethod(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	user, err := h.engine.RemovePaymentMethod(sessionToken(c), index)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// SetVerification handles PUT /api/v1/admin/users/:user_id/verification.
// This is the integration point for the external verification authority.
func (h *UserHandler) SetVerification(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be an integer"})
		return
	}

	var req dto.SetVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.engine.SetVerificationStatus(userID, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// ListNotifications handles GET /api/v1/notifications
func (h *UserHandler) ListNotifications(c *gin.Context) {
	items, err := h.engine.ListNotifications(sessionToken(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListNotificationsResponse{
		Notifications: dto.NewNotificationDTOs(items),
	})
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if _, err := h.engine.MarkNotificationRead(sessionToken(c), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

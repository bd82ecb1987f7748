package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/webgigs/work-tracker-api/internal/errors"
	"github.com/webgigs/work-tracker-api/internal/middleware"
	"github.com/webgigs/work-tracker-api/internal/services"
)

// ClientHandler coordinates client HTTP handlers.
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

type clientRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Company    string  `json:"company"`
	Notes      string  `json:"notes"`
	HourlyRate float64 `json:"hourly_rate"`
	IsActive   *bool   `json:"is_active"`
}

func (r clientRequest) toInput() services.ClientInput {
	return services.ClientInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		Company:    r.Company,
		Notes:      r.Notes,
		HourlyRate: r.HourlyRate,
		IsActive:   r.IsActive,
	}
}

// CreateClient creates a client owned by the current user.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(userID, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ListClients returns the current user's clients.
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	clients, err := h.clientService.ListClients(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetClient returns one client.
func (h *ClientHandler) GetClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates one client.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.UpdateClient(userID, id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes one client.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client deleted successfully",
	})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/webgigs/work-tracker-api/internal/errors"
	"github.com/webgigs/work-tracker-api/internal/middleware"
	"github.com/webgigs/work-tracker-api/internal/services"
)

// TimeEntryHandler coordinates time entry HTTP handlers.
type TimeEntryHandler struct {
	entryService *services.TimeEntryService
}

// NewTimeEntryHandler creates a new TimeEntryHandler.
func NewTimeEntryHandler(entryService *services.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		entryService: entryService,
	}
}

type timeEntryRequest struct {
	Description string     `json:"description"`
	Date        time.Time  `json:"date" binding:"required"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
	Duration    float64    `json:"duration" binding:"required"`
	IsBillable  bool       `json:"is_billable"`
}

func (r timeEntryRequest) toInput() services.TimeEntryInput {
	return services.TimeEntryInput{
		Description: r.Description,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Duration:    r.Duration,
		IsBillable:  r.IsBillable,
	}
}

// CreateTimeEntry logs time against a task.
func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req timeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.entryService.CreateTimeEntry(userID, taskID, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListTimeEntries returns a task's time entries.
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entries, err := h.entryService.ListTimeEntries(userID, taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"time_entries": entries})
}

// GetTimeEntry returns one time entry.
func (h *TimeEntryHandler) GetTimeEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.entryService.GetTimeEntry(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateTimeEntry updates an entry the current user authored.
func (h *TimeEntryHandler) UpdateTimeEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req timeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.entryService.UpdateTimeEntry(userID, id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteTimeEntry removes an entry the current user authored.
func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.entryService.DeleteTimeEntry(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Time entry deleted successfully",
	})
}

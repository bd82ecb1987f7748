package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/webgigs/work-tracker-api/internal/errors"
	"github.com/webgigs/work-tracker-api/internal/middleware"
	"github.com/webgigs/work-tracker-api/internal/report"
	"github.com/webgigs/work-tracker-api/internal/services"
)

// ReportHandler coordinates report generation HTTP handlers.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// reportRequest is the shared body of every report endpoint. Dates are plain
// calendar days.
type reportRequest struct {
	TimeRange       string   `json:"time_range"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	GroupBy         string   `json:"group_by"`
	ProjectIDs      []uint64 `json:"project_ids"`
	UserIDs         []uint64 `json:"user_ids"`
	ClientIDs       []uint64 `json:"client_ids"`
	IncludeInactive bool     `json:"include_inactive"`
}

func (r reportRequest) toInput() (services.ReportRequest, error) {
	req := services.ReportRequest{
		TimeRange:       report.TimeRange(r.TimeRange),
		GroupBy:         report.GroupBy(r.GroupBy),
		ProjectIDs:      r.ProjectIDs,
		UserIDs:         r.UserIDs,
		ClientIDs:       r.ClientIDs,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return req, err
		}
		req.StartDate = &start
	}
	if r.EndDate != "" {
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return req, err
		}
		req.EndDate = &end
	}
	return req, nil
}

func (h *ReportHandler) bind(c *gin.Context) (uint64, services.ReportRequest, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, services.ReportRequest{}, false
	}

	var raw reportRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return 0, services.ReportRequest{}, false
	}

	req, err := raw.toInput()
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return 0, services.ReportRequest{}, false
	}
	return userID, req, true
}

// TimeTracking generates a time tracking report for the resolved period.
func (h *ReportHandler) TimeTracking(c *gin.Context) {
	userID, req, ok := h.bind(c)
	if !ok {
		return
	}

	out, err := h.reportService.TimeTracking(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ProjectStats generates a project statistics report.
func (h *ReportHandler) ProjectStats(c *gin.Context) {
	userID, req, ok := h.bind(c)
	if !ok {
		return
	}

	out, err := h.reportService.ProjectStats(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// TeamProductivity generates a team productivity report.
func (h *ReportHandler) TeamProductivity(c *gin.Context) {
	userID, req, ok := h.bind(c)
	if !ok {
		return
	}

	out, err := h.reportService.TeamProductivity(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ClientsFullReport exports the actor's full client tree with nested projects,
// tasks, time entries and client files.
func (h *ReportHandler) ClientsFullReport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	out, err := h.reportService.ClientsFullReport(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ClientBilling generates a client billing report.
func (h *ReportHandler) ClientBilling(c *gin.Context) {
	userID, req, ok := h.bind(c)
	if !ok {
		return
	}

	out, err := h.reportService.ClientBilling(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

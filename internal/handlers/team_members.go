package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webgigs/work-tracker-api/internal/dto"
	apierrors "github.com/webgigs/work-tracker-api/internal/errors"
	"github.com/webgigs/work-tracker-api/internal/middleware"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/services"
)

// TeamMemberHandler coordinates project team HTTP handlers.
type TeamMemberHandler struct {
	teamService *services.TeamService
}

// NewTeamMemberHandler creates a new TeamMemberHandler.
func NewTeamMemberHandler(teamService *services.TeamService) *TeamMemberHandler {
	return &TeamMemberHandler{
		teamService: teamService,
	}
}

// ListTeam returns a project's members.
func (h *TeamMemberHandler) ListTeam(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	members, err := h.teamService.ListTeam(userID, projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]dto.TeamMemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, dto.ToTeamMemberDTO(m))
	}
	c.JSON(http.StatusOK, gin.H{"members": out})
}

// ListMemberships returns the current user's project memberships.
func (h *TeamMemberHandler) ListMemberships(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	memberships, err := h.teamService.ListMemberships(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"memberships": memberships})
}

// AddMember adds a user to a project's team.
func (h *TeamMemberHandler) AddMember(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	type addMemberRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
		Role   string `json:"role"`
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.AddMember(userID, projectID, services.AddMemberInput{
		UserID: req.UserID,
		Role:   models.TeamRole(req.Role),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamMemberDTO(*member))
}

// UpdateMember changes a membership's role or active flag.
func (h *TeamMemberHandler) UpdateMember(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	type updateMemberRequest struct {
		Role     string `json:"role"`
		IsActive *bool  `json:"is_active"`
	}

	var req updateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.UpdateMember(userID, memberID, services.UpdateMemberInput{
		Role:     models.TeamRole(req.Role),
		IsActive: req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberDTO(*member))
}

// RemoveMember removes a membership.
func (h *TeamMemberHandler) RemoveMember(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(userID, memberID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Team member removed successfully",
	})
}

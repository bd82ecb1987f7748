package dto

import (
	"time"

	"github.com/webgigs/work-tracker-api/internal/models"
)

// TeamMemberDTO represents a project team member in API responses
type TeamMemberDTO struct {
	ID        uint64          `json:"id"`
	ProjectID uint64          `json:"project_id"`
	UserID    uint64          `json:"user_id"`
	Role      models.TeamRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	User      *UserDTO        `json:"user,omitempty"`
}

// ToTeamMemberDTO converts a TeamMember model to TeamMemberDTO
func ToTeamMemberDTO(member models.TeamMember) TeamMemberDTO {
	dto := TeamMemberDTO{
		ID:        member.ID,
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Role:      member.Role,
		IsActive:  member.IsActive,
		CreatedAt: member.CreatedAt,
	}

	// Include user if preloaded
	if member.User.ID != 0 {
		user := ToUserDTO(member.User)
		dto.User = &user
	}

	return dto
}

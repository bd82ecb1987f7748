package services

import (
	"errors"

	"github.com/webgigs/work-tracker-api/internal/access"
)

// Errors shared across services. The HTTP layer maps these to status codes;
// not-found sentinels stay per-domain so responses can name the resource.
var (
	ErrAccessDenied      = errors.New("access denied")
	ErrInsufficientRole  = errors.New("insufficient role for team management")
	ErrLastTeamAdmin     = errors.New("cannot demote or remove the last active admin")
	ErrAlreadyTeamMember = errors.New("user is already a member of this project")
)

// denialError converts a negative decision into a service error, using the
// given sentinel for the missing-resource case.
func denialError(decision access.Decision, notFound error) error {
	if decision.Allowed {
		return nil
	}
	switch decision.Reason {
	case access.ReasonNotFound:
		return notFound
	case access.ReasonInsufficientRole:
		return ErrInsufficientRole
	case access.ReasonLastAdmin:
		return ErrLastTeamAdmin
	case access.ReasonAlreadyMember:
		return ErrAlreadyTeamMember
	default:
		return ErrAccessDenied
	}
}

package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/webgigs/work-tracker-api/internal/errors"
	"github.com/webgigs/work-tracker-api/internal/report"
	"github.com/webgigs/work-tracker-api/internal/services"
)

// respondServiceError maps a service error to an HTTP response. Authorization
// denials become 403, missing resources 404, refused-state transitions and
// validation failures 400, everything unexpected 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAccessDenied),
		errors.Is(err, services.ErrInsufficientRole):
		apierrors.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTimeEntryNotFound),
		errors.Is(err, services.ErrTeamMemberNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrAttachmentNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, services.ErrLastTeamAdmin),
		errors.Is(err, services.ErrAlreadyTeamMember),
		errors.Is(err, services.ErrClientHasProjects),
		errors.Is(err, services.ErrProjectHasTasks),
		errors.Is(err, services.ErrTaskHasTimeEntries),
		errors.Is(err, services.ErrInvalidClientName),
		errors.Is(err, services.ErrInvalidProjectName),
		errors.Is(err, services.ErrInvalidProjectStatus),
		errors.Is(err, services.ErrInvalidCategoryName),
		errors.Is(err, services.ErrInvalidTaskTitle),
		errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrInvalidTaskPriority),
		errors.Is(err, services.ErrInvalidTeamRole),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrInvalidEntryDate),
		errors.Is(err, services.ErrInvalidAttachmentParent),
		errors.Is(err, services.ErrEmptyFileName),
		errors.Is(err, report.ErrMissingCustomBounds),
		errors.Is(err, report.ErrInvalidTimeRange):
		apierrors.BadRequest(c, err.Error())

	default:
		apierrors.InternalError(c, "")
	}
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

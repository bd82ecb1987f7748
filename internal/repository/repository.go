package repository

import (
	"time"

	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/report"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	Create(client *models.Client) error
	FindByID(id uint64, preload ...string) (*models.Client, error)
	ListByOwner(ownerID uint64) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uint64) error

	// CountProjects counts live projects referencing the client
	CountProjects(clientID uint64) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64, preload ...string) (*models.Project, error)
	ListByOwner(ownerID uint64) ([]models.Project, error)
	ListByClient(clientID uint64) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint64) error

	// CountTasks counts live tasks referencing the project
	CountTasks(projectID uint64) (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uint64, preload ...string) (*models.Task, error)
	ListByProject(projectID uint64) ([]models.Task, error)

	// ListActiveByProjects returns unfinished tasks across the given projects
	ListActiveByProjects(projectIDs []uint64) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uint64) error

	// CountTimeEntries counts live time entries referencing the task
	CountTimeEntries(taskID uint64) (int64, error)
}

// TimeEntryRepository defines the interface for time entry data access
type TimeEntryRepository interface {
	Create(entry *models.TimeEntry) error
	FindByID(id uint64, preload ...string) (*models.TimeEntry, error)
	ListByTask(taskID uint64) ([]models.TimeEntry, error)
	Update(entry *models.TimeEntry) error
	Delete(id uint64) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id uint64) (*models.Category, error)
	ListByOwner(ownerID uint64) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint64) error
}

// TeamMemberRepository defines the interface for team member data access
type TeamMemberRepository interface {
	Create(member *models.TeamMember) error
	FindByID(id uint64, preload ...string) (*models.TeamMember, error)
	ListByProject(projectID uint64) ([]models.TeamMember, error)
	ListByUser(userID uint64) ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uint64) error
}

// NotificationFilter holds filtering options for listing notifications
type NotificationFilter struct {
	UnreadOnly      bool
	IncludeArchived bool
	Page            int
	PageSize        int
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id uint64) (*models.Notification, error)
	ListByUser(userID uint64, filter NotificationFilter) ([]models.Notification, int64, error)
	Update(notification *models.Notification) error

	// MarkRead marks the given notifications read; all of the user's when ids is empty
	MarkRead(userID uint64, ids []uint64) error

	// Archive archives the given notifications; all of the user's when ids is empty
	Archive(userID uint64, ids []uint64) error
	Delete(id uint64) error
}

// AttachmentRepository defines the interface for file attachment metadata
type AttachmentRepository interface {
	Create(attachment *models.FileAttachment) error
	FindByID(id uint64) (*models.FileAttachment, error)
	ListByParent(kind models.AttachmentParent, parentID uint64) ([]models.FileAttachment, error)
	Delete(id uint64) error
}

// EntryFilter scopes the single batched time-entry query a report runs.
type EntryFilter struct {
	Start      time.Time
	End        time.Time
	ProjectIDs []uint64
	UserIDs    []uint64
	ClientIDs  []uint64
}

// ReportRepository fetches the flattened inputs the report aggregations
// reduce over. Each report issues one entry query for its whole window; the
// per-entity breakdown happens in memory.
type ReportRepository interface {
	TimeEntriesForWindow(filter EntryFilter) ([]report.Entry, error)
	ProjectsForReport(projectIDs, clientIDs []uint64, includeInactive bool) ([]report.ProjectRecord, error)
	TeamMembersForReport(projectIDs, userIDs []uint64, includeInactive bool) ([]report.MemberRecord, error)
	ClientsForReport(clientIDs []uint64, includeInactive bool) ([]report.ClientRecord, error)

	// ClientTrees fetches an owner's clients with their project, task and
	// time-entry trees preloaded, for the full export
	ClientTrees(ownerID uint64) ([]models.Client, error)

	// ClientAttachments fetches the file attachments of the given clients
	ClientAttachments(clientIDs []uint64) ([]models.FileAttachment, error)
}

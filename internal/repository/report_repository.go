package repository

import (
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/report"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// TimeEntriesForWindow fetches every entry a report needs in one query,
// flattened with its project and client so grouping never goes back to the
// database.
func (r *GormReportRepository) TimeEntriesForWindow(filter EntryFilter) ([]report.Entry, error) {
	query := r.db.Model(&models.TimeEntry{}).
		Select("time_entries.id, time_entries.task_id, tasks.project_id, projects.client_id, time_entries.user_id, time_entries.date, time_entries.duration, time_entries.is_billable, time_entries.description").
		Joins("JOIN tasks ON tasks.id = time_entries.task_id AND tasks.deleted_at IS NULL").
		Joins("JOIN projects ON projects.id = tasks.project_id AND projects.deleted_at IS NULL").
		Where("time_entries.date >= ? AND time_entries.date <= ?", filter.Start, filter.End)

	if len(filter.ProjectIDs) > 0 {
		query = query.Where("tasks.project_id IN ?", filter.ProjectIDs)
	}
	if len(filter.UserIDs) > 0 {
		query = query.Where("time_entries.user_id IN ?", filter.UserIDs)
	}
	if len(filter.ClientIDs) > 0 {
		query = query.Where("projects.client_id IN ?", filter.ClientIDs)
	}

	var entries []report.Entry
	if err := query.Order("time_entries.date ASC, time_entries.id ASC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ProjectsForReport fetches the project rows a project-stats report covers
func (r *GormReportRepository) ProjectsForReport(projectIDs, clientIDs []uint64, includeInactive bool) ([]report.ProjectRecord, error) {
	query := r.db.Model(&models.Project{}).
		Select("projects.id, projects.name, projects.status, projects.is_active, projects.hourly_rate")

	if len(projectIDs) > 0 {
		query = query.Where("projects.id IN ?", projectIDs)
	}
	if len(clientIDs) > 0 {
		query = query.Where("projects.client_id IN ?", clientIDs)
	}
	if !includeInactive {
		query = query.Where("projects.is_active = ?", true)
	}

	var projects []report.ProjectRecord
	if err := query.Order("projects.id ASC").Scan(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// TeamMembersForReport fetches the member rows a team-productivity report
// covers, joined with the user for display names
func (r *GormReportRepository) TeamMembersForReport(projectIDs, userIDs []uint64, includeInactive bool) ([]report.MemberRecord, error) {
	query := r.db.Model(&models.TeamMember{}).
		Select("team_members.id, team_members.user_id, users.full_name AS name, team_members.role, team_members.is_active").
		Joins("JOIN users ON users.id = team_members.user_id AND users.deleted_at IS NULL")

	if len(projectIDs) > 0 {
		query = query.Where("team_members.project_id IN ?", projectIDs)
	}
	if len(userIDs) > 0 {
		query = query.Where("team_members.user_id IN ?", userIDs)
	}
	if !includeInactive {
		query = query.Where("team_members.is_active = ?", true)
	}

	var members []report.MemberRecord
	if err := query.Order("team_members.id ASC").Scan(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ClientTrees fetches an owner's clients with their project, task and
// time-entry trees preloaded
func (r *GormReportRepository) ClientTrees(ownerID uint64) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.
		Preload("Projects").
		Preload("Projects.Tasks").
		Preload("Projects.Tasks.TimeEntries").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// ClientAttachments fetches the file attachments of the given clients
func (r *GormReportRepository) ClientAttachments(clientIDs []uint64) ([]models.FileAttachment, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}
	var attachments []models.FileAttachment
	err := r.db.
		Where("parent_kind = ? AND parent_id IN ?", models.AttachmentParentClient, clientIDs).
		Order("created_at DESC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// ClientsForReport fetches the client rows a billing report covers, each with
// the IDs of its live projects
func (r *GormReportRepository) ClientsForReport(clientIDs []uint64, includeInactive bool) ([]report.ClientRecord, error) {
	query := r.db.Model(&models.Client{}).
		Select("clients.id, clients.name, clients.hourly_rate")

	if len(clientIDs) > 0 {
		query = query.Where("clients.id IN ?", clientIDs)
	}
	if !includeInactive {
		query = query.Where("clients.is_active = ?", true)
	}

	var clients []report.ClientRecord
	if err := query.Order("clients.id ASC").Scan(&clients).Error; err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return clients, nil
	}

	ids := make([]uint64, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}

	var projects []models.Project
	if err := r.db.Select("id, client_id").
		Where("client_id IN ?", ids).
		Find(&projects).Error; err != nil {
		return nil, err
	}

	byClient := make(map[uint64][]uint64, len(clients))
	for _, p := range projects {
		byClient[p.ClientID] = append(byClient[p.ClientID], p.ID)
	}
	for i := range clients {
		clients[i].ProjectIDs = byClient[clients[i].ID]
	}
	return clients, nil
}

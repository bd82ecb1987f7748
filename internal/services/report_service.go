package services

import (
	"fmt"
	"time"

	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/report"
	"github.com/webgigs/work-tracker-api/internal/repository"
)

// reportEpoch is the default window start when no explicit start date is given.
var reportEpoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// ReportService assembles reports over the actor's own projects and clients.
// Each report fetches its window's entries in a single batched query and
// reduces them in memory.
type ReportService struct {
	reportRepo  repository.ReportRepository
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository

	now func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(
	reportRepo repository.ReportRepository,
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		now:         time.Now,
	}
}

// ReportRequest carries the shared parameters of every report shape. The
// symbolic TimeRange only applies to time tracking; the other shapes use the
// explicit dates, defaulting to all recorded history.
type ReportRequest struct {
	TimeRange       report.TimeRange
	StartDate       *time.Time
	EndDate         *time.Time
	GroupBy         report.GroupBy
	ProjectIDs      []uint64
	UserIDs         []uint64
	ClientIDs       []uint64
	IncludeInactive bool
}

// TimeTracking totals the actor's time entries for the resolved period. The
// time range is required; an absent one is rejected like an unknown token.
func (s *ReportService) TimeTracking(actor uint64, req ReportRequest) (*report.TimeTrackingReport, error) {
	period, err := report.Resolve(req.TimeRange, s.now(), req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	projectIDs, err := s.ownedProjectIDs(actor, req.ProjectIDs)
	if err != nil {
		return nil, err
	}
	entries, err := s.fetchEntries(period.Start, period.End, projectIDs, req.UserIDs, req.ClientIDs)
	if err != nil {
		return nil, err
	}

	out := report.TimeTracking(entries, req.GroupBy)
	return &out, nil
}

// ProjectStats summarizes the actor's projects and their tracked time.
func (s *ReportService) ProjectStats(actor uint64, req ReportRequest) (*report.ProjectStatsReport, error) {
	start, end := s.window(req)

	projectIDs, err := s.ownedProjectIDs(actor, req.ProjectIDs)
	if err != nil {
		return nil, err
	}
	if len(projectIDs) == 0 {
		out := report.ProjectStats(nil, nil)
		return &out, nil
	}

	projects, err := s.reportRepo.ProjectsForReport(projectIDs, req.ClientIDs, req.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	entries, err := s.fetchEntries(start, end, projectIDs, nil, req.ClientIDs)
	if err != nil {
		return nil, err
	}

	out := report.ProjectStats(projects, entries)
	return &out, nil
}

// TeamProductivity summarizes tracked time per member across the actor's
// projects.
func (s *ReportService) TeamProductivity(actor uint64, req ReportRequest) (*report.TeamProductivityReport, error) {
	start, end := s.window(req)

	projectIDs, err := s.ownedProjectIDs(actor, req.ProjectIDs)
	if err != nil {
		return nil, err
	}
	if len(projectIDs) == 0 {
		out := report.TeamProductivity(nil, nil)
		return &out, nil
	}

	members, err := s.reportRepo.TeamMembersForReport(projectIDs, req.UserIDs, req.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team members: %w", err)
	}
	entries, err := s.fetchEntries(start, end, projectIDs, req.UserIDs, nil)
	if err != nil {
		return nil, err
	}

	out := report.TeamProductivity(members, entries)
	return &out, nil
}

// ClientBilling summarizes billable work per client for the actor's clients.
func (s *ReportService) ClientBilling(actor uint64, req ReportRequest) (*report.ClientBillingReport, error) {
	start, end := s.window(req)

	clientIDs, err := s.ownedClientIDs(actor, req.ClientIDs)
	if err != nil {
		return nil, err
	}
	if len(clientIDs) == 0 {
		out := report.ClientBilling(nil, nil)
		return &out, nil
	}

	clients, err := s.reportRepo.ClientsForReport(clientIDs, req.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	projectIDs, err := s.ownedProjectIDs(actor, req.ProjectIDs)
	if err != nil {
		return nil, err
	}
	if len(projectIDs) == 0 {
		out := report.ClientBilling(clients, nil)
		return &out, nil
	}
	entries, err := s.fetchEntries(start, end, projectIDs, req.UserIDs, clientIDs)
	if err != nil {
		return nil, err
	}

	out := report.ClientBilling(clients, entries)
	return &out, nil
}

// ClientExport is one client's slice of the full export: the client row with
// its project, task and time-entry tree plus its file attachments.
type ClientExport struct {
	models.Client
	Files []models.FileAttachment `json:"client_files"`
}

// ClientsFullReport exports the actor's entire client tree, every project,
// task and time entry nested in place, with each client's files attached.
func (s *ReportService) ClientsFullReport(actor uint64) ([]ClientExport, error) {
	clients, err := s.reportRepo.ClientTrees(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}

	ids := make([]uint64, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	files, err := s.reportRepo.ClientAttachments(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client files: %w", err)
	}
	byClient := make(map[uint64][]models.FileAttachment, len(clients))
	for _, f := range files {
		byClient[f.ParentID] = append(byClient[f.ParentID], f)
	}

	out := make([]ClientExport, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientExport{Client: c, Files: byClient[c.ID]})
	}
	return out, nil
}

// window returns the explicit date window, defaulting to all history up to
// today.
func (s *ReportService) window(req ReportRequest) (time.Time, time.Time) {
	start := reportEpoch
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := s.now()
	if req.EndDate != nil {
		end = *req.EndDate
	}
	return start, end
}

// ownedProjectIDs narrows the requested project IDs to those the actor owns;
// with no explicit request it returns all of the actor's projects. An empty
// result means the report covers nothing.
func (s *ReportService) ownedProjectIDs(actor uint64, requested []uint64) ([]uint64, error) {
	projects, err := s.projectRepo.ListByOwner(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	owned := make([]uint64, 0, len(projects))
	for _, p := range projects {
		owned = append(owned, p.ID)
	}
	return intersect(owned, requested), nil
}

func (s *ReportService) ownedClientIDs(actor uint64, requested []uint64) ([]uint64, error) {
	clients, err := s.clientRepo.ListByOwner(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	owned := make([]uint64, 0, len(clients))
	for _, c := range clients {
		owned = append(owned, c.ID)
	}
	return intersect(owned, requested), nil
}

// fetchEntries runs the single batched entry query. An empty project scope
// short-circuits to no entries; an unscoped query would leak other owners'
// data.
func (s *ReportService) fetchEntries(start, end time.Time, projectIDs, userIDs, clientIDs []uint64) ([]report.Entry, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	entries, err := s.reportRepo.TimeEntriesForWindow(repository.EntryFilter{
		Start:      start,
		End:        end,
		ProjectIDs: projectIDs,
		UserIDs:    userIDs,
		ClientIDs:  clientIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}
	return entries, nil
}

func intersect(owned, requested []uint64) []uint64 {
	if len(requested) == 0 {
		return owned
	}
	allowed := make(map[uint64]bool, len(owned))
	for _, id := range owned {
		allowed[id] = true
	}
	out := make([]uint64, 0, len(requested))
	for _, id := range requested {
		if allowed[id] {
			out = append(out, id)
		}
	}
	return out
}

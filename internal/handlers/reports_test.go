package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/report"
	"github.com/webgigs/work-tracker-api/internal/repository"
	"github.com/webgigs/work-tracker-api/internal/services"
	"gorm.io/gorm"
)

type reportTestEnv struct {
	db      *gorm.DB
	handler *ReportHandler
	owner   *models.User
	member  *models.User
	client  *models.Client
	project *models.Project
}

// setupReportTestEnv seeds one client (rate 100), one project (rate 50) with
// a team member, and two March 2024 entries: 60 billable minutes by the owner
// and 30 non-billable minutes by the member.
func setupReportTestEnv(t *testing.T) reportTestEnv {
	t.Helper()

	db := setupTestDB(t)
	reportService := services.NewReportService(
		repository.NewReportRepository(db),
		repository.NewProjectRepository(db),
		repository.NewClientRepository(db),
	)

	owner := createTestUser(t, db, "owner@example.com")
	member := createTestUser(t, db, "member@example.com")

	client := &models.Client{Name: "Acme", HourlyRate: 100, OwnerID: owner.ID, IsActive: true}
	require.NoError(t, db.Create(client).Error)

	project := &models.Project{
		Name:       "Website",
		Status:     models.ProjectStatusActive,
		HourlyRate: 50,
		IsActive:   true,
		ClientID:   client.ID,
		OwnerID:    owner.ID,
	}
	require.NoError(t, db.Create(project).Error)

	require.NoError(t, db.Create(&models.TeamMember{
		ProjectID: project.ID,
		UserID:    member.ID,
		Role:      models.RoleMember,
		IsActive:  true,
	}).Error)

	task := &models.Task{
		Title:     "Build it",
		Status:    models.TaskStatusInProgress,
		Priority:  models.TaskPriorityMedium,
		ProjectID: project.ID,
	}
	require.NoError(t, db.Create(task).Error)

	day1 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.TimeEntry{
		Description: "backend",
		Date:        day1,
		StartTime:   day1.Add(9 * time.Hour),
		Duration:    60,
		IsBillable:  true,
		TaskID:      task.ID,
		UserID:      owner.ID,
	}).Error)
	require.NoError(t, db.Create(&models.TimeEntry{
		Description: "review",
		Date:        day2,
		StartTime:   day2.Add(10 * time.Hour),
		Duration:    30,
		IsBillable:  false,
		TaskID:      task.ID,
		UserID:      member.ID,
	}).Error)

	return reportTestEnv{
		db:      db,
		handler: NewReportHandler(reportService),
		owner:   owner,
		member:  member,
		client:  client,
		project: project,
	}
}

func marchRequest(t *testing.T, extra map[string]interface{}) []byte {
	payload := map[string]interface{}{
		"time_range": "custom",
		"start_date": "2024-03-01",
		"end_date":   "2024-03-31",
	}
	for k, v := range extra {
		payload[k] = v
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}

func TestReportHandler_TimeTracking(t *testing.T) {
	env := setupReportTestEnv(t)

	c, w := testContext(http.MethodPost, "/api/reports/time-tracking", marchRequest(t, nil), env.owner.ID)
	env.handler.TimeTracking(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.TimeTrackingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 90.0, out.TotalHours)
	require.Equal(t, 60.0, out.BillableHours)
	require.Equal(t, 30.0, out.NonBillableHours)
	require.Len(t, out.Entries, 2)
}

func TestReportHandler_TimeTrackingGroupedByProject(t *testing.T) {
	env := setupReportTestEnv(t)

	body := marchRequest(t, map[string]interface{}{"group_by": "project"})
	c, w := testContext(http.MethodPost, "/api/reports/time-tracking", body, env.owner.ID)
	env.handler.TimeTracking(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.TimeTrackingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Summary, 1)

	bucket, ok := out.Summary[strconv.FormatUint(env.project.ID, 10)]
	require.True(t, ok)
	require.Equal(t, 90.0, bucket.TotalHours)
	require.Equal(t, 60.0, bucket.BillableHours)
	require.Equal(t, 30.0, bucket.NonBillableHours)
}

func TestReportHandler_TimeTrackingScopedToClient(t *testing.T) {
	env := setupReportTestEnv(t)

	// a second client with 500 tracked minutes must not bleed into a report
	// scoped to the first
	other := &models.Client{Name: "Globex", HourlyRate: 80, OwnerID: env.owner.ID, IsActive: true}
	require.NoError(t, env.db.Create(other).Error)
	project := &models.Project{
		Name:     "Intranet",
		Status:   models.ProjectStatusActive,
		IsActive: true,
		ClientID: other.ID,
		OwnerID:  env.owner.ID,
	}
	require.NoError(t, env.db.Create(project).Error)
	task := &models.Task{
		Title:     "Migrate",
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityMedium,
		ProjectID: project.ID,
	}
	require.NoError(t, env.db.Create(task).Error)
	day := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.db.Create(&models.TimeEntry{
		Description: "migration",
		Date:        day,
		StartTime:   day.Add(9 * time.Hour),
		Duration:    500,
		IsBillable:  true,
		TaskID:      task.ID,
		UserID:      env.owner.ID,
	}).Error)

	body := marchRequest(t, map[string]interface{}{"client_ids": []uint64{env.client.ID}})
	c, w := testContext(http.MethodPost, "/api/reports/time-tracking", body, env.owner.ID)
	env.handler.TimeTracking(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.TimeTrackingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 90.0, out.TotalHours)
	require.Len(t, out.Entries, 2)
}

func TestReportHandler_TimeTrackingMissingRange(t *testing.T) {
	env := setupReportTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{
		"start_date": "2024-03-01",
		"end_date":   "2024-03-31",
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/reports/time-tracking", body, env.owner.ID)
	env.handler.TimeTracking(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_TimeTrackingMissingCustomBounds(t *testing.T) {
	env := setupReportTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{"time_range": "custom"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/reports/time-tracking", body, env.owner.ID)
	env.handler.TimeTracking(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_TimeTrackingUnknownRange(t *testing.T) {
	env := setupReportTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{"time_range": "fortnight"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/reports/time-tracking", body, env.owner.ID)
	env.handler.TimeTracking(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_TimeTrackingScopedToOwner(t *testing.T) {
	env := setupReportTestEnv(t)

	// the member owns no projects, so their report is empty even though they
	// logged time
	c, w := testContext(http.MethodPost, "/api/reports/time-tracking", marchRequest(t, nil), env.member.ID)
	env.handler.TimeTracking(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.TimeTrackingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 0.0, out.TotalHours)
	require.Empty(t, out.Entries)
}

func TestReportHandler_ProjectStats(t *testing.T) {
	env := setupReportTestEnv(t)

	c, w := testContext(http.MethodPost, "/api/reports/project-stats", marchRequest(t, nil), env.owner.ID)
	env.handler.ProjectStats(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.ProjectStatsReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 1, out.TotalProjects)
	require.Equal(t, 1, out.ActiveProjects)
	require.Equal(t, 0, out.CompletedProjects)
	require.Equal(t, 90.0, out.TotalHours)
	require.Equal(t, 3000.0, out.BillableAmount) // 60 billable at the project's rate of 50

	require.Len(t, out.Projects, 1)
	require.Equal(t, env.project.ID, out.Projects[0].ID)
	require.Equal(t, 60.0, out.Projects[0].BillableHours)
}

func TestReportHandler_TeamProductivity(t *testing.T) {
	env := setupReportTestEnv(t)

	c, w := testContext(http.MethodPost, "/api/reports/team-productivity", marchRequest(t, nil), env.owner.ID)
	env.handler.TeamProductivity(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.TeamProductivityReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 1, out.TotalMembers)
	require.Equal(t, 30.0, out.TotalHours)
	require.Equal(t, 30.0, out.AverageHoursPerMember)

	require.Len(t, out.Members, 1)
	require.Equal(t, env.member.ID, out.Members[0].UserID)
	require.Equal(t, 0.0, out.Members[0].BillableHours)
}

func TestReportHandler_ClientBillingScopedToMember(t *testing.T) {
	env := setupReportTestEnv(t)

	// only the member's 30 non-billable minutes count; the owner's billable
	// hour is filtered out
	body := marchRequest(t, map[string]interface{}{"user_ids": []uint64{env.member.ID}})
	c, w := testContext(http.MethodPost, "/api/reports/client-billing", body, env.owner.ID)
	env.handler.ClientBilling(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.ClientBillingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 30.0, out.TotalHours)
	require.Equal(t, 0.0, out.TotalBillableAmount)
}

func TestReportHandler_ClientsFullReport(t *testing.T) {
	env := setupReportTestEnv(t)

	require.NoError(t, env.db.Create(&models.FileAttachment{
		FileName:    "contract.pdf",
		ContentType: "application/pdf",
		Size:        4,
		StorageKey:  "key-contract",
		ParentKind:  models.AttachmentParentClient,
		ParentID:    env.client.ID,
		UploadedBy:  env.owner.ID,
	}).Error)

	c, w := testContext(http.MethodGet, "/api/reports/clients-full-report", nil, env.owner.ID)
	env.handler.ClientsFullReport(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out []services.ClientExport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, env.client.ID, out[0].ID)
	require.Len(t, out[0].Projects, 1)
	require.Len(t, out[0].Projects[0].Tasks, 1)
	require.Len(t, out[0].Projects[0].Tasks[0].TimeEntries, 2)
	require.Len(t, out[0].Files, 1)
	require.Equal(t, "contract.pdf", out[0].Files[0].FileName)
}

func TestReportHandler_ClientBilling(t *testing.T) {
	env := setupReportTestEnv(t)

	c, w := testContext(http.MethodPost, "/api/reports/client-billing", marchRequest(t, nil), env.owner.ID)
	env.handler.ClientBilling(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out report.ClientBillingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 1, out.TotalClients)
	require.Equal(t, 90.0, out.TotalHours)
	require.Equal(t, 6000.0, out.TotalBillableAmount) // 60 billable at the client's rate of 100

	require.Len(t, out.Clients, 1)
	require.Equal(t, env.client.ID, out.Clients[0].ID)
}

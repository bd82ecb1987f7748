package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
	"github.com/webgigs/work-tracker-api/internal/services"
	"gorm.io/gorm"
)

type entryTestEnv struct {
	db      *gorm.DB
	handler *TimeEntryHandler
	owner   *models.User
	author  *models.User
	task    *models.Task
	entry   *models.TimeEntry
}

// setupEntryTestEnv seeds a project owned by one user and a time entry on its
// task authored by another.
func setupEntryTestEnv(t *testing.T) entryTestEnv {
	t.Helper()

	db := setupTestDB(t)
	checker := access.NewChecker(repository.NewAccessStore(db))
	entryService := services.NewTimeEntryService(repository.NewTimeEntryRepository(db), checker)

	owner := createTestUser(t, db, "owner@example.com")
	author := createTestUser(t, db, "author@example.com")

	client := &models.Client{Name: "Acme", OwnerID: owner.ID, IsActive: true}
	require.NoError(t, db.Create(client).Error)
	project := &models.Project{
		Name:     "Website",
		Status:   models.ProjectStatusActive,
		IsActive: true,
		ClientID: client.ID,
		OwnerID:  owner.ID,
	}
	require.NoError(t, db.Create(project).Error)
	task := &models.Task{
		Title:     "Build it",
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityMedium,
		ProjectID: project.ID,
	}
	require.NoError(t, db.Create(task).Error)

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	entry := &models.TimeEntry{
		Description: "backend",
		Date:        day,
		StartTime:   day.Add(9 * time.Hour),
		Duration:    60,
		IsBillable:  true,
		TaskID:      task.ID,
		UserID:      author.ID,
	}
	require.NoError(t, db.Create(entry).Error)

	return entryTestEnv{
		db:      db,
		handler: NewTimeEntryHandler(entryService),
		owner:   owner,
		author:  author,
		task:    task,
		entry:   entry,
	}
}

func entryBody(t *testing.T, duration float64) []byte {
	body, err := json.Marshal(map[string]interface{}{
		"description": "updated",
		"date":        "2024-03-05T00:00:00Z",
		"start_time":  "2024-03-05T09:00:00Z",
		"duration":    duration,
		"is_billable": true,
	})
	require.NoError(t, err)
	return body
}

func TestTimeEntryHandler_OwnerCanRead(t *testing.T) {
	env := setupEntryTestEnv(t)

	c, w := testContext(http.MethodGet, "/api/time-entries/1", nil, env.owner.ID)
	setParamID(c, env.entry.ID)
	env.handler.GetTimeEntry(c)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestTimeEntryHandler_OwnerCannotUpdateOthersEntry(t *testing.T) {
	env := setupEntryTestEnv(t)

	// project ownership alone does not grant mutation; only the author may
	c, w := testContext(http.MethodPut, "/api/time-entries/1", entryBody(t, 90), env.owner.ID)
	setParamID(c, env.entry.ID)
	env.handler.UpdateTimeEntry(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestTimeEntryHandler_AuthorCannotUpdateWithoutOwnership(t *testing.T) {
	env := setupEntryTestEnv(t)

	c, w := testContext(http.MethodPut, "/api/time-entries/1", entryBody(t, 90), env.author.ID)
	setParamID(c, env.entry.ID)
	env.handler.UpdateTimeEntry(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestTimeEntryHandler_OwnerAuthorCanUpdate(t *testing.T) {
	env := setupEntryTestEnv(t)

	// an entry the owner authored themselves is fully mutable
	day := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	own := &models.TimeEntry{
		Date:      day,
		StartTime: day.Add(9 * time.Hour),
		Duration:  30,
		TaskID:    env.task.ID,
		UserID:    env.owner.ID,
	}
	require.NoError(t, env.db.Create(own).Error)

	c, w := testContext(http.MethodPut, "/api/time-entries/2", entryBody(t, 45), env.owner.ID)
	setParamID(c, own.ID)
	env.handler.UpdateTimeEntry(c)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.TimeEntry
	require.NoError(t, env.db.First(&updated, own.ID).Error)
	require.Equal(t, 45.0, updated.Duration)
	require.Equal(t, env.owner.ID, updated.UserID)
}

func TestTimeEntryHandler_CreateSetsAuthor(t *testing.T) {
	env := setupEntryTestEnv(t)

	c, w := testContext(http.MethodPost, "/api/tasks/1/time-entries", entryBody(t, 25), env.owner.ID)
	setParamID(c, env.task.ID)
	env.handler.CreateTimeEntry(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.TimeEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, env.owner.ID, created.UserID)
	require.Equal(t, 25.0, created.Duration)
}

func TestTimeEntryHandler_CreateRejectsNonOwner(t *testing.T) {
	env := setupEntryTestEnv(t)

	c, w := testContext(http.MethodPost, "/api/tasks/1/time-entries", entryBody(t, 25), env.author.ID)
	setParamID(c, env.task.ID)
	env.handler.CreateTimeEntry(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

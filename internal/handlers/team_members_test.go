package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/dto"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
	"github.com/webgigs/work-tracker-api/internal/services"
	"gorm.io/gorm"
)

type teamTestEnv struct {
	db      *gorm.DB
	handler *TeamMemberHandler
	owner   *models.User
	project *models.Project
}

func setupTeamTestEnv(t *testing.T) teamTestEnv {
	t.Helper()

	db := setupTestDB(t)
	checker := access.NewChecker(repository.NewAccessStore(db))
	teamService := services.NewTeamService(
		repository.NewTeamMemberRepository(db),
		repository.NewProjectRepository(db),
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
		checker,
	)

	owner := createTestUser(t, db, "owner@example.com")
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

	return teamTestEnv{
		db:      db,
		handler: NewTeamMemberHandler(teamService),
		owner:   owner,
		project: project,
	}
}

func addMemberBody(t *testing.T, userID uint64, role string) []byte {
	body, err := json.Marshal(map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
	require.NoError(t, err)
	return body
}

func TestTeamMemberHandler_AddMember(t *testing.T) {
	env := setupTeamTestEnv(t)
	target := createTestUser(t, env.db, "member@example.com")

	c, w := testContext(http.MethodPost, "/api/projects/1/team", addMemberBody(t, target.ID, "member"), env.owner.ID)
	setParamID(c, env.project.ID)
	env.handler.AddMember(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.TeamMemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, target.ID, created.UserID)
	require.Equal(t, models.RoleMember, created.Role)
	require.True(t, created.IsActive)

	// a welcome notification lands in the target's inbox
	var notifications int64
	env.db.Model(&models.Notification{}).Where("user_id = ?", target.ID).Count(&notifications)
	require.EqualValues(t, 1, notifications)
}

func TestTeamMemberHandler_AddMemberTwice(t *testing.T) {
	env := setupTeamTestEnv(t)
	target := createTestUser(t, env.db, "member@example.com")

	member := &models.TeamMember{
		ProjectID: env.project.ID,
		UserID:    target.ID,
		Role:      models.RoleMember,
		IsActive:  false,
	}
	require.NoError(t, env.db.Create(member).Error)

	// the inactive row still blocks a re-add
	c, w := testContext(http.MethodPost, "/api/projects/1/team", addMemberBody(t, target.ID, "member"), env.owner.ID)
	setParamID(c, env.project.ID)
	env.handler.AddMember(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamMemberHandler_AddMemberAsStranger(t *testing.T) {
	env := setupTeamTestEnv(t)
	target := createTestUser(t, env.db, "member@example.com")
	stranger := createTestUser(t, env.db, "stranger@example.com")

	c, w := testContext(http.MethodPost, "/api/projects/1/team", addMemberBody(t, target.ID, "member"), stranger.ID)
	setParamID(c, env.project.ID)
	env.handler.AddMember(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestTeamMemberHandler_AddMemberAsActiveAdmin(t *testing.T) {
	env := setupTeamTestEnv(t)
	admin := createTestUser(t, env.db, "admin@example.com")
	target := createTestUser(t, env.db, "member@example.com")

	require.NoError(t, env.db.Create(&models.TeamMember{
		ProjectID: env.project.ID,
		UserID:    admin.ID,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}).Error)

	c, w := testContext(http.MethodPost, "/api/projects/1/team", addMemberBody(t, target.ID, "viewer"), admin.ID)
	setParamID(c, env.project.ID)
	env.handler.AddMember(c)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestTeamMemberHandler_RemoveLastAdmin(t *testing.T) {
	env := setupTeamTestEnv(t)
	admin := createTestUser(t, env.db, "admin@example.com")

	member := &models.TeamMember{
		ProjectID: env.project.ID,
		UserID:    admin.ID,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	require.NoError(t, env.db.Create(member).Error)

	c, w := testContext(http.MethodDelete, "/api/team-members/1", nil, env.owner.ID)
	setParamID(c, member.ID)
	env.handler.RemoveMember(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	env.db.Model(&models.TeamMember{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestTeamMemberHandler_RemoveAdminWithBackup(t *testing.T) {
	env := setupTeamTestEnv(t)
	first := createTestUser(t, env.db, "first@example.com")
	second := createTestUser(t, env.db, "second@example.com")

	target := &models.TeamMember{
		ProjectID: env.project.ID,
		UserID:    first.ID,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	require.NoError(t, env.db.Create(target).Error)
	require.NoError(t, env.db.Create(&models.TeamMember{
		ProjectID: env.project.ID,
		UserID:    second.ID,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}).Error)

	c, w := testContext(http.MethodDelete, "/api/team-members/1", nil, env.owner.ID)
	setParamID(c, target.ID)
	env.handler.RemoveMember(c)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestTeamMemberHandler_DemoteLastAdmin(t *testing.T) {
	env := setupTeamTestEnv(t)
	admin := createTestUser(t, env.db, "admin@example.com")

	member := &models.TeamMember{
		ProjectID: env.project.ID,
		UserID:    admin.ID,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	require.NoError(t, env.db.Create(member).Error)

	body, err := json.Marshal(map[string]interface{}{"role": "member"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPut, "/api/team-members/1", body, env.owner.ID)
	setParamID(c, member.ID)
	env.handler.UpdateMember(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamMemberHandler_MemberRoleGrantsNoTaskAccess(t *testing.T) {
	env := setupTeamTestEnv(t)
	admin := createTestUser(t, env.db, "admin@example.com")

	require.NoError(t, env.db.Create(&models.TeamMember{
		ProjectID: env.project.ID,
		UserID:    admin.ID,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}).Error)

	task := &models.Task{
		Title:     "Build it",
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityMedium,
		ProjectID: env.project.ID,
	}
	require.NoError(t, env.db.Create(task).Error)

	checker := access.NewChecker(repository.NewAccessStore(env.db))
	taskService := services.NewTaskService(
		repository.NewTaskRepository(env.db),
		repository.NewProjectRepository(env.db),
		repository.NewCategoryRepository(env.db),
		checker,
	)
	taskHandler := NewTaskHandler(taskService)

	// even an active admin cannot read tasks; only the project owner can
	c, w := testContext(http.MethodGet, "/api/tasks/1", nil, admin.ID)
	setParamID(c, task.ID)
	taskHandler.GetTask(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

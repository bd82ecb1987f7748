package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskTitle    = errors.New("task title cannot be empty")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
	ErrTaskHasTimeEntries  = errors.New("task still has time entries")
)

// TaskService provides business logic for task operations. Task access is
// gated by project ownership only.
type TaskService struct {
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
	categoryRepo repository.CategoryRepository
	checker      *access.Checker
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	categoryRepo repository.CategoryRepository,
	checker *access.Checker,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		checker:      checker,
	}
}

// TaskInput represents parameters to create or update a task.
type TaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	AssignedTo  *uint64
	DueDate     *time.Time
	CategoryID  *uint64
}

// CreateTask creates a task in a project the actor owns.
func (s *TaskService) CreateTask(actor, projectID uint64, input TaskInput) (*models.Task, error) {
	if err := s.authorizeProject(actor, access.OpWrite, projectID); err != nil {
		return nil, err
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if err := s.authorizeCategory(actor, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
		ProjectID:   projectID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// ListTasks returns the tasks of a project the actor owns.
func (s *TaskService) ListTasks(actor, projectID uint64) ([]models.Task, error) {
	if err := s.authorizeProject(actor, access.OpRead, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListActiveTasks returns unfinished tasks across every project the actor
// owns, soonest due first.
func (s *TaskService) ListActiveTasks(actor uint64) ([]models.Task, error) {
	projects, err := s.projectRepo.ListByOwner(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projectIDs := make([]uint64, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}

	tasks, err := s.taskRepo.ListActiveByProjects(projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task in a project the actor owns.
func (s *TaskService) GetTask(actor, id uint64) (*models.Task, error) {
	if err := s.authorize(actor, access.OpRead, id); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(id, "Category")
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// UpdateTask updates a task in a project the actor owns.
func (s *TaskService) UpdateTask(actor, id uint64, input TaskInput) (*models.Task, error) {
	if err := s.authorize(actor, access.OpWrite, id); err != nil {
		return nil, err
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if err := s.authorizeCategory(actor, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Title = strings.TrimSpace(input.Title)
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.AssignedTo = input.AssignedTo
	task.DueDate = input.DueDate
	task.CategoryID = input.CategoryID

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task in a project the actor owns. A task with time
// entries cannot be deleted.
func (s *TaskService) DeleteTask(actor, id uint64) error {
	if err := s.authorize(actor, access.OpDelete, id); err != nil {
		return err
	}

	count, err := s.taskRepo.CountTimeEntries(id)
	if err != nil {
		return fmt.Errorf("failed to count task time entries: %w", err)
	}
	if count > 0 {
		return ErrTaskHasTimeEntries
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) validate(input *TaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrInvalidTaskTitle
	}
	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	switch input.Status {
	case models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusDone:
	default:
		return ErrInvalidTaskStatus
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	switch input.Priority {
	case models.TaskPriorityLow, models.TaskPriorityMedium, models.TaskPriorityHigh:
	default:
		return ErrInvalidTaskPriority
	}
	return nil
}

func (s *TaskService) authorize(actor uint64, op access.Operation, id uint64) error {
	decision, err := s.checker.Authorize(actor, op, access.ResourceRef{Kind: access.KindTask, ID: id})
	if err != nil {
		return fmt.Errorf("failed to authorize: %w", err)
	}
	return denialError(decision, ErrTaskNotFound)
}

func (s *TaskService) authorizeProject(actor uint64, op access.Operation, projectID uint64) error {
	decision, err := s.checker.Authorize(actor, op, access.ResourceRef{Kind: access.KindProject, ID: projectID})
	if err != nil {
		return fmt.Errorf("failed to authorize project: %w", err)
	}
	return denialError(decision, ErrProjectNotFound)
}

func (s *TaskService) authorizeCategory(actor, categoryID uint64) error {
	decision, err := s.checker.Authorize(actor, access.OpRead, access.ResourceRef{Kind: access.KindCategory, ID: categoryID})
	if err != nil {
		return fmt.Errorf("failed to authorize category: %w", err)
	}
	return denialError(decision, ErrCategoryNotFound)
}

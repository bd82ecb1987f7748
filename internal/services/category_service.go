package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryName = errors.New("category name cannot be empty")
)

// CategoryService provides business logic for task category operations.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	checker      *access.Checker
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, checker *access.Checker) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		checker:      checker,
	}
}

// CategoryInput represents parameters to create or update a category.
type CategoryInput struct {
	Name        string
	Description string
	Color       string
}

// CreateCategory creates a new category owned by the actor.
func (s *CategoryService) CreateCategory(actor uint64, input CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidCategoryName
	}

	category := &models.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Color:       input.Color,
		OwnerID:     actor,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// ListCategories returns the actor's categories.
func (s *CategoryService) ListCategories(actor uint64) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListByOwner(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns a category the actor owns.
func (s *CategoryService) GetCategory(actor, id uint64) (*models.Category, error) {
	if err := s.authorize(actor, access.OpRead, id); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// UpdateCategory updates a category the actor owns.
func (s *CategoryService) UpdateCategory(actor, id uint64, input CategoryInput) (*models.Category, error) {
	if err := s.authorize(actor, access.OpWrite, id); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidCategoryName
	}
	category.Name = strings.TrimSpace(input.Name)
	category.Description = input.Description
	category.Color = input.Color

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category the actor owns.
func (s *CategoryService) DeleteCategory(actor, id uint64) error {
	if err := s.authorize(actor, access.OpDelete, id); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *CategoryService) authorize(actor uint64, op access.Operation, id uint64) error {
	decision, err := s.checker.Authorize(actor, op, access.ResourceRef{Kind: access.KindCategory, ID: id})
	if err != nil {
		return fmt.Errorf("failed to authorize: %w", err)
	}
	return denialError(decision, ErrCategoryNotFound)
}

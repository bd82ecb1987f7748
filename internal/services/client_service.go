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
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientName = errors.New("client name cannot be empty")
	ErrClientHasProjects = errors.New("client still has projects")
)

// ClientService provides business logic for client operations.
type ClientService struct {
	clientRepo repository.ClientRepository
	checker    *access.Checker
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo repository.ClientRepository, checker *access.Checker) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		checker:    checker,
	}
}

// ClientInput represents parameters to create or update a client.
type ClientInput struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	Company    string
	Notes      string
	HourlyRate float64
	IsActive   *bool
}

// CreateClient creates a new client owned by the actor.
func (s *ClientService) CreateClient(actor uint64, input ClientInput) (*models.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidClientName
	}

	client := &models.Client{
		Name:       strings.TrimSpace(input.Name),
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		Company:    input.Company,
		Notes:      input.Notes,
		HourlyRate: input.HourlyRate,
		IsActive:   true,
		OwnerID:    actor,
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// ListClients returns the actor's clients.
func (s *ClientService) ListClients(actor uint64) ([]models.Client, error) {
	clients, err := s.clientRepo.ListByOwner(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// GetClient returns a client the actor owns.
func (s *ClientService) GetClient(actor, id uint64) (*models.Client, error) {
	if err := s.authorize(actor, access.OpRead, id); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// UpdateClient updates a client the actor owns.
func (s *ClientService) UpdateClient(actor, id uint64, input ClientInput) (*models.Client, error) {
	if err := s.authorize(actor, access.OpWrite, id); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidClientName
	}
	client.Name = strings.TrimSpace(input.Name)
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address
	client.Company = input.Company
	client.Notes = input.Notes
	client.HourlyRate = input.HourlyRate
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient removes a client the actor owns. A client with projects
// cannot be deleted.
func (s *ClientService) DeleteClient(actor, id uint64) error {
	if err := s.authorize(actor, access.OpDelete, id); err != nil {
		return err
	}

	count, err := s.clientRepo.CountProjects(id)
	if err != nil {
		return fmt.Errorf("failed to count client projects: %w", err)
	}
	if count > 0 {
		return ErrClientHasProjects
	}

	if err := s.clientRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *ClientService) authorize(actor uint64, op access.Operation, id uint64) error {
	decision, err := s.checker.Authorize(actor, op, access.ResourceRef{Kind: access.KindClient, ID: id})
	if err != nil {
		return fmt.Errorf("failed to authorize: %w", err)
	}
	return denialError(decision, ErrClientNotFound)
}

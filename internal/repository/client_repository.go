package repository

import (
	"github.com/webgigs/work-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// FindByID finds a client by ID with optional preloading
func (r *GormClientRepository) FindByID(id uint64, preload ...string) (*models.Client, error) {
	var client models.Client
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ListByOwner lists all clients owned by a user
func (r *GormClientRepository) ListByOwner(ownerID uint64) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("clients.created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Update updates a client
func (r *GormClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete soft deletes a client
func (r *GormClientRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Client{}, id).Error
}

// CountProjects counts live projects referencing the client
func (r *GormClientRepository) CountProjects(clientID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}

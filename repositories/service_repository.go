package repositories

import (
	"context"

	"github.com/FullStack-Digital-CA/medicare/models"
	"gorm.io/gorm"
)

type ServiceRepositoryImpl interface {
	GetAllPublic(ctx context.Context) ([]models.Service, error)
	GetAllAdmin(ctx context.Context) ([]models.AdminServiceRow, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepositoryImpl {
	return &serviceRepository{db: db}
}

// GetAllPublic returns every service in the order the public feed expects:
// display order first, newest first within the same order value.
func (r *serviceRepository) GetAllPublic(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// GetAllAdmin returns the flat dashboard listing: every service with its
// category title pulled in through a left join, newest first. A missing
// category leaves category_title null.
func (r *serviceRepository) GetAllAdmin(ctx context.Context) ([]models.AdminServiceRow, error) {
	rows := []models.AdminServiceRow{}
	err := r.db.WithContext(ctx).
		Table("services").
		Select(`services.id, services.name, services.slug, services.description,
			services.short_description, services.price, services.duration,
			services.category_id, service_categories.title AS category_title,
			services.image_url, services.is_active, services.display_order,
			services.created_at, services.updated_at`).
		Joins("LEFT JOIN service_categories ON service_categories.id = services.category_id").
		Order("services.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

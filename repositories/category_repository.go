package repositories

import (
	"context"

	"github.com/FullStack-Digital-CA/medicare/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.ServiceCategory, error)
	GetByID(ctx context.Context, id uint) (*models.ServiceCategory, error)
	Create(ctx context.Context, category *models.ServiceCategory) error
	Update(ctx context.Context, category *models.ServiceCategory) error
	Delete(ctx context.Context, id uint) (bool, error)
	CountServices(ctx context.Context, id uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

// GetAll returns every category in display order, ties broken by title.
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	err := r.db.WithContext(ctx).
		Order("display_order ASC, title ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.ServiceCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.ServiceCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category only when no service references it. The guard
// lives inside the statement itself, so a service inserted between an
// advisory CountServices call and the delete still blocks the delete.
func (r *categoryRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`DELETE FROM service_categories
		 WHERE id = ?
		   AND NOT EXISTS (SELECT 1 FROM services WHERE category_id = ?)`,
		id, id,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountServices reports how many services still reference the category.
func (r *categoryRepository) CountServices(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("category_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

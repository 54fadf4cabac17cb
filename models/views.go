package models

import (
	"strconv"
	"time"
)

// PublicService is the shape of a service in the public catalog feed consumed
// by the marketing website. Price is serialized as a fixed two-decimal string
// and ImageURL falls back to an empty string instead of null.
type PublicService struct {
	ID               uint      `json:"id"`
	CategoryID       uint      `json:"categoryId"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Price            string    `json:"price"`
	Duration         int       `json:"duration"`
	DisplayOrder     int       `json:"displayOrder"`
	IsActive         bool      `json:"isActive"`
	ImageURL         string    `json:"imageUrl"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// PublicCategory embeds the category's services, already ordered.
type PublicCategory struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Icon         *string         `json:"icon"`
	DisplayOrder int             `json:"displayOrder"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	Services     []PublicService `json:"services"`
}

// AdminServiceRow is the flat admin listing: a service joined with its
// category title. CategoryTitle is null when the category no longer exists;
// the dashboard renders that as "Uncategorized".
type AdminServiceRow struct {
	ID               uint      `gorm:"column:id" json:"id"`
	Name             string    `gorm:"column:name" json:"name"`
	Slug             string    `gorm:"column:slug" json:"slug"`
	Description      string    `gorm:"column:description" json:"description"`
	ShortDescription string    `gorm:"column:short_description" json:"shortDescription"`
	Price            float64   `gorm:"column:price" json:"price"`
	Duration         int       `gorm:"column:duration" json:"duration"`
	CategoryID       uint      `gorm:"column:category_id" json:"categoryId"`
	CategoryTitle    *string   `gorm:"column:category_title" json:"categoryTitle"`
	ImageURL         string    `gorm:"column:image_url" json:"imageUrl"`
	IsActive         bool      `gorm:"column:is_active" json:"isActive"`
	DisplayOrder     int       `gorm:"column:display_order" json:"displayOrder"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// FormatPrice renders a currency amount the way the public feed expects it.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// BuildPublicCatalog groups services under their categories. Both slices are
// expected in their canonical order; ordering is preserved. A service whose
// category id matches no category is simply not surfaced here.
func BuildPublicCatalog(categories []ServiceCategory, services []Service) []PublicCategory {
	catalog := make([]PublicCategory, 0, len(categories))
	for _, category := range categories {
		entry := PublicCategory{
			ID:           category.ID,
			Title:        category.Title,
			Slug:         category.Slug,
			Description:  category.Description,
			Icon:         category.Icon,
			DisplayOrder: category.DisplayOrder,
			IsActive:     category.IsActive,
			CreatedAt:    category.CreatedAt,
			UpdatedAt:    category.UpdatedAt,
			Services:     []PublicService{},
		}
		for _, service := range services {
			if service.CategoryID != category.ID {
				continue
			}
			entry.Services = append(entry.Services, PublicService{
				ID:               service.ID,
				CategoryID:       service.CategoryID,
				Name:             service.Name,
				Slug:             service.Slug,
				Description:      service.Description,
				ShortDescription: service.ShortDescription,
				Price:            FormatPrice(service.Price),
				Duration:         service.Duration,
				DisplayOrder:     service.DisplayOrder,
				IsActive:         service.IsActive,
				ImageURL:         service.ImageURL,
				CreatedAt:        service.CreatedAt,
				UpdatedAt:        service.UpdatedAt,
			})
		}
		catalog = append(catalog, entry)
	}
	return catalog
}

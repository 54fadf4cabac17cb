package models

import (
	"time"
)

// ServiceCategory groups services for the public catalog and the admin
// tables. Slug is derived from the title on every write; it carries no
// uniqueness constraint, matching the live database.
type ServiceCategory struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	Slug         string  `gorm:"not null" json:"slug"`
	Description  string  `json:"description"`
	Icon         *string `json:"icon"`
	IsActive     bool    `gorm:"column:is_active;not null" json:"isActive"`
	DisplayOrder int     `gorm:"column:display_order;not null" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

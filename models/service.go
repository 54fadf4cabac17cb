package models

import (
	"time"
)

type Service struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Name             string  `gorm:"not null" json:"name"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	ShortDescription string  `gorm:"column:short_description" json:"shortDescription"`
	Price            float64 `gorm:"not null" json:"price"`
	Duration         int     `gorm:"not null" json:"duration"` // in minutes
	CategoryID       uint    `gorm:"column:category_id;not null" json:"categoryId"`
	ImageURL         string  `gorm:"column:image_url" json:"imageUrl"`

	// No default tags on these: gorm drops an explicit false/0 on insert when
	// a default is declared. Every write path supplies the values.
	IsActive     bool `gorm:"column:is_active;not null" json:"isActive"`
	DisplayOrder int  `gorm:"column:display_order;not null" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import (
	"time"

	"github.com/FullStack-Digital-CA/medicare/utils"
	"gorm.io/gorm"
)

// Role determines which parts of the dashboard a user can see.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleNurse     Role = "nurse"
	RoleFrontdesk Role = "frontdesk"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	Email     string `gorm:"not null" json:"email"`
	FirstName string `gorm:"column:first_name;not null" json:"firstName"`
	LastName  string `gorm:"column:last_name;not null" json:"lastName"`
	Role      Role   `gorm:"type:varchar(20);not null;default:'frontdesk'" json:"role"`
	IsActive  bool   `gorm:"column:active;not null" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

// Hash the password before storing
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

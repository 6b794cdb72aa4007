package user

import (
	"time"

	"github.com/google/uuid"
)

// RoleDataAnalyst is the restricted role: visibility limited to files
// granted through UserFileGrant. Every other role is treated as elevated.
const (
	RoleDataAnalyst = "data-analyst"
	RoleDataAdmin   = "data-admin"
	RoleAdmin       = "admin"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	LastName  string    `gorm:"column:last_name" json:"last_name"`
	Email     string    `gorm:"column:email" json:"email"`
	Role      string    `gorm:"not null;column:role" json:"role"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "app_user" }

package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	Name         string    `gorm:"size:64" json:"name"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByEmail matches the stored (lowercased) email exactly.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

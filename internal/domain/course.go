package domain

import (
	"context"
	"time"
)

type Course struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"size:191" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Instructor  string `gorm:"size:64" json:"instructor"`
	// Duration in minutes.
	Duration  int       `json:"duration"`
	Price     float64   `gorm:"type:numeric(10,2)" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Course) TableName() string { return "courses" }

type CourseRepository interface {
	Create(ctx context.Context, c *Course) error
	FindByID(ctx context.Context, id string) (*Course, error)
	List(ctx context.Context, offset, limit int) ([]Course, int64, error)
}

package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-course-platform/internal/domain"
)

type CourseRepo struct{ db *gorm.DB }

func NewCourseRepo(db *gorm.DB) *CourseRepo { return &CourseRepo{db: db} }

func (r *CourseRepo) Create(ctx context.Context, c *domain.Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourseRepo) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	var c domain.Course
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CourseRepo) List(ctx context.Context, offset, limit int) ([]domain.Course, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Course{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var courses []domain.Course
	if err := tx.Offset(offset).Limit(limit).Order("created_at").Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

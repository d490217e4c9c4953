package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-course-platform/internal/domain"
)

type EnrollmentRepo struct{ db *gorm.DB }

func NewEnrollmentRepo(db *gorm.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// Create inserts a new ledger record. On postgres the partial unique index
// over (user_id, course_id) where status = 'active' turns a lost race into a
// unique violation, reported as ALREADY_ENROLLED.
func (r *EnrollmentRepo) Create(ctx context.Context, e *domain.Enrollment) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if isDupKey(err) {
			return domain.Wrap(domain.CodeAlreadyEnrolled, "already enrolled", err)
		}
		return err
	}
	return nil
}

func (r *EnrollmentRepo) FindByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *EnrollmentRepo) FindActive(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.WithContext(ctx).
		First(&e, "user_id = ? AND course_id = ? AND status = ?", userID, courseID, domain.EnrollmentActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *EnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	var list []domain.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).Error
	return list, err
}

// UpdateStatus flips id from `from` to `to` in one conditional UPDATE; a
// concurrent transition loses by matching zero rows.
func (r *EnrollmentRepo) UpdateStatus(ctx context.Context, id string, from, to domain.EnrollmentStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// isDupKey matches unique-violation messages across drivers instead of
// relying on gorm.ErrDuplicatedKey, which varies between gorm versions.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

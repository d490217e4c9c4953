package domain

import (
	"context"
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// Enrollment is one record in the ledger. Records are never deleted;
// re-enrolling after cancellation creates a fresh record, so the history of
// a (user, course) pair stays intact. At most one record per pair may be
// active at a time, backed by a partial unique index on postgres.
type Enrollment struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	UserID   string `gorm:"size:36;index;uniqueIndex:uniq_active_enrollment,where:status = 'active'" json:"userId"`
	CourseID string `gorm:"size:36;uniqueIndex:uniq_active_enrollment" json:"courseId"`
	// CourseTitle is captured at enroll time and never re-synced.
	CourseTitle string           `gorm:"size:191" json:"courseTitle"`
	Status      EnrollmentStatus `gorm:"size:16" json:"status"`
	EnrolledAt  time.Time        `json:"enrolledAt"`
	CreatedAt   time.Time        `json:"-"`
	UpdatedAt   time.Time        `json:"-"`
}

func (Enrollment) TableName() string { return "enrollments" }

type EnrollmentRepository interface {
	Create(ctx context.Context, e *Enrollment) error
	FindByID(ctx context.Context, id string) (*Enrollment, error)
	FindActive(ctx context.Context, userID, courseID string) (*Enrollment, error)
	// ListByUser returns the user's records in insertion order.
	ListByUser(ctx context.Context, userID string) ([]Enrollment, error)
	// UpdateStatus transitions id from `from` to `to` atomically and reports
	// whether a row actually changed.
	UpdateStatus(ctx context.Context, id string, from, to EnrollmentStatus) (bool, error)
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-course-platform/internal/domain"
	"go-course-platform/pkg/utils"
)

// EnrollmentService is the ledger. State machine per (user, course) lineage:
//
//	none -> active -> {completed, cancelled}
//
// completed is terminal; a cancelled lineage accepts a fresh enroll, which
// creates a new record. At most one record per pair is active at a time:
// enroll serializes per (user, course) key in process, and the repository's
// conditional insert backs that up across instances.
type EnrollmentService struct {
	enrollments domain.EnrollmentRepository
	courses     CourseDirectory
	// lookupTimeout bounds the course-existence check, the one dependent
	// call on the enroll path.
	lookupTimeout time.Duration
	perKey        keyedMutex
	log           *zap.Logger
}

func NewEnrollmentService(enrollments domain.EnrollmentRepository, courses CourseDirectory, lookupTimeout time.Duration, log *zap.Logger) *EnrollmentService {
	if lookupTimeout <= 0 {
		lookupTimeout = 3 * time.Second
	}
	return &EnrollmentService{
		enrollments:   enrollments,
		courses:       courses,
		lookupTimeout: lookupTimeout,
		log:           log,
	}
}

func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	if userID == "" || courseID == "" {
		return nil, domain.E(domain.CodeInvalidInput, "userId and courseId are required")
	}

	course, err := s.lookupCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	mu := s.perKey.Lock(userID + "\x00" + courseID)
	defer mu.Unlock()

	active, err := s.enrollments.FindActive(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.E(domain.CodeAlreadyEnrolled, "already enrolled")
	}

	e := &domain.Enrollment{
		ID:          utils.NewID(),
		UserID:      userID,
		CourseID:    courseID,
		CourseTitle: course.Title,
		Status:      domain.EnrollmentActive,
		EnrolledAt:  time.Now(),
	}
	if err := s.enrollments.Create(ctx, e); err != nil {
		return nil, err
	}
	s.log.Info("enrolled",
		zap.String("enrollment_id", e.ID),
		zap.String("user_id", userID),
		zap.String("course_id", courseID),
	)
	return e, nil
}

func (s *EnrollmentService) ListForUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	list, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Enrollment{}
	}
	return list, nil
}

func (s *EnrollmentService) Cancel(ctx context.Context, enrollmentID, requesterID string) error {
	return s.transition(ctx, enrollmentID, requesterID, domain.EnrollmentCancelled)
}

func (s *EnrollmentService) Complete(ctx context.Context, enrollmentID, requesterID string) error {
	return s.transition(ctx, enrollmentID, requesterID, domain.EnrollmentCompleted)
}

// transition moves an active record to a terminal status. Re-running a
// transition on a non-active record fails with INVALID_TRANSITION rather
// than silently succeeding.
func (s *EnrollmentService) transition(ctx context.Context, enrollmentID, requesterID string, to domain.EnrollmentStatus) error {
	e, err := s.enrollments.FindByID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.E(domain.CodeNotFound, "enrollment not found")
	}
	if e.UserID != requesterID {
		return domain.E(domain.CodeForbidden, "not the owner")
	}
	if e.Status != domain.EnrollmentActive {
		return domain.Ef(domain.CodeInvalidTransition, "cannot %s a %s enrollment", to, e.Status)
	}
	ok, err := s.enrollments.UpdateStatus(ctx, enrollmentID, domain.EnrollmentActive, to)
	if err != nil {
		return err
	}
	if !ok {
		// Lost a race with another transition on the same record.
		return domain.E(domain.CodeInvalidTransition, "enrollment is no longer active")
	}
	s.log.Info("enrollment transitioned",
		zap.String("enrollment_id", enrollmentID),
		zap.String("status", string(to)),
	)
	return nil
}

// lookupCourse performs the single dependent call on the enroll path under a
// bounded timeout; a deadline maps to DEPENDENCY_UNAVAILABLE so the caller
// can retry instead of hanging.
func (s *EnrollmentService) lookupCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	lctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	course, err := s.courses.Get(lctx, courseID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && lctx.Err() == context.DeadlineExceeded {
			return nil, domain.Wrap(domain.CodeDependencyUnavailable, "course lookup timed out", err)
		}
		return nil, err
	}
	return course, nil
}

package service

import (
	"context"
	"sync"

	"go-course-platform/internal/domain"
)

// In-memory repositories for service tests. They hold their own locks so the
// services' concurrency behavior is what the tests exercise, not the mocks'.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return domain.E(domain.CodeDuplicateEmail, "email already registered")
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memEnrollmentRepo struct {
	mu      sync.Mutex
	records []*domain.Enrollment
}

func newMemEnrollmentRepo() *memEnrollmentRepo { return &memEnrollmentRepo{} }

func (m *memEnrollmentRepo) Create(_ context.Context, e *domain.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.records = append(m.records, &cp)
	return nil
}

func (m *memEnrollmentRepo) FindByID(_ context.Context, id string) (*domain.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memEnrollmentRepo) FindActive(_ context.Context, userID, courseID string) (*domain.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.UserID == userID && r.CourseID == courseID && r.Status == domain.EnrollmentActive {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memEnrollmentRepo) ListByUser(_ context.Context, userID string) ([]domain.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Enrollment
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memEnrollmentRepo) UpdateStatus(_ context.Context, id string, from, to domain.EnrollmentStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id && r.Status == from {
			r.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (m *memEnrollmentRepo) activeCount(userID, courseID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.records {
		if r.UserID == userID && r.CourseID == courseID && r.Status == domain.EnrollmentActive {
			n++
		}
	}
	return n
}

// memCourseDir serves a fixed set of courses.
type memCourseDir struct {
	courses map[string]*domain.Course
}

func newMemCourseDir(courses ...*domain.Course) *memCourseDir {
	d := &memCourseDir{courses: make(map[string]*domain.Course)}
	for _, c := range courses {
		d.courses[c.ID] = c
	}
	return d
}

func (d *memCourseDir) Exists(_ context.Context, id string) (bool, error) {
	_, ok := d.courses[id]
	return ok, nil
}

func (d *memCourseDir) Get(_ context.Context, id string) (*domain.Course, error) {
	if c, ok := d.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.E(domain.CodeCourseNotFound, "course not found")
}

// stalledCourseDir blocks until the caller's deadline fires.
type stalledCourseDir struct{}

func (stalledCourseDir) Exists(ctx context.Context, _ string) (bool, error) {
	<-ctx.Done()
	return false, ctx.Err()
}

func (stalledCourseDir) Get(ctx context.Context, _ string) (*domain.Course, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-course-platform/internal/core/cache"
	"go-course-platform/internal/domain"
	"go-course-platform/pkg/utils"
)

// CourseDirectory is the contract the enrollment ledger consumes: course
// existence as an external fact.
type CourseDirectory interface {
	Exists(ctx context.Context, courseID string) (bool, error)
	Get(ctx context.Context, courseID string) (*domain.Course, error)
}

// CatalogService serves course reads, optionally through redis. The cache is
// best-effort: with no cache configured every read goes to the repository.
type CatalogService struct {
	courses  domain.CourseRepository
	cache    *cache.Cache
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewCatalogService(courses domain.CourseRepository, c *cache.Cache, cacheTTL time.Duration, log *zap.Logger) *CatalogService {
	return &CatalogService{courses: courses, cache: c, cacheTTL: cacheTTL, log: log}
}

func (s *CatalogService) Create(ctx context.Context, c *domain.Course) (string, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return "", domain.E(domain.CodeInvalidInput, "title is required")
	}
	if c.ID == "" {
		c.ID = utils.NewID()
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *CatalogService) List(ctx context.Context, offset, limit int) ([]domain.Course, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.courses.List(ctx, offset, limit)
}

func (s *CatalogService) Get(ctx context.Context, courseID string) (*domain.Course, error) {
	c, err := s.load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.E(domain.CodeCourseNotFound, "course not found")
	}
	return c, nil
}

func (s *CatalogService) Exists(ctx context.Context, courseID string) (bool, error) {
	c, err := s.load(ctx, courseID)
	if err != nil {
		return false, err
	}
	return c != nil, nil
}

func (s *CatalogService) load(ctx context.Context, courseID string) (*domain.Course, error) {
	if s.cache == nil {
		return s.courses.FindByID(ctx, courseID)
	}
	c, err := cache.GetOrLoadJSON(s.cache, ctx, "course:"+courseID, s.cacheTTL, func(ctx context.Context) (*domain.Course, error) {
		return s.courses.FindByID(ctx, courseID)
	})
	if err != nil {
		// Degrade to the repository rather than failing reads on a cache
		// outage.
		s.log.Warn("course cache read failed", zap.String("course_id", courseID), zap.Error(err))
		return s.courses.FindByID(ctx, courseID)
	}
	return c, nil
}

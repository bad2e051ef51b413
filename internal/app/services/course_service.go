package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/app/repositories"
	"github.com/studymate/courseapi/internal/pkg/apperrors"
)

// CourseService defines the interface for read-only course operations
type CourseService interface {
	ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	GetCategoryStats(ctx context.Context) ([]models.CategoryStats, error)
	GetSecondHighestInCategory(ctx context.Context, category string) (*models.Course, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// ListCourses returns every course matching the filter. An empty result is not an error.
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	s.logger.Debug().
		Str("search", filter.Search).
		Str("category", filter.Category).
		Str("difficulty", filter.Difficulty).
		Str("sortBy", string(filter.SortBy)).
		Str("order", string(filter.Order)).
		Msg("Listing courses")

	courses, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list courses")
		return nil, apperrors.NewDatabaseError(err)
	}
	return courses, nil
}

// GetCourse retrieves a course by ID
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		s.logger.Error().Err(err).Int64("courseID", id).Msg("Failed to get course")
		return nil, apperrors.NewDatabaseError(err)
	}
	return course, nil
}

// GetCategoryStats returns count and mean rating per category, the mean rounded to 2 places
func (s *courseServiceImpl) GetCategoryStats(ctx context.Context) ([]models.CategoryStats, error) {
	aggregates, err := s.courseRepo.AggregateByCategory(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to aggregate categories")
		return nil, apperrors.NewDatabaseError(err)
	}

	stats := make([]models.CategoryStats, 0, len(aggregates))
	for _, agg := range aggregates {
		stats = append(stats, models.CategoryStats{
			Name:      agg.Category,
			Count:     agg.Count,
			AvgRating: agg.AvgRating.Round(2).InexactFloat64(),
		})
	}
	return stats, nil
}

// GetSecondHighestInCategory returns the second entry of the category's rating ranking.
// Equal ratings rank by id, so two courses tied for first yield the later one.
func (s *courseServiceImpl) GetSecondHighestInCategory(ctx context.Context, category string) (*models.Course, error) {
	top, err := s.courseRepo.TopRatedInCategory(ctx, category, 2)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("Failed to rank category courses")
		return nil, apperrors.NewDatabaseError(err)
	}

	if len(top) < 2 {
		return nil, apperrors.ErrInsufficientCourses
	}
	return top[1], nil
}

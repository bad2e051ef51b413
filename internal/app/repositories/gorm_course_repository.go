package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/db"
	"github.com/studymate/courseapi/internal/pkg/logger"
)

// GormCourseRepository serves the course store on the sqlite and mysql drivers
type GormCourseRepository struct {
	db *gorm.DB
}

// NewGormCourseRepository creates a new GormCourseRepository
func NewGormCourseRepository(db *gorm.DB) *GormCourseRepository {
	return &GormCourseRepository{db: db}
}

// List returns every course matching the filter
func (r *GormCourseRepository) List(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	query := r.db.WithContext(ctx).Model(&models.Course{})

	if filter.Search != "" {
		lower := "LOWER"
		if db.IsUnicodeSQLite(r.db) {
			lower = db.SQLiteLowerFunc
		}
		pattern := strings.ToLower(filter.searchPattern())
		query = query.Where(fmt.Sprintf("(%[1]s(name) LIKE ? OR %[1]s(description) LIKE ?)", lower), pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	for _, clause := range filter.orderClauses() {
		query = query.Order(clause)
	}

	courses := []*models.Course{}
	if err := query.Find(&courses).Error; err != nil {
		logger.Error().Err(err).Msg("Error listing courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	return courses, nil
}

// GetByID retrieves a course by ID
func (r *GormCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error getting course by ID")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return &course, nil
}

// TopRatedInCategory returns at most limit courses of a category, best rated first
func (r *GormCourseRepository) TopRatedInCategory(ctx context.Context, category string, limit int) ([]*models.Course, error) {
	courses := []*models.Course{}
	if limit <= 0 {
		return courses, nil
	}

	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("rating DESC").
		Order("id ASC").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		logger.Error().Err(err).Str("category", category).Msg("Error querying top rated courses")
		return nil, fmt.Errorf("error querying top rated courses: %w", err)
	}
	return courses, nil
}

// AggregateByCategory returns course count and mean rating per category
func (r *GormCourseRepository) AggregateByCategory(ctx context.Context) ([]models.CategoryAggregate, error) {
	aggregates := []models.CategoryAggregate{}
	err := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Select("category, COUNT(id) AS count, AVG(rating) AS avg_rating").
		Group("category").
		Order("category ASC").
		Scan(&aggregates).Error
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating categories")
		return nil, fmt.Errorf("error aggregating categories: %w", err)
	}
	return aggregates, nil
}

// Count returns the number of stored courses
func (r *GormCourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Create inserts a course and returns the store-assigned id
func (r *GormCourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	if course.Instructor != nil && strings.TrimSpace(*course.Instructor) == "" {
		course.Instructor = nil
	}
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		logger.Error().Err(err).Str("name", course.Name).Msg("Error creating course")
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return course.ID, nil
}

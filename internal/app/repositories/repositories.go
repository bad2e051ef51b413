package repositories

import (
	"context"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/db"
	"github.com/studymate/courseapi/internal/pkg/apperrors"
)

// ErrCourseNotFound is returned when no course has the requested id.
var ErrCourseNotFound = apperrors.ErrCourseNotFound

// CourseRepository is the course store capability. Implementations only read,
// except for Create which backs seeding and tests.
type CourseRepository interface {
	List(ctx context.Context, filter CourseFilter) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	TopRatedInCategory(ctx context.Context, category string, limit int) ([]*models.Course, error)
	AggregateByCategory(ctx context.Context) ([]models.CategoryAggregate, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, course *models.Course) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository CourseRepository
}

// NewRepositories initializes all repositories for the opened database
func NewRepositories(database *db.Database) *Repositories {
	var courses CourseRepository
	if database.Postgres != nil {
		courses = NewPostgresCourseRepository(database.Postgres.Pool)
	} else {
		courses = NewGormCourseRepository(database.Gorm)
	}

	return &Repositories{
		CourseRepository: courses,
	}
}

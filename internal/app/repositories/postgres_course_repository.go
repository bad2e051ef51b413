package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/pkg/helpers"
	"github.com/studymate/courseapi/internal/pkg/logger"
)

// PostgresCourseRepository handles course database operations over pgx
type PostgresCourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresCourseRepository creates a new PostgresCourseRepository
func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// scanCourse reads one row in courseColumns order
func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var instructor sql.NullString
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.Price,
		&course.Image,
		&course.Duration,
		&course.Difficulty,
		&course.Category,
		&instructor,
		&course.EnrollmentCount,
		&course.Rating,
	)
	if err != nil {
		return nil, err
	}
	course.Instructor = helpers.StringPtr(instructor)
	return course, nil
}

// queryCourses runs a course SELECT and collects every row
func (r *PostgresCourseRepository) queryCourses(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Course, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("sql", sqlStr).Msg("Error executing course query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// List returns every course matching the filter
func (r *PostgresCourseRepository) List(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	return r.queryCourses(ctx, buildListQuery(r.sb, filter))
}

// GetByID retrieves a course by ID
func (r *PostgresCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sqlStr, args, err := r.sb.Select(courseColumns...).
		From(coursesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// TopRatedInCategory returns at most limit courses of a category, best rated first
func (r *PostgresCourseRepository) TopRatedInCategory(ctx context.Context, category string, limit int) ([]*models.Course, error) {
	if limit <= 0 {
		return []*models.Course{}, nil
	}
	return r.queryCourses(ctx, buildTopRatedQuery(r.sb, category, uint64(limit)))
}

// AggregateByCategory returns course count and mean rating per category
func (r *PostgresCourseRepository) AggregateByCategory(ctx context.Context) ([]models.CategoryAggregate, error) {
	sqlStr, args, err := buildCategoryAggregateQuery(r.sb).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category aggregate query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing category aggregate query")
		return nil, fmt.Errorf("error aggregating categories: %w", err)
	}
	defer rows.Close()

	aggregates := []models.CategoryAggregate{}
	for rows.Next() {
		var agg models.CategoryAggregate
		if err := rows.Scan(&agg.Category, &agg.Count, &agg.AvgRating); err != nil {
			logger.Error().Err(err).Msg("Error scanning category aggregate row")
			return nil, fmt.Errorf("error scanning category aggregate row: %w", err)
		}
		aggregates = append(aggregates, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category aggregate rows: %w", err)
	}

	return aggregates, nil
}

// Count returns the number of stored courses
func (r *PostgresCourseRepository) Count(ctx context.Context) (int64, error) {
	sqlStr, args, err := r.sb.Select("COUNT(*)").From(coursesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Create inserts a course and returns the store-assigned id
func (r *PostgresCourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sqlStr, args, err := r.sb.Insert(coursesTable).
		Columns(courseColumns[1:]...).
		Values(
			course.Name,
			course.Description,
			course.Price,
			course.Image,
			course.Duration,
			course.Difficulty,
			course.Category,
			helpers.GetNullString(course.Instructor),
			course.EnrollmentCount,
			course.Rating,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", course.Name).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	course.ID = id
	return id, nil
}

package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	appModels "github.com/studymate/courseapi/internal/app/models"
	appRepos "github.com/studymate/courseapi/internal/app/repositories"
)

func instructor(name string) *string { return &name }

// DefaultCourses is the sample catalog inserted into an empty store.
func DefaultCourses() []*appModels.Course {
	return []*appModels.Course{
		{
			Name:            "Python for Beginners",
			Description:     "Variables, control flow and functions in Python with hands-on exercises.",
			Price:           decimal.RequireFromString("49.99"),
			Image:           "/images/python-beginners.png",
			Duration:        12,
			Difficulty:      "Beginner",
			Category:        "Programming",
			Instructor:      instructor("Jane Smith"),
			EnrollmentCount: 1520,
			Rating:          decimal.RequireFromString("4.60"),
		},
		{
			Name:            "Concurrent Programming in Go",
			Description:     "Goroutines, channels and the sync package applied to real services.",
			Price:           decimal.RequireFromString("89.00"),
			Image:           "/images/go-concurrency.png",
			Duration:        18,
			Difficulty:      "Advanced",
			Category:        "Programming",
			Instructor:      instructor("Rob Turner"),
			EnrollmentCount: 640,
			Rating:          decimal.RequireFromString("4.80"),
		},
		{
			Name:            "Web Development Bootcamp",
			Description:     "HTML, CSS and JavaScript from the first page to a deployed site.",
			Price:           decimal.RequireFromString("129.00"),
			Image:           "/images/web-bootcamp.png",
			Duration:        40,
			Difficulty:      "Intermediate",
			Category:        "Programming",
			EnrollmentCount: 2310,
			Rating:          decimal.RequireFromString("4.40"),
		},
		{
			Name:            "Intro to Data Science",
			Description:     "Exploring datasets with statistics, notebooks and visualisation.",
			Price:           decimal.RequireFromString("99.99"),
			Image:           "/images/data-science.png",
			Duration:        24,
			Difficulty:      "Intermediate",
			Category:        "Data Science",
			Instructor:      instructor("Maria Lopez"),
			EnrollmentCount: 980,
			Rating:          decimal.RequireFromString("4.50"),
		},
		{
			Name:            "Machine Learning Foundations",
			Description:     "Regression, classification and model evaluation without the hype.",
			Price:           decimal.RequireFromString("149.00"),
			Image:           "/images/ml-foundations.png",
			Duration:        30,
			Difficulty:      "Advanced",
			Category:        "Data Science",
			Instructor:      instructor("Ken Watanabe"),
			EnrollmentCount: 720,
			Rating:          decimal.RequireFromString("4.70"),
		},
		{
			Name:            "UI Design Essentials",
			Description:     "Layout, typography and colour for interfaces people enjoy using.",
			Price:           decimal.RequireFromString("59.00"),
			Image:           "/images/ui-design.png",
			Duration:        10,
			Difficulty:      "Beginner",
			Category:        "Design",
			EnrollmentCount: 430,
			Rating:          decimal.RequireFromString("4.20"),
		},
	}
}

// CreateDefaultData inserts DefaultCourses when the course store is empty.
// A populated store is left untouched.
func CreateDefaultData(ctx context.Context, courseRepo appRepos.CourseRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Courses)...")

	count, err := courseRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("courses", count).Msg("Courses already present, skipping seed")
		return nil
	}

	var finalErr error // To collect potential errors without stopping the process
	created := 0
	for _, course := range DefaultCourses() {
		id, err := courseRepo.Create(ctx, course)
		if err != nil {
			lgr.Error().Err(err).Str("name", course.Name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
		lgr.Debug().Int64("courseID", id).Str("name", course.Name).Msg("Default course created")
	}

	lgr.Info().Int("created", created).Msg("Default data check/creation finished.")
	return finalErr
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/app/repositories"
	"github.com/studymate/courseapi/internal/pkg/apperrors"
)

// Fixed context texts handed to the model when there is nothing to describe.
const (
	NoCoursesAvailable = "No courses available."
	NoCourseForID      = "No course found for the given ID"
)

// RenderCourseContext renders a single course as "<name>: <description>"
func RenderCourseContext(course *models.Course) string {
	return fmt.Sprintf("%s: %s", course.Name, course.Description)
}

// RenderCatalogContext renders the whole catalog in the block layout the model is prompted with.
func RenderCatalogContext(courses []*models.Course) string {
	if len(courses) == 0 {
		return NoCoursesAvailable
	}

	var b strings.Builder
	b.WriteString("Available Courses:\n\n")
	for _, c := range courses {
		fmt.Fprintf(&b, "- %s (ID: %d)\n", c.Name, c.ID)
		fmt.Fprintf(&b, "  Description: %s\n", c.Description)
		if c.Instructor != nil && *c.Instructor != "" {
			fmt.Fprintf(&b, "  Instructor: %s\n", *c.Instructor)
		}
		fmt.Fprintf(&b, "  Duration: %d\n", c.Duration)
		fmt.Fprintf(&b, "  Difficulty: %s\n", c.Difficulty)
		fmt.Fprintf(&b, "  Price: $%s\n\n", c.Price.StringFixed(2))
	}
	return b.String()
}

// ContextAssembler turns a course selector into prompt context text
type ContextAssembler struct {
	courseRepo repositories.CourseRepository
}

// NewContextAssembler creates a new ContextAssembler
func NewContextAssembler(courseRepo repositories.CourseRepository) *ContextAssembler {
	return &ContextAssembler{courseRepo: courseRepo}
}

// Build renders one course when courseID is set and non-zero, otherwise the whole
// catalog ordered by id. A missing course is rendered as NoCourseForID, not returned as an error.
func (a *ContextAssembler) Build(ctx context.Context, courseID *int64) (string, error) {
	if courseID != nil && *courseID != 0 {
		course, err := a.courseRepo.GetByID(ctx, *courseID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				return NoCourseForID, nil
			}
			return "", err
		}
		return RenderCourseContext(course), nil
	}

	courses, err := a.courseRepo.List(ctx, repositories.CourseFilter{
		SortBy: repositories.SortByID,
		Order:  repositories.SortAsc,
	})
	if err != nil {
		return "", err
	}
	return RenderCatalogContext(courses), nil
}

package dto

import "github.com/studymate/courseapi/internal/app/models"

// CourseResponse is the wire representation of a course. Decimal columns are
// emitted as JSON numbers.
type CourseResponse struct {
	ID              int64   `json:"id" example:"1"`
	Name            string  `json:"name" example:"Intro to Go"`
	Description     string  `json:"description" example:"Learn the basics of Go"`
	Price           float64 `json:"price" example:"49.99"`
	Image           string  `json:"image" example:"/images/go.png"`
	Duration        int     `json:"duration" example:"12"`
	Difficulty      string  `json:"difficulty" example:"Beginner"`
	Category        string  `json:"category" example:"Programming"`
	Instructor      *string `json:"instructor" example:"Jane Doe"`
	EnrollmentCount int     `json:"enrollment_count" example:"120"`
	Rating          float64 `json:"rating" example:"4.5"`
}

// CourseListQuery binds the optional filter and sort parameters of GET /courses.
type CourseListQuery struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
	SortBy     string `form:"sort_by"`
	Order      string `form:"order,default=asc"`
}

// CategoriesResponse wraps the per-category statistics.
type CategoriesResponse struct {
	Categories []models.CategoryStats `json:"categories"`
}

// NewCourseResponse converts a course model to its response form
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:              course.ID,
		Name:            course.Name,
		Description:     course.Description,
		Price:           course.Price.InexactFloat64(),
		Image:           course.Image,
		Duration:        course.Duration,
		Difficulty:      course.Difficulty,
		Category:        course.Category,
		Instructor:      course.Instructor,
		EnrollmentCount: course.EnrollmentCount,
		Rating:          course.Rating.InexactFloat64(),
	}
}

// NewCourseListResponse converts a slice of course models; the result is never nil.
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

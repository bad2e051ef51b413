package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studymate/courseapi/internal/app/models/dto"
	"github.com/studymate/courseapi/internal/app/repositories"
	"github.com/studymate/courseapi/internal/app/services"
	"github.com/studymate/courseapi/internal/middleware"
	"github.com/studymate/courseapi/internal/pkg/apperrors"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses lists courses with optional filters and sorting
// @Summary List courses
// @Description Lists every course matching the optional filters. search matches name or description case-insensitively; category and difficulty match exactly. Unknown sort_by values are ignored.
// @Tags courses
// @Accept json
// @Produce json
// @Param search query string false "Substring of name or description"
// @Param category query string false "Exact category"
// @Param difficulty query string false "Exact difficulty"
// @Param sort_by query string false "Course attribute to sort by" Enums(id, name, description, price, image, duration, difficulty, category, instructor, enrollment_count, rating)
// @Param order query string false "Sort direction" Enums(asc, desc) default(asc)
// @Success 200 {array} dto.CourseResponse "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var query dto.CourseListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	filter := repositories.NewCourseFilter(query.Search, query.Category, query.Difficulty, query.SortBy, query.Order)
	courses, err := c.courseService.ListCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Description Retrieves a single course by its ID
// @Tags courses
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.CourseResponse "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	idStr := ctx.Param("course_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid course ID"))
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

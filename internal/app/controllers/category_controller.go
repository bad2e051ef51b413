package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studymate/courseapi/internal/app/models/dto"
	"github.com/studymate/courseapi/internal/app/services"
	"github.com/studymate/courseapi/internal/middleware"
)

// CategoryController handles category statistics
type CategoryController struct {
	courseService services.CourseService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(courseService services.CourseService) *CategoryController {
	return &CategoryController{
		courseService: courseService,
	}
}

// GetCategoryStats returns course count and average rating per category
// @Summary Category statistics
// @Description Returns one entry per category with its course count and average rating rounded to 2 decimals
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories [get]
func (c *CategoryController) GetCategoryStats(ctx *gin.Context) {
	stats, err := c.courseService.GetCategoryStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoriesResponse{Categories: stats})
}

// GetSecondHighest returns the second-highest rated course of a category
// @Summary Second-highest rated course
// @Description Ranks the category by rating (ties by ID) and returns the second course
// @Tags categories
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} dto.CourseResponse "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Less than 2 courses found in this category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories/{category}/second-highest [get]
func (c *CategoryController) GetSecondHighest(ctx *gin.Context) {
	course, err := c.courseService.GetSecondHighestInCategory(ctx, ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

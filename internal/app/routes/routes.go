package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/studymate/courseapi/internal/app/controllers"
	"github.com/studymate/courseapi/internal/app/models/dto"
	"github.com/studymate/courseapi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	categoryController *controllers.CategoryController,
	chatController *controllers.ChatController,
) {
	router.GET("/health", controllers.HealthCheck)

	courses := router.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:course_id", courseController.GetCourseByID)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", categoryController.GetCategoryStats)
		categories.GET("/:category/second-highest", categoryController.GetSecondHighest)
	}

	api := router.Group("/api")
	{
		api.POST("/ask", middleware.ValidateJSON[dto.AskRequest](), chatController.Ask)
	}
}

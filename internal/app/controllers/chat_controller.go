package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studymate/courseapi/internal/app/models/dto"
	"github.com/studymate/courseapi/internal/app/services"
	"github.com/studymate/courseapi/internal/middleware"
)

// ChatController handles the course advisor chat
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Ask forwards a question to the completion provider with course context
// @Summary Ask the course advisor
// @Description Answers a question using either one course (course_context) or the whole catalog as context
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question and optional course id"
// @Success 200 {object} dto.AskResponse "Answer generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Store or completion provider failure"
// @Router /api/ask [post]
func (c *ChatController) Ask(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.AskRequest](ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	answer, err := c.chatService.Ask(ctx, *req.Message, req.CourseContext)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AskResponse{Response: answer})
}

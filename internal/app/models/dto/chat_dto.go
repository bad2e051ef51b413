package dto

// AskRequest is the body of POST /api/ask
type AskRequest struct {
	Message       *string `json:"message" binding:"required" validate:"required,max=4000" example:"Which course should I take to learn Go?"` // must be present, may be empty
	CourseContext *int64  `json:"course_context,omitempty" example:"1"`                                                                      // nil or 0 selects the whole catalog
}

// AskResponse carries the model's answer
type AskResponse struct {
	Response string `json:"response" example:"Start with Intro to Go."`
}

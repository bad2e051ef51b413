package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/studymate/courseapi/internal/app/models/dto"
)

// ValidatedBodyKey is the gin context key holding the decoded request body
const ValidatedBodyKey = "validatedBody"

var validate = validator.New()

// ValidateJSON decodes the request body into a fresh T, runs the validate tags
// and stores the result under ValidatedBodyKey. Invalid bodies are answered with 400.
func ValidateJSON[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := new(T)
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		if err := validate.Struct(obj); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			c.Abort()
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateJSON
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(ValidatedBodyKey)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*T)
	return obj, ok
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/VishnuDileesh/todo-api/internal/dto"
)

// bindingError writes the 422 response for a rejected payload. Validator
// failures list every violated field with a reason; anything else
// (malformed JSON, wrong types) gets a generic message.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, dto.FieldError{
				Field:  strings.ToLower(fe.Field()),
				Reason: reasonFor(fe),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: out})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "invalid request body"})
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

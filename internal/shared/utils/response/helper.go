package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketops/internal/shared/apperr"
)

func RespondJSON(c *gin.Context, status string, statusCode int, message string, result interface{}, errors interface{}) {
	c.JSON(statusCode, StandardApiResponse{
		Status:     status,
		StatusCode: statusCode,
		Message:    message,
		Result:     result,
		Errors:     errors,
	})
}

// RespondError renders a domain error with its application code. Errors
// that are not AppErrors fall back to the uncategorized code so no failure
// leaves the caller without a terminal response.
func RespondError(c *gin.Context, err error) {
	if appErr := apperr.From(err); appErr != nil {
		c.JSON(appErr.HTTPStatus, StandardApiResponse{
			Status:     "error",
			StatusCode: appErr.HTTPStatus,
			Code:       appErr.Code,
			Message:    appErr.Message,
			Errors:     appErr.Detail,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, StandardApiResponse{
		Status:     "error",
		StatusCode: http.StatusInternalServerError,
		Code:       apperr.ErrUncategorized.Code,
		Message:    err.Error(),
	})
}

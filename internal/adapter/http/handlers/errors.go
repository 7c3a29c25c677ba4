package handlers

import (
	"errors"
	"net/http"

	response "esquadrias_xpto/internal/adapter/http/dto/response"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// respondUseCaseError writes the error envelope for a failed use-case call.
// Multi-field validation failures become a 422 with a fields object; anything
// else goes through the handler's sentinel mapping.
func respondUseCaseError(c *gin.Context, err error, mapErr func(error) *pkg.AppError) {
	var fieldErrs pkg.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, response.FromFieldErrors(fieldErrs))
		return
	}
	appErr := mapErr(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvacdr/service-api/pkg/errors"
)

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError maps an application error onto the HTTP boundary.
// Not-found lookups become 404; every other failure, validation and
// parse errors included, collapses into a generic 500.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.IsNotFound(err) {
		status = http.StatusNotFound
	}

	c.Error(err)
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

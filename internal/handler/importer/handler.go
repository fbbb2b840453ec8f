package importer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvacdr/service-api/internal/service/importer"
	"github.com/hvacdr/service-api/pkg/httputil"
)

type Handler struct {
	service *importer.Service
	path    string
}

// NewHandler binds the import endpoint to the configured sample-data
// file path.
func NewHandler(service *importer.Service, path string) *Handler {
	return &Handler{service: service, path: path}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/import-sample-data", h.ImportSampleData)
}

func (h *Handler) ImportSampleData(c *gin.Context) {
	result, err := h.service.ImportFile(c.Request.Context(), h.path)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

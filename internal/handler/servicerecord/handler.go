package servicerecord

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/service/servicerecord"
	"github.com/hvacdr/service-api/pkg/errors"
	"github.com/hvacdr/service-api/pkg/httputil"
)

type Handler struct {
	service *servicerecord.Service
}

func NewHandler(service *servicerecord.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/service-records", h.CreateServiceRecord)
	r.GET("/customers/:id/service-records", h.ListCustomerRecords)
}

func (h *Handler) CreateServiceRecord(c *gin.Context) {
	var req model.CreateServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation("invalid service record payload", err))
		return
	}

	record, err := h.service.CreateServiceRecord(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) ListCustomerRecords(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, errors.NotFound("customer", err))
		return
	}

	records, err := h.service.ListCustomerRecords(c.Request.Context(), customerID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

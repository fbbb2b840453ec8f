package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/service/dashboard"
)

type fakeDashboardRepo struct {
	stats *model.DashboardStats
	err   error
}

func (f *fakeDashboardRepo) Stats(_ context.Context) (*model.DashboardStats, error) {
	return f.stats, f.err
}

func newTestRouter(repo *fakeDashboardRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(dashboard.NewService(repo)).RegisterRoutes(engine.Group(""))
	return engine
}

func TestGetStats(t *testing.T) {
	router := newTestRouter(&fakeDashboardRepo{
		stats: &model.DashboardStats{
			TotalCustomers:      12,
			TotalAppointments:   9,
			PendingAppointments: 4,
			TotalServices:       30,
			RecentCustomers:     3,
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard-stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total_customers": 12,
		"total_appointments": 9,
		"pending_appointments": 4,
		"total_services": 30,
		"recent_customers": 3
	}`, w.Body.String())
}

func TestGetStatsRepoFailureReturns500(t *testing.T) {
	router := newTestRouter(&fakeDashboardRepo{err: assert.AnError})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard-stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

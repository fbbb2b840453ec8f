package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hvacdr/service-api/internal/model"
)

// Stats recomputes every counter on each call; data volumes make
// incremental maintenance unnecessary.
func (r *dashboardRepository) Stats(ctx context.Context) (*model.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers)                            AS total_customers,
			(SELECT COUNT(*) FROM appointments)                         AS total_appointments,
			(SELECT COUNT(*) FROM appointments WHERE status = $1)       AS pending_appointments,
			(SELECT COUNT(*) FROM service_records)                      AS total_services,
			(SELECT COUNT(*) FROM customers WHERE created_at >= $2)     AS recent_customers
	`
	thirtyDaysAgo := time.Now().UTC().AddDate(0, 0, -30)

	var stats model.DashboardStats
	err := r.db.GetContext(ctx, &stats, query, model.DefaultAppointmentStatus, thirtyDaysAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return &stats, nil
}

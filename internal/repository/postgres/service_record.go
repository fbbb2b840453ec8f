package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hvacdr/service-api/internal/model"
)

const serviceRecordColumns = `
	id, customer_id, service_date, service_type, duration_hours, technician,
	services_performed, findings, recommendations, parts_used,
	labor_cost, parts_cost, total_cost, payment_method, payment_status,
	customer_satisfaction, follow_up_required, notes, created_at
`

// Create inserts the record and bumps the owning customer inside one
// transaction, so a failure on either statement leaves the store
// unchanged. The customer update matching zero rows is not an error:
// orphaned records are tolerated.
func (r *serviceRecordRepository) Create(ctx context.Context, record *model.ServiceRecord) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO service_records (
				customer_id, service_date, service_type, duration_hours, technician,
				services_performed, findings, recommendations, parts_used,
				labor_cost, parts_cost, total_cost, payment_method, payment_status,
				customer_satisfaction, follow_up_required, notes, created_at
			) VALUES (
				$1, $2, $3, $4, $5,
				$6, $7, $8, $9,
				$10, $11, $12, $13, $14,
				$15, $16, $17, $18
			)
			RETURNING id
		`
		err := tx.QueryRowContext(ctx, query,
			record.CustomerID, record.ServiceDate, record.ServiceType,
			record.DurationHours, record.Technician,
			record.ServicesPerformed, record.Findings, record.Recommendations,
			record.PartsUsed,
			record.LaborCost, record.PartsCost, record.TotalCost,
			record.PaymentMethod, record.PaymentStatus,
			record.CustomerSatisfaction, record.FollowUpRequired, record.Notes,
			record.CreatedAt,
		).Scan(&record.ID)
		if err != nil {
			return fmt.Errorf("failed to create service record: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE customers
			SET total_services = total_services + 1,
				last_service_date = $1,
				updated_at = $2
			WHERE id = $3
		`, record.ServiceDate, time.Now().UTC(), record.CustomerID)
		if err != nil {
			return fmt.Errorf("failed to update customer service counters: %w", err)
		}

		return nil
	})
}

func (r *serviceRecordRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*model.ServiceRecord, error) {
	query := `
		SELECT ` + serviceRecordColumns + `
		FROM service_records
		WHERE customer_id = $1
		ORDER BY service_date DESC, id DESC
	`
	records := []*model.ServiceRecord{}
	err := r.db.SelectContext(ctx, &records, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service records: %w", err)
	}
	return records, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/repository"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			customer_id, service_type, scheduled_date, scheduled_time,
			estimated_duration, status, special_instructions,
			confirmed, reminder_sent, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		appointment.CustomerID,
		appointment.ServiceType,
		appointment.ScheduledDate,
		appointment.ScheduledTime,
		appointment.EstimatedDuration,
		appointment.Status,
		appointment.SpecialInstructions,
		appointment.Confirmed,
		appointment.ReminderSent,
		appointment.Notes,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	).Scan(&appointment.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

type appointmentCustomerRow struct {
	model.Appointment
	CustFirstName sql.NullString `db:"cust_first_name"`
	CustLastName  sql.NullString `db:"cust_last_name"`
	CustPhone     sql.NullString `db:"cust_phone"`
	CustAddress   sql.NullString `db:"cust_address"`
	CustCity      sql.NullString `db:"cust_city"`
	CustState     sql.NullString `db:"cust_state"`
	CustZipCode   sql.NullString `db:"cust_zip_code"`
}

// ListWithCustomers left-joins each appointment against its customer so a
// deleted or never-existing customer yields the appointment alone.
func (r *appointmentRepository) ListWithCustomers(ctx context.Context) ([]*repository.AppointmentWithCustomer, error) {
	query := `
		SELECT a.id, a.customer_id, a.service_type, a.scheduled_date, a.scheduled_time,
			   a.estimated_duration, a.status, a.special_instructions,
			   a.confirmed, a.reminder_sent, a.notes, a.created_at, a.updated_at,
			   c.first_name AS cust_first_name,
			   c.last_name  AS cust_last_name,
			   c.phone      AS cust_phone,
			   c.address    AS cust_address,
			   c.city       AS cust_city,
			   c.state      AS cust_state,
			   c.zip_code   AS cust_zip_code
		FROM appointments a
		LEFT JOIN customers c ON c.id = a.customer_id
		ORDER BY a.scheduled_date ASC, a.scheduled_time ASC, a.id ASC
	`
	rows := []*appointmentCustomerRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	result := make([]*repository.AppointmentWithCustomer, 0, len(rows))
	for _, row := range rows {
		item := &repository.AppointmentWithCustomer{Appointment: row.Appointment}
		if row.CustFirstName.Valid {
			item.Customer = &repository.AppointmentCustomer{
				FirstName: row.CustFirstName.String,
				LastName:  row.CustLastName.String,
				Phone:     row.CustPhone.String,
				Address:   row.CustAddress.String,
				City:      row.CustCity.String,
				State:     row.CustState.String,
				ZipCode:   row.CustZipCode.String,
			}
		}
		result = append(result, item)
	}
	return result, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/pkg/errors"
)

const customerColumns = `
	id, first_name, last_name, phone, email, address, city, state, zip_code,
	property_type, hvac_system_type, hvac_system_age,
	last_service_date, next_service_due, preferred_contact_method, notes,
	customer_since, total_services, customer_rating, created_at, updated_at
`

const insertCustomerQuery = `
	INSERT INTO customers (
		first_name, last_name, phone, email, address, city, state, zip_code,
		property_type, hvac_system_type, hvac_system_age,
		last_service_date, next_service_due, preferred_contact_method, notes,
		customer_since, total_services, customer_rating, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11,
		$12, $13, $14, $15,
		$16, $17, $18, $19, $20
	)
	RETURNING id
`

func insertCustomerArgs(c *model.Customer) []interface{} {
	return []interface{}{
		c.FirstName, c.LastName, c.Phone, c.Email, c.Address, c.City, c.State, c.ZipCode,
		c.PropertyType, c.HVACSystemType, c.HVACSystemAge,
		c.LastServiceDate, c.NextServiceDue, c.PreferredContactMethod, c.Notes,
		c.CustomerSince, c.TotalServices, c.CustomerRating, c.CreatedAt, c.UpdatedAt,
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	err := r.db.QueryRowContext(ctx, insertCustomerQuery, insertCustomerArgs(customer)...).
		Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("customer", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	query := `
		UPDATE customers SET
			first_name = $1, last_name = $2, phone = $3, email = $4,
			address = $5, city = $6, state = $7, zip_code = $8,
			property_type = $9, hvac_system_type = $10, hvac_system_age = $11,
			last_service_date = $12, next_service_due = $13,
			preferred_contact_method = $14, notes = $15, customer_since = $16,
			total_services = $17, customer_rating = $18, updated_at = $19
		WHERE id = $20
	`
	result, err := r.db.ExecContext(ctx, query,
		customer.FirstName, customer.LastName, customer.Phone, customer.Email,
		customer.Address, customer.City, customer.State, customer.ZipCode,
		customer.PropertyType, customer.HVACSystemType, customer.HVACSystemAge,
		customer.LastServiceDate, customer.NextServiceDue,
		customer.PreferredContactMethod, customer.Notes, customer.CustomerSince,
		customer.TotalServices, customer.CustomerRating, customer.UpdatedAt,
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return errors.NotFound("customer", nil)
	}

	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id ASC`
	customers := []*model.Customer{}
	err := r.db.SelectContext(ctx, &customers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// ImportBatch runs the whole batch in one transaction so a failed insert
// rolls back every previously inserted row.
func (r *customerRepository) ImportBatch(ctx context.Context, customers []*model.Customer) (int, int, error) {
	var inserted, skipped int

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, customer := range customers {
			var exists bool
			err := tx.GetContext(ctx, &exists,
				`SELECT EXISTS (SELECT 1 FROM customers WHERE phone = $1)`, customer.Phone)
			if err != nil {
				return fmt.Errorf("failed to check phone %s: %w", customer.Phone, err)
			}
			if exists {
				skipped++
				continue
			}

			err = tx.QueryRowContext(ctx, insertCustomerQuery, insertCustomerArgs(customer)...).
				Scan(&customer.ID)
			if err != nil {
				return fmt.Errorf("failed to import customer %s %s: %w",
					customer.FirstName, customer.LastName, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return inserted, skipped, nil
}

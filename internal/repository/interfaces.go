package repository

import (
	"context"

	"github.com/hvacdr/service-api/internal/model"
)

// All repository interfaces in one file
type (
	// CustomerRepository handles customer rows and the bulk-import path.
	CustomerRepository interface {
		Create(ctx context.Context, customer *model.Customer) error
		Get(ctx context.Context, id int64) (*model.Customer, error)
		Update(ctx context.Context, customer *model.Customer) error
		List(ctx context.Context) ([]*model.Customer, error)
		// ImportBatch inserts the given customers in a single transaction,
		// skipping any whose phone number already exists. Either every
		// non-duplicate row lands or none do.
		ImportBatch(ctx context.Context, customers []*model.Customer) (inserted, skipped int, err error)
	}

	// ServiceRecordRepository handles completed-visit records.
	ServiceRecordRepository interface {
		// Create inserts the record and syncs the owning customer's
		// total_services counter and last_service_date in one transaction.
		// A missing customer is tolerated: the record is still created.
		Create(ctx context.Context, record *model.ServiceRecord) error
		ListByCustomer(ctx context.Context, customerID int64) ([]*model.ServiceRecord, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		ListWithCustomers(ctx context.Context) ([]*AppointmentWithCustomer, error)
	}

	DashboardRepository interface {
		Stats(ctx context.Context) (*model.DashboardStats, error)
	}
)

// AppointmentCustomer carries the display columns of an appointment's
// owning customer.
type AppointmentCustomer struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

// AppointmentWithCustomer pairs an appointment with its customer's
// display columns; Customer is nil when the referenced row is gone.
type AppointmentWithCustomer struct {
	Appointment model.Appointment
	Customer    *AppointmentCustomer
}

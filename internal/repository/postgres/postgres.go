package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/hvacdr/service-api/internal/repository"
)

type customerRepository struct {
	BaseRepository
}

type serviceRecordRepository struct {
	BaseRepository
}

type appointmentRepository struct {
	BaseRepository
}

type dashboardRepository struct {
	BaseRepository
}

func NewCustomerRepository(db *sqlx.DB) repository.CustomerRepository {
	return &customerRepository{NewBaseRepository(db)}
}

func NewServiceRecordRepository(db *sqlx.DB) repository.ServiceRecordRepository {
	return &serviceRecordRepository{NewBaseRepository(db)}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{NewBaseRepository(db)}
}

func NewDashboardRepository(db *sqlx.DB) repository.DashboardRepository {
	return &dashboardRepository{NewBaseRepository(db)}
}

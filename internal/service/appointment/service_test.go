package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/repository"
	"github.com/hvacdr/service-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	rows []*repository.AppointmentWithCustomer
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *model.Appointment) error {
	appointment.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, &repository.AppointmentWithCustomer{Appointment: *appointment})
	return nil
}

func (f *fakeAppointmentRepo) ListWithCustomers(_ context.Context) ([]*repository.AppointmentWithCustomer, error) {
	return f.rows, nil
}

func TestCreateAppointmentAppliesDefaults(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{})

	appointment, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		CustomerID:    1,
		ServiceType:   "Seasonal Tune-Up",
		ScheduledDate: "2025-07-01",
		ScheduledTime: "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultAppointmentStatus, appointment.Status)
	assert.False(t, appointment.Confirmed)
	assert.False(t, appointment.ReminderSent)
	assert.Equal(t, "2025-07-01", appointment.ScheduledDate.String())
	assert.Equal(t, "09:30:00", appointment.ScheduledTime.String())
}

func TestCreateAppointmentKeepsExplicitStatus(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{})

	appointment, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		CustomerID:    1,
		ServiceType:   "Repair",
		ScheduledDate: "2025-07-01",
		ScheduledTime: "14:00",
		Status:        "Confirmed",
		Confirmed:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Confirmed", appointment.Status)
	assert.True(t, appointment.Confirmed)
}

func TestCreateAppointmentRejectsBadTime(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{})

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		CustomerID:    1,
		ServiceType:   "Repair",
		ScheduledDate: "2025-07-01",
		ScheduledTime: "2pm",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrParse, appErr.Code)
}

func TestListAppointmentsEnrichesExistingCustomers(t *testing.T) {
	repo := &fakeAppointmentRepo{
		rows: []*repository.AppointmentWithCustomer{
			{
				Appointment: model.Appointment{ID: 1, CustomerID: 1},
				Customer: &repository.AppointmentCustomer{
					FirstName: "Jane",
					LastName:  "Doe",
					Phone:     "555-0100",
					Address:   "1 Elm St",
					City:      "Springfield",
					State:     "IL",
					ZipCode:   "62704",
				},
			},
			{
				// Customer row is gone; the appointment must survive bare.
				Appointment: model.Appointment{ID: 2, CustomerID: 99},
			},
		},
	}
	svc := NewService(repo)

	summaries, err := svc.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	enriched := summaries[0]
	require.NotNil(t, enriched.CustomerName)
	assert.Equal(t, "Jane Doe", *enriched.CustomerName)
	assert.Equal(t, "555-0100", *enriched.CustomerPhone)
	assert.Equal(t, "1 Elm St, Springfield, IL 62704", *enriched.CustomerAddress)

	orphan := summaries[1]
	assert.Nil(t, orphan.CustomerName)
	assert.Nil(t, orphan.CustomerPhone)
	assert.Nil(t, orphan.CustomerAddress)
	assert.Equal(t, int64(99), orphan.CustomerID)
}

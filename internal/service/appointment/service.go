package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/repository"
)

type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

// CreateAppointment schedules a visit. The referenced customer is not
// checked for existence, matching the permissive policy for service
// records.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	scheduledDate, err := model.ParseDate(req.ScheduledDate)
	if err != nil {
		return nil, err
	}
	scheduledTime, err := model.ParseTimeOfDay(req.ScheduledTime)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.DefaultAppointmentStatus
	}

	now := time.Now().UTC()
	appointment := &model.Appointment{
		CustomerID:          req.CustomerID,
		ServiceType:         req.ServiceType,
		ScheduledDate:       scheduledDate,
		ScheduledTime:       scheduledTime,
		EstimatedDuration:   req.EstimatedDuration,
		Status:              status,
		SpecialInstructions: req.SpecialInstructions,
		Confirmed:           req.Confirmed,
		ReminderSent:        false,
		Notes:               req.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

// ListAppointments returns every appointment with display fields joined
// from its customer. When the customer is gone the appointment is
// returned bare, never dropped.
func (s *Service) ListAppointments(ctx context.Context) ([]*model.AppointmentSummary, error) {
	rows, err := s.repo.ListWithCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	summaries := make([]*model.AppointmentSummary, 0, len(rows))
	for _, row := range rows {
		summary := &model.AppointmentSummary{Appointment: row.Appointment}
		if c := row.Customer; c != nil {
			name := fmt.Sprintf("%s %s", c.FirstName, c.LastName)
			address := fmt.Sprintf("%s, %s, %s %s", c.Address, c.City, c.State, c.ZipCode)
			phone := c.Phone
			summary.CustomerName = &name
			summary.CustomerPhone = &phone
			summary.CustomerAddress = &address
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

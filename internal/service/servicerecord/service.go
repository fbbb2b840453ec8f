package servicerecord

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/repository"
)

type Service struct {
	repo repository.ServiceRecordRepository
}

func NewService(repo repository.ServiceRecordRepository) *Service {
	return &Service{repo: repo}
}

// CreateServiceRecord inserts the record and, through the repository's
// single transaction, bumps the owning customer's total_services and
// last_service_date. A customer_id that matches nothing still yields a
// record; the orphan is tolerated.
func (s *Service) CreateServiceRecord(ctx context.Context, req *model.CreateServiceRecordRequest) (*model.ServiceRecord, error) {
	serviceDate, err := model.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, err
	}

	record := &model.ServiceRecord{
		CustomerID:           req.CustomerID,
		ServiceDate:          serviceDate,
		ServiceType:          req.ServiceType,
		DurationHours:        req.DurationHours,
		Technician:           req.Technician,
		ServicesPerformed:    req.ServicesPerformed,
		Findings:             req.Findings,
		Recommendations:      req.Recommendations,
		PartsUsed:            req.PartsUsed,
		LaborCost:            toNullDecimal(req.LaborCost),
		PartsCost:            toNullDecimal(req.PartsCost),
		TotalCost:            toNullDecimal(req.TotalCost),
		PaymentMethod:        req.PaymentMethod,
		PaymentStatus:        req.PaymentStatus,
		CustomerSatisfaction: req.CustomerSatisfaction,
		FollowUpRequired:     req.FollowUpRequired,
		Notes:                req.Notes,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create service record: %w", err)
	}
	return record, nil
}

func (s *Service) ListCustomerRecords(ctx context.Context, customerID int64) ([]*model.ServiceRecord, error) {
	records, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service records: %w", err)
	}
	return records, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/repository"
	"github.com/hvacdr/service-api/pkg/errors"
)

type Service struct {
	repo repository.CustomerRepository
}

func NewService(repo repository.CustomerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	if err := validateRequired(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := &model.Customer{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Phone:                  req.Phone,
		Email:                  req.Email,
		Address:                req.Address,
		City:                   req.City,
		State:                  req.State,
		ZipCode:                req.ZipCode,
		PropertyType:           req.PropertyType,
		HVACSystemType:         req.HVACSystemType,
		HVACSystemAge:          req.HVACSystemAge,
		PreferredContactMethod: req.PreferredContactMethod,
		Notes:                  req.Notes,
		CustomerSince:          model.NewDate(now),
		TotalServices:          model.DefaultTotalServices,
		CustomerRating:         model.DefaultCustomerRating,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if req.CustomerRating != nil {
		customer.CustomerRating = *req.CustomerRating
	}

	var err error
	if customer.LastServiceDate, err = parseOptionalDate(req.LastServiceDate); err != nil {
		return nil, err
	}
	if customer.NextServiceDue, err = parseOptionalDate(req.NextServiceDue); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer applies only the fields present in the request onto the
// stored row. updated_at is always refreshed; id and created_at cannot
// change.
func (s *Service) UpdateCustomer(ctx context.Context, id int64, req *model.UpdateCustomerRequest) (*model.Customer, error) {
	customer, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(customer, req); err != nil {
		return nil, err
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

func applyUpdate(customer *model.Customer, req *model.UpdateCustomerRequest) error {
	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.State != nil {
		customer.State = *req.State
	}
	if req.ZipCode != nil {
		customer.ZipCode = *req.ZipCode
	}
	if req.PropertyType != nil {
		customer.PropertyType = req.PropertyType
	}
	if req.HVACSystemType != nil {
		customer.HVACSystemType = req.HVACSystemType
	}
	if req.HVACSystemAge != nil {
		customer.HVACSystemAge = req.HVACSystemAge
	}
	if req.PreferredContactMethod != nil {
		customer.PreferredContactMethod = req.PreferredContactMethod
	}
	if req.Notes != nil {
		customer.Notes = req.Notes
	}
	if req.TotalServices != nil {
		customer.TotalServices = *req.TotalServices
	}
	if req.CustomerRating != nil {
		customer.CustomerRating = *req.CustomerRating
	}

	if req.LastServiceDate != nil {
		date, err := model.ParseDate(*req.LastServiceDate)
		if err != nil {
			return err
		}
		customer.LastServiceDate = date
	}
	if req.NextServiceDue != nil {
		date, err := model.ParseDate(*req.NextServiceDue)
		if err != nil {
			return err
		}
		customer.NextServiceDue = date
	}
	if req.CustomerSince != nil {
		date, err := model.ParseDate(*req.CustomerSince)
		if err != nil {
			return err
		}
		customer.CustomerSince = date
	}
	return nil
}

func validateRequired(req *model.CreateCustomerRequest) error {
	missing := ""
	switch {
	case req.FirstName == "":
		missing = "first_name"
	case req.LastName == "":
		missing = "last_name"
	case req.Phone == "":
		missing = "phone"
	case req.Address == "":
		missing = "address"
	case req.City == "":
		missing = "city"
	case req.State == "":
		missing = "state"
	case req.ZipCode == "":
		missing = "zip_code"
	}
	if missing != "" {
		return errors.Validation(fmt.Sprintf("%s is required", missing), nil)
	}
	if len(req.State) != 2 {
		return errors.Validation("state must be a 2-letter code", nil)
	}
	return nil
}

func parseOptionalDate(s *string) (model.Date, error) {
	if s == nil || *s == "" {
		return model.Date{}, nil
	}
	return model.ParseDate(*s)
}

package customer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/pkg/errors"
)

type fakeCustomerRepo struct {
	customers map[int64]*model.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*model.Customer), nextID: 1}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *model.Customer) error {
	customer.ID = f.nextID
	f.nextID++
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) Get(_ context.Context, id int64) (*model.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, errors.NotFound("customer", nil)
	}
	clone := *customer
	return &clone, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *model.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return errors.NotFound("customer", nil)
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*model.Customer, error) {
	result := make([]*model.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		clone := *c
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeCustomerRepo) ImportBatch(_ context.Context, customers []*model.Customer) (int, int, error) {
	phones := make(map[string]bool)
	for _, c := range f.customers {
		phones[c.Phone] = true
	}
	var inserted, skipped int
	for _, c := range customers {
		if phones[c.Phone] {
			skipped++
			continue
		}
		f.Create(context.Background(), c)
		phones[c.Phone] = true
		inserted++
	}
	return inserted, skipped, nil
}

func validCreateRequest() *model.CreateCustomerRequest {
	return &model.CreateCustomerRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0100",
		Address:   "1 Elm St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62704",
	}
}

func TestCreateCustomerAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	customer, err := svc.CreateCustomer(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotZero(t, customer.ID)
	assert.Equal(t, model.DefaultTotalServices, customer.TotalServices)
	assert.Equal(t, model.DefaultCustomerRating, customer.CustomerRating)
	assert.Equal(t, model.Today().String(), customer.CustomerSince.String())
	assert.False(t, customer.LastServiceDate.Valid)
	assert.WithinDuration(t, time.Now().UTC(), customer.CreatedAt, time.Minute)
}

func TestCreateCustomerRoundTripsFields(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	email := "jane@example.com"
	notes := "gate code 4411"
	req := validCreateRequest()
	req.Email = &email
	req.Notes = &notes
	req.NextServiceDue = strPtr("2026-03-01")

	created, err := svc.CreateCustomer(context.Background(), req)
	require.NoError(t, err)

	got, err := svc.GetCustomer(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "jane@example.com", *got.Email)
	assert.Equal(t, "2026-03-01", got.NextServiceDue.String())
}

func TestCreateCustomerRejectsMissingRequiredFields(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	req := validCreateRequest()
	req.Phone = ""

	_, err := svc.CreateCustomer(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
}

func TestCreateCustomerRejectsBadDate(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	req := validCreateRequest()
	req.LastServiceDate = strPtr("01/02/2025")

	_, err := svc.CreateCustomer(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrParse, appErr.Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	_, err := svc.GetCustomer(context.Background(), 42)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	created, err := svc.CreateCustomer(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(context.Background(), created.ID, &model.UpdateCustomerRequest{
		City: strPtr("Chatham"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Chatham", updated.City)
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateCustomerEmptyRequestOnlyTouchesUpdatedAt(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	created, err := svc.CreateCustomer(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(context.Background(), created.ID, &model.UpdateCustomerRequest{})
	require.NoError(t, err)

	expected := *created
	expected.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, &expected, updated)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	_, err := svc.UpdateCustomer(context.Background(), 7, &model.UpdateCustomerRequest{
		City: strPtr("Nowhere"),
	})
	assert.True(t, errors.IsNotFound(err))
}

func strPtr(s string) *string { return &s }

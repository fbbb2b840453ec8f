package servicerecord

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/pkg/errors"
)

// fakeRecordRepo mimics the postgres repository's transactional contract:
// the insert and the customer counter sync either both happen or neither
// does, and a missing customer is tolerated.
type fakeRecordRepo struct {
	records   []*model.ServiceRecord
	customers map[int64]*model.Customer
	failNext  bool
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{customers: make(map[int64]*model.Customer)}
}

func (f *fakeRecordRepo) Create(_ context.Context, record *model.ServiceRecord) error {
	if f.failNext {
		f.failNext = false
		return errors.Internal(nil)
	}
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, record)
	if customer, ok := f.customers[record.CustomerID]; ok {
		customer.TotalServices++
		customer.LastServiceDate = record.ServiceDate
	}
	return nil
}

func (f *fakeRecordRepo) ListByCustomer(_ context.Context, customerID int64) ([]*model.ServiceRecord, error) {
	result := []*model.ServiceRecord{}
	for _, r := range f.records {
		if r.CustomerID == customerID {
			result = append(result, r)
		}
	}
	return result, nil
}

func TestCreateServiceRecordSyncsCustomer(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.customers[1] = &model.Customer{ID: 1, TotalServices: 2}
	svc := NewService(repo)

	record, err := svc.CreateServiceRecord(context.Background(), &model.CreateServiceRecordRequest{
		CustomerID:  1,
		ServiceDate: "2025-06-15",
		ServiceType: "Seasonal Tune-Up",
	})
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.Equal(t, 3, repo.customers[1].TotalServices)
	assert.Equal(t, "2025-06-15", repo.customers[1].LastServiceDate.String())
}

func TestCreateServiceRecordFailureLeavesCustomerUntouched(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.customers[1] = &model.Customer{ID: 1, TotalServices: 2}
	repo.failNext = true
	svc := NewService(repo)

	_, err := svc.CreateServiceRecord(context.Background(), &model.CreateServiceRecordRequest{
		CustomerID:  1,
		ServiceDate: "2025-06-15",
		ServiceType: "Seasonal Tune-Up",
	})
	require.Error(t, err)

	assert.Equal(t, 2, repo.customers[1].TotalServices)
	assert.Empty(t, repo.records)
}

func TestCreateServiceRecordToleratesMissingCustomer(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewService(repo)

	record, err := svc.CreateServiceRecord(context.Background(), &model.CreateServiceRecordRequest{
		CustomerID:  99,
		ServiceDate: "2025-06-15",
		ServiceType: "Coil Cleaning",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), record.CustomerID)
	assert.Len(t, repo.records, 1)
}

func TestCreateServiceRecordRejectsBadDate(t *testing.T) {
	svc := NewService(newFakeRecordRepo())

	_, err := svc.CreateServiceRecord(context.Background(), &model.CreateServiceRecordRequest{
		CustomerID:  1,
		ServiceDate: "June 15, 2025",
		ServiceType: "Seasonal Tune-Up",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrParse, appErr.Code)
}

func TestCreateServiceRecordCarriesCosts(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewService(repo)

	labor := decimal.RequireFromString("150.00")
	parts := decimal.RequireFromString("75.25")
	total := decimal.RequireFromString("225.25")

	record, err := svc.CreateServiceRecord(context.Background(), &model.CreateServiceRecordRequest{
		CustomerID:  1,
		ServiceDate: "2025-06-15",
		ServiceType: "Repair",
		LaborCost:   &labor,
		PartsCost:   &parts,
		TotalCost:   &total,
	})
	require.NoError(t, err)

	assert.True(t, record.LaborCost.Valid)
	assert.True(t, record.TotalCost.Decimal.Equal(total))
	assert.False(t, record.LaborCost.Decimal.Add(record.PartsCost.Decimal).Cmp(total) != 0)
}

func TestListCustomerRecords(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewService(repo)

	for _, id := range []int64{1, 2, 1} {
		_, err := svc.CreateServiceRecord(context.Background(), &model.CreateServiceRecordRequest{
			CustomerID:  id,
			ServiceDate: "2025-01-10",
			ServiceType: "Inspection",
		})
		require.NoError(t, err)
	}

	records, err := svc.ListCustomerRecords(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

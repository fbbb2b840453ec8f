package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/repository"
	"github.com/hvacdr/service-api/pkg/errors"
	"github.com/hvacdr/service-api/pkg/logger"
)

// Columns of the customer CSV export. The header row must carry every
// one of these names.
var requiredColumns = []string{
	"First_Name", "Last_Name", "Phone", "Email", "Address", "City", "State",
	"ZIP", "Property_Type", "HVAC_System_Type", "HVAC_System_Age",
	"Last_Service_Date", "Next_Service_Due", "Preferred_Contact_Method",
	"Notes", "Customer_Since", "Total_Services", "Customer_Rating",
}

type Service struct {
	repo   repository.CustomerRepository
	logger *logger.Logger
}

func NewService(repo repository.CustomerRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Result reports one completed import run.
type Result struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// ImportFile ingests the customer CSV at path. Rows whose phone number
// already exists are skipped, making a rerun of the same file a no-op.
// The whole file is parsed before anything is written and all inserts
// share one transaction, so any failure leaves the store untouched.
func (s *Service) ImportFile(ctx context.Context, path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample data file: %w", err)
	}
	defer file.Close()

	customers, err := parseCustomers(csv.NewReader(file))
	if err != nil {
		return nil, err
	}

	inserted, skipped, err := s.repo.ImportBatch(ctx, customers)
	if err != nil {
		return nil, fmt.Errorf("failed to import customers: %w", err)
	}

	s.logger.Info("sample data imported",
		"path", path, "imported", inserted, "skipped", skipped)

	return &Result{
		Imported: inserted,
		Skipped:  skipped,
		Message:  "Sample data imported successfully",
	}, nil
}

func parseCustomers(reader *csv.Reader) ([]*model.Customer, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Parse("failed to read CSV header", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, errors.Parse(fmt.Sprintf("CSV is missing column %q", name), nil)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Parse("failed to read CSV rows", err)
	}

	now := time.Now().UTC()
	customers := make([]*model.Customer, 0, len(rows))
	for i, row := range rows {
		field := func(name string) string { return row[index[name]] }

		customer, err := parseRow(field, now)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func parseRow(field func(string) string, now time.Time) (*model.Customer, error) {
	customer := &model.Customer{
		FirstName:              field("First_Name"),
		LastName:               field("Last_Name"),
		Phone:                  field("Phone"),
		Email:                  optional(field("Email")),
		Address:                field("Address"),
		City:                   field("City"),
		State:                  field("State"),
		ZipCode:                field("ZIP"),
		PropertyType:           optional(field("Property_Type")),
		HVACSystemType:         optional(field("HVAC_System_Type")),
		HVACSystemAge:          optional(field("HVAC_System_Age")),
		PreferredContactMethod: optional(field("Preferred_Contact_Method")),
		Notes:                  optional(field("Notes")),
		TotalServices:          intOr(field("Total_Services"), model.DefaultTotalServices),
		CustomerRating:         intOr(field("Customer_Rating"), model.DefaultCustomerRating),
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	var err error
	if customer.LastServiceDate, err = dateOrEmpty(field("Last_Service_Date")); err != nil {
		return nil, err
	}
	if customer.NextServiceDue, err = dateOrEmpty(field("Next_Service_Due")); err != nil {
		return nil, err
	}
	if customer.CustomerSince, err = dateOrEmpty(field("Customer_Since")); err != nil {
		return nil, err
	}
	if !customer.CustomerSince.Valid {
		customer.CustomerSince = model.NewDate(now)
	}

	return customer, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// intOr parses leniently: a blank or malformed cell falls back to the
// default instead of failing the batch.
func intOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func dateOrEmpty(s string) (model.Date, error) {
	if s == "" {
		return model.Date{}, nil
	}
	return model.ParseDate(s)
}

package model

import "time"

// Customer is one serviced property owner. total_services mirrors the
// number of service records created through the normal path; it is kept
// consistent by application behavior, not by a database constraint.
type Customer struct {
	ID                     int64     `db:"id" json:"id"`
	FirstName              string    `db:"first_name" json:"first_name"`
	LastName               string    `db:"last_name" json:"last_name"`
	Phone                  string    `db:"phone" json:"phone"`
	Email                  *string   `db:"email" json:"email"`
	Address                string    `db:"address" json:"address"`
	City                   string    `db:"city" json:"city"`
	State                  string    `db:"state" json:"state"`
	ZipCode                string    `db:"zip_code" json:"zip_code"`
	PropertyType           *string   `db:"property_type" json:"property_type"`
	HVACSystemType         *string   `db:"hvac_system_type" json:"hvac_system_type"`
	HVACSystemAge          *string   `db:"hvac_system_age" json:"hvac_system_age"`
	LastServiceDate        Date      `db:"last_service_date" json:"last_service_date"`
	NextServiceDue         Date      `db:"next_service_due" json:"next_service_due"`
	PreferredContactMethod *string   `db:"preferred_contact_method" json:"preferred_contact_method"`
	Notes                  *string   `db:"notes" json:"notes"`
	CustomerSince          Date      `db:"customer_since" json:"customer_since"`
	TotalServices          int       `db:"total_services" json:"total_services"`
	CustomerRating         int       `db:"customer_rating" json:"customer_rating"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at" json:"updated_at"`
}

type CreateCustomerRequest struct {
	FirstName              string  `json:"first_name" binding:"required"`
	LastName               string  `json:"last_name" binding:"required"`
	Phone                  string  `json:"phone" binding:"required"`
	Email                  *string `json:"email" binding:"omitempty,email"`
	Address                string  `json:"address" binding:"required"`
	City                   string  `json:"city" binding:"required"`
	State                  string  `json:"state" binding:"required,len=2"`
	ZipCode                string  `json:"zip_code" binding:"required"`
	PropertyType           *string `json:"property_type"`
	HVACSystemType         *string `json:"hvac_system_type"`
	HVACSystemAge          *string `json:"hvac_system_age"`
	LastServiceDate        *string `json:"last_service_date"`
	NextServiceDue         *string `json:"next_service_due"`
	PreferredContactMethod *string `json:"preferred_contact_method"`
	Notes                  *string `json:"notes"`
	CustomerRating         *int    `json:"customer_rating" binding:"omitempty,min=1,max=5"`
}

// UpdateCustomerRequest is the explicit allowlist of updatable fields.
// Keys outside this set are silently dropped by JSON decoding, which is
// the intended partial-update behavior; id and created_at are not here
// on purpose.
type UpdateCustomerRequest struct {
	FirstName              *string `json:"first_name"`
	LastName               *string `json:"last_name"`
	Phone                  *string `json:"phone"`
	Email                  *string `json:"email" binding:"omitempty,email"`
	Address                *string `json:"address"`
	City                   *string `json:"city"`
	State                  *string `json:"state" binding:"omitempty,len=2"`
	ZipCode                *string `json:"zip_code"`
	PropertyType           *string `json:"property_type"`
	HVACSystemType         *string `json:"hvac_system_type"`
	HVACSystemAge          *string `json:"hvac_system_age"`
	LastServiceDate        *string `json:"last_service_date"`
	NextServiceDue         *string `json:"next_service_due"`
	PreferredContactMethod *string `json:"preferred_contact_method"`
	Notes                  *string `json:"notes"`
	CustomerSince          *string `json:"customer_since"`
	TotalServices          *int    `json:"total_services" binding:"omitempty,min=0"`
	CustomerRating         *int    `json:"customer_rating" binding:"omitempty,min=1,max=5"`
}

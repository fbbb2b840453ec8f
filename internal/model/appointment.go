package model

import "time"

// Appointment is a scheduled, not yet performed, service visit. The
// status column is a free-form label; no state machine is enforced.
type Appointment struct {
	ID                  int64     `db:"id" json:"id"`
	CustomerID          int64     `db:"customer_id" json:"customer_id"`
	ServiceType         string    `db:"service_type" json:"service_type"`
	ScheduledDate       Date      `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTime       TimeOfDay `db:"scheduled_time" json:"scheduled_time"`
	EstimatedDuration   *float64  `db:"estimated_duration" json:"estimated_duration"`
	Status              string    `db:"status" json:"status"`
	SpecialInstructions *string   `db:"special_instructions" json:"special_instructions"`
	Confirmed           bool      `db:"confirmed" json:"confirmed"`
	ReminderSent        bool      `db:"reminder_sent" json:"reminder_sent"`
	Notes               *string   `db:"notes" json:"notes"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

type CreateAppointmentRequest struct {
	CustomerID          int64    `json:"customer_id" binding:"required"`
	ServiceType         string   `json:"service_type" binding:"required"`
	ScheduledDate       string   `json:"scheduled_date" binding:"required"`
	ScheduledTime       string   `json:"scheduled_time" binding:"required"`
	EstimatedDuration   *float64 `json:"estimated_duration"`
	Status              string   `json:"status"`
	SpecialInstructions *string  `json:"special_instructions"`
	Confirmed           bool     `json:"confirmed"`
	Notes               *string  `json:"notes"`
}

// AppointmentSummary is an appointment enriched with display fields
// joined from its customer at read time. The customer_* fields are
// omitted entirely when the referenced customer no longer exists.
type AppointmentSummary struct {
	Appointment
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
}

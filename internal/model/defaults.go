package model

// Default field values applied when a request leaves them unspecified.
// Kept in one place so call sites never hard-code them.
const (
	DefaultCustomerRating    = 5
	DefaultTotalServices     = 0
	DefaultAppointmentStatus = "Scheduled"
)

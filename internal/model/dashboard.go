package model

// DashboardStats is the read-only aggregate view over all three tables.
// Every field is recomputed per request.
type DashboardStats struct {
	TotalCustomers      int `db:"total_customers" json:"total_customers"`
	TotalAppointments   int `db:"total_appointments" json:"total_appointments"`
	PendingAppointments int `db:"pending_appointments" json:"pending_appointments"`
	TotalServices       int `db:"total_services" json:"total_services"`
	RecentCustomers     int `db:"recent_customers" json:"recent_customers"`
}

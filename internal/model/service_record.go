package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRecord is one completed service visit. Records are immutable
// once created; there is no update path.
type ServiceRecord struct {
	ID                   int64               `db:"id" json:"id"`
	CustomerID           int64               `db:"customer_id" json:"customer_id"`
	ServiceDate          Date                `db:"service_date" json:"service_date"`
	ServiceType          string              `db:"service_type" json:"service_type"`
	DurationHours        *float64            `db:"duration_hours" json:"duration_hours"`
	Technician           *string             `db:"technician" json:"technician"`
	ServicesPerformed    *string             `db:"services_performed" json:"services_performed"`
	Findings             *string             `db:"findings" json:"findings"`
	Recommendations      *string             `db:"recommendations" json:"recommendations"`
	PartsUsed            *string             `db:"parts_used" json:"parts_used"`
	LaborCost            decimal.NullDecimal `db:"labor_cost" json:"labor_cost"`
	PartsCost            decimal.NullDecimal `db:"parts_cost" json:"parts_cost"`
	TotalCost            decimal.NullDecimal `db:"total_cost" json:"total_cost"`
	PaymentMethod        *string             `db:"payment_method" json:"payment_method"`
	PaymentStatus        *string             `db:"payment_status" json:"payment_status"`
	CustomerSatisfaction *int                `db:"customer_satisfaction" json:"customer_satisfaction"`
	FollowUpRequired     bool                `db:"follow_up_required" json:"follow_up_required"`
	Notes                *string             `db:"notes" json:"notes"`
	CreatedAt            time.Time           `db:"created_at" json:"created_at"`
}

type CreateServiceRecordRequest struct {
	CustomerID           int64            `json:"customer_id" binding:"required"`
	ServiceDate          string           `json:"service_date" binding:"required"`
	ServiceType          string           `json:"service_type" binding:"required"`
	DurationHours        *float64         `json:"duration_hours"`
	Technician           *string          `json:"technician"`
	ServicesPerformed    *string          `json:"services_performed"`
	Findings             *string          `json:"findings"`
	Recommendations      *string          `json:"recommendations"`
	PartsUsed            *string          `json:"parts_used"`
	LaborCost            *decimal.Decimal `json:"labor_cost"`
	PartsCost            *decimal.Decimal `json:"parts_cost"`
	TotalCost            *decimal.Decimal `json:"total_cost"`
	PaymentMethod        *string          `json:"payment_method"`
	PaymentStatus        *string          `json:"payment_status"`
	CustomerSatisfaction *int             `json:"customer_satisfaction" binding:"omitempty,min=1,max=5"`
	FollowUpRequired     bool             `json:"follow_up_required"`
	Notes                *string          `json:"notes"`
}

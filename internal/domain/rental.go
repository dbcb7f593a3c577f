package domain

import "time"

// RentalPlan is the fixed-duration rental offering. The value is the plan
// length in days; anything outside the five known durations is invalid.
type RentalPlan int

const (
	PlanSevenDays     RentalPlan = 7
	PlanFifteenDays   RentalPlan = 15
	PlanThirtyDays    RentalPlan = 30
	PlanFortyFiveDays RentalPlan = 45
	PlanFiftyDays     RentalPlan = 50
)

// Valid reports whether the plan is one of the five known durations.
func (p RentalPlan) Valid() bool {
	switch p {
	case PlanSevenDays, PlanFifteenDays, PlanThirtyDays, PlanFortyFiveDays, PlanFiftyDays:
		return true
	}
	return false
}

// Days returns the agreed rental duration in days.
func (p RentalPlan) Days() int {
	return int(p)
}

// Rental ties a courier to a motorcycle for a fixed plan duration. EndDate is
// nil while the rental is active; the four cost fields are set exactly once,
// together with EndDate, when the motorcycle is returned.
type Rental struct {
	ID              string     `json:"id"`
	MotorcycleID    string     `json:"motorcycle_id"`
	CourierID       string     `json:"courier_id"`
	Plan            RentalPlan `json:"plan"`
	StartDate       time.Time  `json:"start_date"`
	ExpectedEndDate time.Time  `json:"expected_end_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	// Cost fields, in cents. Computed at return time only.
	TotalCostCents          *int64    `json:"total_cost_cents,omitempty"`
	FineAmountCents         *int64    `json:"fine_amount_cents,omitempty"`
	AdditionalDaysCostCents *int64    `json:"additional_days_cost_cents,omitempty"`
	AdditionalDays          *int32    `json:"additional_days,omitempty"`
	CreatedOn               time.Time `json:"created_on"`
	UpdatedOn               time.Time `json:"updated_on"`
}

// Returned reports whether the rental has been closed.
func (r *Rental) Returned() bool {
	return r.EndDate != nil
}

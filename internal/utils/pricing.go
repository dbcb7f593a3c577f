package utils

import (
	"time"

	"moto-rental-backend/internal/domain"
)

// planRate holds the pricing entry for one rental plan.
type planRate struct {
	DailyRateCents int64
	FinePercent    int64 // percentage of the unused-days cost charged on early return
}

// planTable is the fixed plan pricing table. It is built once and never
// mutated; both eligibility and cost calculations read from it.
var planTable = map[domain.RentalPlan]planRate{
	domain.PlanSevenDays:     {DailyRateCents: 3000, FinePercent: 20},
	domain.PlanFifteenDays:   {DailyRateCents: 2800, FinePercent: 40},
	domain.PlanThirtyDays:    {DailyRateCents: 2200, FinePercent: 0},
	domain.PlanFortyFiveDays: {DailyRateCents: 2000, FinePercent: 0},
	domain.PlanFiftyDays:     {DailyRateCents: 1800, FinePercent: 0},
}

// LateDayRateCents is the flat per-day surcharge for returning after the
// expected end date, independent of plan.
const LateDayRateCents int64 = 5000

// DailyRateCents returns the daily rate for a plan in cents.
func DailyRateCents(plan domain.RentalPlan) (int64, error) {
	rate, ok := planTable[plan]
	if !ok {
		return 0, domain.ErrInvalidPlan
	}
	return rate.DailyRateCents, nil
}

// FinePercent returns the early-return fine percentage for a plan.
func FinePercent(plan domain.RentalPlan) (int64, error) {
	rate, ok := planTable[plan]
	if !ok {
		return 0, domain.ErrInvalidPlan
	}
	return rate.FinePercent, nil
}

// CostBreakdown is the result of a return-time cost calculation. All monetary
// amounts are integer cents; with the fixed plan table every value is exact.
type CostBreakdown struct {
	ActualDays              int32
	BaseCostCents           int64
	FineCents               int64
	AdditionalDays          int32
	AdditionalDaysCostCents int64
	TotalCostCents          int64
}

// WholeDaysBetween returns the number of whole calendar days from a to b,
// truncating partial days. Dates are compared on the UTC calendar.
func WholeDaysBetween(a, b time.Time) int {
	return int(b.UTC().Truncate(24*time.Hour).Sub(a.UTC().Truncate(24*time.Hour)) / (24 * time.Hour))
}

// CalculateReturnCost computes the final cost of a rental being returned.
//
// The base cost covers the days actually used. An early return charges a fine
// as a percentage of the unused-days cost (zero for plans without a fine
// entry); a late return charges the flat late-day rate per extra day. A return
// exactly on the expected end date carries no fine and no surcharge.
func CalculateReturnCost(plan domain.RentalPlan, startDate, expectedEndDate, actualReturnDate time.Time) (CostBreakdown, error) {
	rate, ok := planTable[plan]
	if !ok {
		return CostBreakdown{}, domain.ErrInvalidPlan
	}

	actualDays := WholeDaysBetween(startDate, actualReturnDate)
	if actualDays < 0 {
		actualDays = 0
	}

	bd := CostBreakdown{
		ActualDays:    int32(actualDays),
		BaseCostCents: int64(actualDays) * rate.DailyRateCents,
	}

	switch {
	case WholeDaysBetween(actualReturnDate, expectedEndDate) > 0: // early
		unusedDays := int64(WholeDaysBetween(actualReturnDate, expectedEndDate))
		unusedCost := unusedDays * rate.DailyRateCents
		bd.FineCents = unusedCost * rate.FinePercent / 100
	case WholeDaysBetween(expectedEndDate, actualReturnDate) > 0: // late
		lateDays := WholeDaysBetween(expectedEndDate, actualReturnDate)
		bd.AdditionalDays = int32(lateDays)
		bd.AdditionalDaysCostCents = int64(lateDays) * LateDayRateCents
	}

	bd.TotalCostCents = bd.BaseCostCents + bd.AdditionalDaysCostCents + bd.FineCents
	return bd, nil
}

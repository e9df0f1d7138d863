package service

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// GrowthPoint is one year of the projected savings series.
type GrowthPoint struct {
	Year   string  `json:"year"`
	Amount float64 `json:"amount"`
}

// projectionYears is the dashboard's projection horizon.
const projectionYears = 5

// growthFactor is the flat yearly growth multiplier applied to contributions.
// Not real investment math; the product renders a linear series.
var growthFactor = decimal.RequireFromString("1.07")

// ProjectedGrowth computes amount(n) = contribution * 12 * n * 1.07 for
// n = 1..years, labelled with calendar years starting at startYear. The
// series is strictly increasing for any positive contribution.
func ProjectedGrowth(monthlyContribution int, startYear, years int) []GrowthPoint {
	yearly := decimal.NewFromInt(int64(monthlyContribution)).Mul(decimal.NewFromInt(12))
	points := make([]GrowthPoint, 0, years)
	for n := 1; n <= years; n++ {
		amount := yearly.Mul(decimal.NewFromInt(int64(n))).Mul(growthFactor).Round(2)
		points = append(points, GrowthPoint{
			Year:   strconv.Itoa(startYear + n - 1),
			Amount: amount.InexactFloat64(),
		})
	}
	return points
}

// mockGrowthSeries is the fixed prototype series served when no plan exists
// and by the public mock endpoint.
func mockGrowthSeries() []GrowthPoint {
	return []GrowthPoint{
		{Year: "2024", Amount: 1200},
		{Year: "2025", Amount: 2600},
		{Year: "2026", Amount: 4200},
		{Year: "2027", Amount: 6100},
	}
}

// careSuggestions are static strings; there is no recommendation engine.
func careSuggestions() []string {
	return []string{
		"Annual dental cleaning recommended",
		"Vaccination booster due in 3 months",
		"Consider upgrading to Premium for accident coverage",
	}
}

func mockCareSuggestions() []string {
	return []string{
		"Annual Dental Cleaning",
		"Vaccine Booster (Distemper)",
		"Wellness Exam",
	}
}

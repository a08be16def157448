// Package comparison computes year-over-year changes for expenses and turnover.
package comparison

import (
	"ngtax/tax-engine/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentChange returns (current-last)/last*100, rounded to two places.
// A previous period that is zero or negative reports 0 rather than dividing by it.
func PercentChange(current, last decimal.Decimal) decimal.Decimal {
	if !last.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(last).Div(last).Mul(hundred).Round(2)
}

// Compare builds the comparison for a single metric.
func Compare(current, last decimal.Decimal) models.MetricComparison {
	return models.MetricComparison{
		ThisYear:      current,
		LastYear:      last,
		PercentChange: PercentChange(current, last),
	}
}

// CompareYears compares expenses and turnover between this period and the previous one.
func CompareYears(currentExpenses, lastYearExpenses, currentTurnover, lastYearTurnover decimal.Decimal) models.YearComparison {
	return models.YearComparison{
		Expenses: Compare(currentExpenses, lastYearExpenses),
		Turnover: Compare(currentTurnover, lastYearTurnover),
	}
}

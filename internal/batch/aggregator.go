// Package batch aggregates classified transactions into per-year ledger totals
// that feed the year-over-year comparison.
package batch

import (
	"fmt"
	"sort"
	"time"

	"ngtax/tax-engine/internal/comparison"
	"ngtax/tax-engine/internal/currencyutils"
	"ngtax/tax-engine/internal/dateutils"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"

	"github.com/shopspring/decimal"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", dateutils.ToISODate(dr.Start), dateutils.ToISODate(dr.End))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// YearTotals holds the ledger figures of one calendar year.
type YearTotals struct {
	Year         int
	Period       DateRange
	Turnover     decimal.Decimal
	Expenses     decimal.Decimal
	PerCategory  map[string]decimal.Decimal
	Transactions int
	// Unreviewed counts uncategorized transactions, which are left out of both totals.
	Unreviewed int
}

func newYearTotals(year int) *YearTotals {
	return &YearTotals{Year: year, PerCategory: make(map[string]decimal.Decimal)}
}

func (yt *YearTotals) add(ct models.ClassifiedTransaction, date time.Time, amount decimal.Decimal) {
	yt.Transactions++
	yt.Period = yt.Period.Merge(DateRange{Start: date, End: date})

	switch {
	case ct.NeedsReview():
		yt.Unreviewed++
		return
	case ct.Category == models.CategorySales:
		yt.Turnover = yt.Turnover.Add(amount)
	default:
		yt.Expenses = yt.Expenses.Add(amount)
	}
	yt.PerCategory[ct.Category] = yt.PerCategory[ct.Category].Add(amount)
}

// Ledger is the result of an aggregation, keyed by year.
type Ledger struct {
	years map[int]*YearTotals
}

// Years returns the years present in the ledger in ascending order.
func (l *Ledger) Years() []int {
	years := make([]int, 0, len(l.years))
	for y := range l.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Totals returns the totals of year. A year with no transactions has zero totals.
func (l *Ledger) Totals(year int) YearTotals {
	if yt, ok := l.years[year]; ok {
		return *yt
	}
	return *newYearTotals(year)
}

// Comparison compares year with the year before it.
func (l *Ledger) Comparison(year int) models.YearComparison {
	current := l.Totals(year)
	last := l.Totals(year - 1)
	return comparison.CompareYears(current.Expenses, last.Expenses, current.Turnover, last.Turnover)
}

// Aggregator sums classified transactions by year.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(logger logging.Logger) *Aggregator {
	return &Aggregator{logger: logging.OrDefault(logger)}
}

// Aggregate builds a ledger from txs. Amounts count by absolute value, so
// statements that sign debits negatively aggregate the same as unsigned ones.
// A row with an unparseable date or amount fails the whole aggregation.
func (a *Aggregator) Aggregate(txs []models.ClassifiedTransaction) (*Ledger, error) {
	ledger := &Ledger{years: make(map[int]*YearTotals)}

	for i, ct := range txs {
		row := i + 1
		date, _, err := dateutils.ParseDate(ct.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		amount, err := currencyutils.ParseAmount(ct.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		yt, ok := ledger.years[date.Year()]
		if !ok {
			yt = newYearTotals(date.Year())
			ledger.years[date.Year()] = yt
		}
		yt.add(ct, date, amount.Abs())
	}

	a.detectAndLogDuplicates(txs)

	for _, year := range ledger.Years() {
		yt := ledger.years[year]
		a.logger.Debug("Aggregated ledger year",
			logging.Field{Key: logging.FieldYear, Value: year},
			logging.Field{Key: logging.FieldCount, Value: yt.Transactions},
			logging.Field{Key: "period", Value: yt.Period.String()})
		if yt.Unreviewed > 0 {
			a.logger.Warn("Uncategorized transactions excluded from ledger totals",
				logging.Field{Key: logging.FieldYear, Value: year},
				logging.Field{Key: logging.FieldCount, Value: yt.Unreviewed})
		}
	}

	return ledger, nil
}

// detectAndLogDuplicates warns about rows sharing date, description and amount.
// Duplicates are still counted.
func (a *Aggregator) detectAndLogDuplicates(txs []models.ClassifiedTransaction) {
	type key struct{ date, description, amount string }
	seen := make(map[key]int, len(txs))

	for i, ct := range txs {
		k := key{dateutils.CleanDateString(ct.Date), ct.Description, currencyutils.StandardizeAmount(ct.Amount)}
		if first, ok := seen[k]; ok {
			a.logger.Warn("Possible duplicate transaction",
				logging.Field{Key: logging.FieldRow, Value: i + 1},
				logging.Field{Key: "first_row", Value: first},
				logging.Field{Key: logging.FieldDescription, Value: ct.Description})
			continue
		}
		seen[k] = i + 1
	}
}

package tax

import (
	"ngtax/tax-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Tax amounts are rounded to kobo.
const moneyPlaces = 2

// walkBands applies each band's rate to the slice of taxable income that falls
// inside it, lowest band first. Only bands that receive income are reported.
func walkBands(taxable decimal.Decimal, bands []Band) ([]models.BandApplication, decimal.Decimal) {
	applied := make([]models.BandApplication, 0, len(bands))
	total := decimal.Zero
	remaining := taxable

	for _, b := range bands {
		if !remaining.IsPositive() {
			break
		}

		portion := remaining
		if !b.Unbounded() && portion.GreaterThan(b.Width) {
			portion = b.Width
		}

		tax := portion.Mul(b.Rate).Round(moneyPlaces)
		applied = append(applied, models.BandApplication{
			Rate:         b.Rate,
			AmountInBand: portion,
			TaxInBand:    tax,
		})
		total = total.Add(tax)
		remaining = remaining.Sub(portion)
	}

	return applied, total
}

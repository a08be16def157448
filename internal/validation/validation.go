// Package validation rejects invalid inputs at the boundary before they reach
// the calculators. Calculators clamp rather than fail; negative amounts are
// caught here.
package validation

import (
	"fmt"

	"ngtax/tax-engine/internal/models"
	"ngtax/tax-engine/internal/taxerror"

	"github.com/shopspring/decimal"
)

// NonNegative returns an *taxerror.InvalidAmountError when amount is negative.
func NonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &taxerror.InvalidAmountError{Field: field, Value: amount.String()}
	}
	return nil
}

// ValidateTaxInput checks every amount of a PIT input.
func ValidateTaxInput(in models.TaxInput) error {
	return firstError(
		NonNegative("gross_income", in.GrossIncome),
		NonNegative("allowable_deductions", in.AllowableDeductions),
		NonNegative("non_taxable_income", in.NonTaxableIncome),
		NonNegative("actual_rent_paid", in.ActualRentPaid),
	)
}

// ValidateCgtInput checks the entity type and amounts of a CGT input.
func ValidateCgtInput(in models.CgtInput) error {
	if !in.EntityType.IsValid() {
		return &taxerror.UnknownNameError{Kind: "entity type", Name: string(in.EntityType)}
	}
	return firstError(
		NonNegative("gain_amount", in.GainAmount),
		NonNegative("turnover", in.Turnover),
	)
}

// ValidateComparison checks the four totals of a year comparison.
func ValidateComparison(currentExpenses, lastExpenses, currentTurnover, lastTurnover decimal.Decimal) error {
	return firstError(
		NonNegative("current_expenses", currentExpenses),
		NonNegative("last_expenses", lastExpenses),
		NonNegative("current_turnover", currentTurnover),
		NonNegative("last_turnover", lastTurnover),
	)
}

// IsValidReportFormat checks if the given report format is supported.
func IsValidReportFormat(format string) error {
	switch format {
	case "text", "json", "yaml", "xml":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are 'text', 'json', 'yaml', 'xml'", format)
	}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

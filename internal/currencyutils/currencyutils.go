// Package currencyutils parses and formats naira amounts.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NairaSymbol is the display symbol for NGN amounts.
const NairaSymbol = "₦"

var (
	currencyMarks = regexp.MustCompile(`(?i)(₦|ngn|\s|_)`)
	printer       = message.NewPrinter(language.English)
)

// ParseAmount parses a user-supplied amount such as "₦1,250,000.50",
// "NGN 1 250 000" or "1250000". Commas are thousand separators and the dot is
// the decimal separator. An empty string parses as zero. A leading minus sign
// or surrounding parentheses make the amount negative; rejecting negatives is
// left to the validation layer.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(standardized, "(") && strings.HasSuffix(standardized, ")") {
		negative = true
		standardized = strings.TrimSuffix(strings.TrimPrefix(standardized, "("), ")")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

// StandardizeAmount strips the currency mark, whitespace and thousand separators.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyMarks.ReplaceAllString(amountStr, "")
	return strings.ReplaceAll(amountStr, ",", "")
}

// FormatNaira renders amount with the naira symbol, digit grouping and two
// decimal places, e.g. "₦1,234,567.80" or "-₦500.00".
func FormatNaira(amount decimal.Decimal) string {
	return formatGrouped(amount, NairaSymbol)
}

// FormatAmount renders amount with digit grouping and two decimal places and no symbol.
func FormatAmount(amount decimal.Decimal) string {
	return formatGrouped(amount, "")
}

func formatGrouped(amount decimal.Decimal, symbol string) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	intPart, fraction, _ := strings.Cut(fixed, ".")

	grouped := intPart
	if whole, err := decimal.NewFromString(intPart); err == nil && whole.LessThan(decimal.New(1, 18)) {
		grouped = printer.Sprintf("%d", whole.IntPart())
	}

	return sign + symbol + grouped + "." + fraction
}

// FormatPercent renders a percentage with two decimal places, e.g. "14.08%".
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// FormatRate renders a fractional rate as a percentage, e.g. 0.07 as "7%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// Package compare implements the year-over-year comparison command.
package compare

import (
	"fmt"
	"io"

	"ngtax/tax-engine/cmd/root"
	"ngtax/tax-engine/internal/comparison"
	"ngtax/tax-engine/internal/container"
	"ngtax/tax-engine/internal/currencyutils"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type options struct {
	expenses     string
	lastExpenses string
	turnover     string
	lastTurnover string
	input        string
	year         int
}

var opts options

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare expenses and turnover with the previous year",
	Long: `Compare this year's expenses and turnover with last year's. The percentage
change is reported as 0 when last year's figure is zero.

Figures come either from the amount flags or from a transaction CSV given
with --input. Transactions are classified, summed per calendar year, and the
selected year (the latest by default) is compared with the year before it.
Sales Revenue counts as turnover, every other matched category as expenses,
and uncategorized transactions are excluded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return run(c, cmd.OutOrStdout(), opts)
	},
}

func init() {
	Cmd.Flags().StringVar(&opts.expenses, "expenses", "", "This year's total expenses")
	Cmd.Flags().StringVar(&opts.lastExpenses, "last-expenses", "", "Last year's total expenses")
	Cmd.Flags().StringVar(&opts.turnover, "turnover", "", "This year's turnover")
	Cmd.Flags().StringVar(&opts.lastTurnover, "last-turnover", "", "Last year's turnover")
	Cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Transaction CSV to aggregate per year")
	Cmd.Flags().IntVarP(&opts.year, "year", "y", 0, "Year to compare when using --input (default: latest year in the file)")
}

func run(c *container.Container, w io.Writer, o options) error {
	if o.input != "" {
		if o.expenses != "" || o.lastExpenses != "" || o.turnover != "" || o.lastTurnover != "" {
			return fmt.Errorf("--input cannot be combined with amount flags")
		}
		return runLedger(c, w, o)
	}

	amounts := make([]decimal.Decimal, 4)
	for i, f := range []struct{ flag, raw string }{
		{"--expenses", o.expenses},
		{"--last-expenses", o.lastExpenses},
		{"--turnover", o.turnover},
		{"--last-turnover", o.lastTurnover},
	} {
		amount, err := currencyutils.ParseAmount(f.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.flag, err)
		}
		amounts[i] = amount
	}

	if err := validation.ValidateComparison(amounts[0], amounts[1], amounts[2], amounts[3]); err != nil {
		return err
	}

	result := comparison.CompareYears(amounts[0], amounts[1], amounts[2], amounts[3])
	return root.Render(c, w, &result)
}

func runLedger(c *container.Container, w io.Writer, o options) error {
	txs, err := c.GetCSV().ReadTransactions(o.input)
	if err != nil {
		return err
	}

	classified, stats := c.GetCategorizer().ClassifyAll(txs)
	stats.LogSummary(c.GetLogger())

	ledger, err := c.GetAggregator().Aggregate(classified)
	if err != nil {
		return fmt.Errorf("failed to aggregate %s: %w", o.input, err)
	}

	year := o.year
	if year == 0 {
		years := ledger.Years()
		if len(years) == 0 {
			return fmt.Errorf("no transactions found in %s", o.input)
		}
		year = years[len(years)-1]
	}

	c.GetLogger().Info("Comparing ledger years",
		logging.Field{Key: logging.FieldInputFile, Value: o.input},
		logging.Field{Key: logging.FieldYear, Value: year})

	result := ledger.Comparison(year)
	return root.Render(c, w, &result)
}

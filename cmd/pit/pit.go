// Package pit implements the Personal Income Tax command.
package pit

import (
	"fmt"
	"io"

	"ngtax/tax-engine/cmd/root"
	"ngtax/tax-engine/internal/container"
	"ngtax/tax-engine/internal/currencyutils"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"
	"ngtax/tax-engine/internal/validation"

	"github.com/spf13/cobra"
)

type options struct {
	gross      string
	deductions string
	nonTaxable string
	rentPaid   string
}

var opts options

// Cmd represents the pit command
var Cmd = &cobra.Command{
	Use:   "pit",
	Short: "Compute Personal Income Tax",
	Long: `Compute Personal Income Tax on the progressive bands after the
Consolidated Relief Allowance, allowable deductions and non-taxable income.
Amounts accept naira formatting such as "₦5,000,000".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return run(c, cmd.OutOrStdout(), opts)
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.gross, "gross", "g", "", "Annual gross income")
	Cmd.Flags().StringVarP(&opts.deductions, "deductions", "d", "", "Allowable deductions (pension, NHF, life assurance)")
	Cmd.Flags().StringVarP(&opts.nonTaxable, "non-taxable", "n", "", "Non-taxable income")
	Cmd.Flags().StringVarP(&opts.rentPaid, "rent", "r", "", "Actual rent paid (recorded, does not reduce tax)")
	_ = Cmd.MarkFlagRequired("gross")
}

func parseInput(o options) (models.TaxInput, error) {
	var in models.TaxInput
	var err error
	if in.GrossIncome, err = currencyutils.ParseAmount(o.gross); err != nil {
		return in, fmt.Errorf("--gross: %w", err)
	}
	if in.AllowableDeductions, err = currencyutils.ParseAmount(o.deductions); err != nil {
		return in, fmt.Errorf("--deductions: %w", err)
	}
	if in.NonTaxableIncome, err = currencyutils.ParseAmount(o.nonTaxable); err != nil {
		return in, fmt.Errorf("--non-taxable: %w", err)
	}
	if in.ActualRentPaid, err = currencyutils.ParseAmount(o.rentPaid); err != nil {
		return in, fmt.Errorf("--rent: %w", err)
	}
	return in, validation.ValidateTaxInput(in)
}

func run(c *container.Container, w io.Writer, o options) error {
	in, err := parseInput(o)
	if err != nil {
		return err
	}

	result := c.GetCalculator().ComputePIT(in)
	c.GetLogger().Info("Personal income tax computed",
		logging.Field{Key: logging.FieldOperation, Value: "pit"},
		logging.Field{Key: logging.FieldCount, Value: len(result.BandsApplied)})

	return root.Render(c, w, &result)
}

// Package cgt implements the Capital Gains Tax command.
package cgt

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
	entity   string
	gain     string
	turnover string
}

var opts options

// Cmd represents the cgt command
var Cmd = &cobra.Command{
	Use:   "cgt",
	Short: "Compute Capital Gains Tax",
	Long: `Compute Capital Gains Tax. Companies with turnover at or below the small
company threshold are exempt; larger companies pay the flat company rate.
Individuals are taxed on the progressive Personal Income Tax bands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return run(c, cmd.OutOrStdout(), opts)
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.entity, "entity", "e", "", "Entity type (individual or company)")
	Cmd.Flags().StringVarP(&opts.gain, "gain", "g", "", "Chargeable gain")
	Cmd.Flags().StringVarP(&opts.turnover, "turnover", "t", "", "Annual turnover (companies only)")
	_ = Cmd.MarkFlagRequired("entity")
	_ = Cmd.MarkFlagRequired("gain")
}

func parseInput(o options) (models.CgtInput, error) {
	var in models.CgtInput
	var err error

	if in.EntityType, err = models.ParseEntityType(o.entity); err != nil {
		return in, err
	}
	if in.GainAmount, err = currencyutils.ParseAmount(o.gain); err != nil {
		return in, fmt.Errorf("--gain: %w", err)
	}
	if in.Turnover, err = currencyutils.ParseAmount(o.turnover); err != nil {
		return in, fmt.Errorf("--turnover: %w", err)
	}
	return in, validation.ValidateCgtInput(in)
}

func run(c *container.Container, w io.Writer, o options) error {
	in, err := parseInput(o)
	if err != nil {
		return err
	}

	result := c.GetCalculator().ComputeCGT(in)
	c.GetLogger().Info("Capital gains tax computed",
		logging.Field{Key: logging.FieldOperation, Value: "cgt"},
		logging.Field{Key: logging.FieldEntityType, Value: string(result.EntityType)},
		logging.Field{Key: logging.FieldRule, Value: result.RateDescription})

	return root.Render(c, w, &result)
}

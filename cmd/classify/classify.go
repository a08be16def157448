// Package classify implements the transaction classification command.
package classify

import (
	"fmt"
	"io"

	"ngtax/tax-engine/cmd/root"
	"ngtax/tax-engine/internal/container"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"
	"ngtax/tax-engine/internal/report"

	"github.com/spf13/cobra"
)

type options struct {
	description string
	input       string
	output      string
}

var opts options

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify transactions into expense categories",
	Long: `Classify a single transaction description, or a CSV file with date,
description and amount columns. Categories are tried in declaration order and
the first keyword found in the description wins. Transactions that match no
keyword are reported as Uncategorized for manual review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return run(c, cmd.OutOrStdout(), opts)
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Transaction description to classify")
	Cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input CSV file (date, description, amount)")
	Cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output CSV file for classified transactions")
	Cmd.MarkFlagsMutuallyExclusive("description", "input")
	Cmd.MarkFlagsOneRequired("description", "input")
}

func run(c *container.Container, w io.Writer, o options) error {
	if o.input == "" {
		return classifyOne(c, w, o.description)
	}
	return classifyFile(c, w, o.input, o.output)
}

func classifyOne(c *container.Container, w io.Writer, description string) error {
	ct := c.GetCategorizer().ClassifyTransaction(models.Transaction{Description: description})
	return root.Render(c, w, &report.ClassificationResult{
		Description: ct.Description,
		Category:    ct.Category,
		Matched:     ct.Matched,
		Keyword:     ct.Keyword,
	})
}

func classifyFile(c *container.Container, w io.Writer, input, output string) error {
	logger := c.GetLogger().WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: input},
		logging.Field{Key: logging.FieldOutputFile, Value: output})

	txs, err := c.GetCSV().ReadTransactions(input)
	if err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}

	classified, stats := c.GetCategorizer().ClassifyAll(txs)
	stats.LogSummary(logger)

	if output != "" {
		if err := c.GetCSV().WriteClassified(output, classified); err != nil {
			return fmt.Errorf("failed to write classified transactions: %w", err)
		}
		logger.Info("Classified transactions written", logging.Field{Key: logging.FieldCount, Value: len(classified)})
	}

	return root.Render(c, w, report.NewClassificationSummary(stats))
}

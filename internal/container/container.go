// Package container provides dependency injection for the ngtax application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"ngtax/tax-engine/internal/batch"
	"ngtax/tax-engine/internal/categorizer"
	"ngtax/tax-engine/internal/common"
	"ngtax/tax-engine/internal/config"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/permissions"
	"ngtax/tax-engine/internal/report"
	"ngtax/tax-engine/internal/store"
	"ngtax/tax-engine/internal/tax"

	"github.com/google/uuid"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation.
type Container struct {
	runID       string
	logger      logging.Logger
	config      *config.Config
	store       *store.ReferenceStore
	calculator  *tax.Calculator
	categorizer *categorizer.Categorizer
	evaluator   *permissions.Evaluator
	reporter    *report.ReportGenerator
	csv         *common.CSVFile
	aggregator  *batch.Aggregator
}

// NewContainer creates and wires all application dependencies, logging
// through a logrus adapter configured from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an explicit base logger.
func NewContainerWithLogger(cfg *config.Config, base logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	runID := uuid.NewString()
	logger := logging.OrDefault(base).WithField(logging.FieldRunID, runID)

	referenceStore := store.NewReferenceStore(
		cfg.Reference.CategoriesFile,
		cfg.Reference.TaxRulesFile,
		cfg.Data.Directory,
		logger,
	)

	rules, err := referenceStore.LoadTaxRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load tax rules: %w", err)
	}

	calculator, err := tax.NewCalculator(rules, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create calculator: %w", err)
	}

	ruleSet, err := categorizer.LoadRuleSet(referenceStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}

	delimiter := ','
	if runes := []rune(cfg.CSV.Delimiter); len(runes) == 1 {
		delimiter = runes[0]
	}

	c := &Container{
		runID:       runID,
		logger:      logger,
		config:      cfg,
		store:       referenceStore,
		calculator:  calculator,
		categorizer: categorizer.NewCategorizer(ruleSet, logger),
		evaluator:   permissions.NewEvaluator(cfg.Permissions.Strict, logger),
		reporter:    report.NewReportGenerator(logger),
		csv:         common.NewCSVFile(delimiter, logger),
		aggregator:  batch.NewAggregator(logger),
	}

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldCount, Value: ruleSet.Len()},
		logging.Field{Key: "strict_permissions", Value: cfg.Permissions.Strict})

	return c, nil
}

// GetRunID returns the identifier attached to every log entry of this run.
func (c *Container) GetRunID() string {
	return c.runID
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the reference data store.
func (c *Container) GetStore() *store.ReferenceStore {
	return c.store
}

// GetCalculator returns the PIT and CGT calculator.
func (c *Container) GetCalculator() *tax.Calculator {
	return c.calculator
}

// GetCategorizer returns the transaction categorizer.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetEvaluator returns the permission evaluator.
func (c *Container) GetEvaluator() *permissions.Evaluator {
	return c.evaluator
}

// GetReporter returns the report generator.
func (c *Container) GetReporter() *report.ReportGenerator {
	return c.reporter
}

// GetCSV returns the CSV reader and writer configured with the CSV delimiter.
func (c *Container) GetCSV() *common.CSVFile {
	return c.csv
}

// GetAggregator returns the ledger aggregator.
func (c *Container) GetAggregator() *batch.Aggregator {
	return c.aggregator
}

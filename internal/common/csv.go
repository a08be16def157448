// Package common provides the CSV plumbing shared by the batch commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"

	"ngtax/tax-engine/internal/fileutils"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"

	"github.com/gocarina/gocsv"
)

// CSVFile reads and writes delimited files with a fixed delimiter.
type CSVFile struct {
	Delimiter rune
	logger    logging.Logger
}

// NewCSVFile creates a CSVFile. A zero delimiter means ','.
func NewCSVFile(delimiter rune, logger logging.Logger) *CSVFile {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVFile{Delimiter: delimiter, logger: logging.OrDefault(logger)}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](c *CSVFile, filePath string) ([]TCSVRow, error) {
	c.logger.Debug("Reading CSV file", logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = c.Delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	c.logger.Debug("Read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteCSVFile writes rows to filePath, creating parent directories as needed.
func WriteCSVFile[TCSVRow any](c *CSVFile, filePath string, rows []TCSVRow) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	file, err := fileutils.CreateFile(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = c.Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	c.logger.Debug("Wrote CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// ReadTransactions reads a date,description,amount file.
func (c *CSVFile) ReadTransactions(filePath string) ([]models.Transaction, error) {
	return ReadCSVFile[models.Transaction](c, filePath)
}

// WriteClassified writes classified transactions with their category columns.
func (c *CSVFile) WriteClassified(filePath string, rows []models.ClassifiedTransaction) error {
	return WriteCSVFile(c, filePath, rows)
}

// Package report renders engine results as text, JSON, YAML or XML.
package report

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ngtax/tax-engine/internal/currencyutils"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXML  = "xml"
)

// ReportGenerator renders results in the supported formats.
type ReportGenerator struct {
	logger logging.Logger
	title  cases.Caser
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	return &ReportGenerator{
		logger: logging.OrDefault(logger),
		title:  cases.Title(language.English),
	}
}

// GenerateReport renders report in the given format.
func (g *ReportGenerator) GenerateReport(report interface{}, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return g.generateTextReport(report)
	case FormatJSON:
		return g.generateJSONReport(report)
	case FormatYAML:
		return g.generateYAMLReport(report)
	case FormatXML:
		return g.generateXMLReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write renders report and writes it to w, ending with a newline.
func (g *ReportGenerator) Write(w io.Writer, report interface{}, format string) error {
	data, err := g.GenerateReport(report, format)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

func (g *ReportGenerator) generateJSONReport(report interface{}) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return jsonReport, nil
}

func (g *ReportGenerator) generateYAMLReport(report interface{}) ([]byte, error) {
	yamlReport, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return yamlReport, nil
}

func (g *ReportGenerator) generateXMLReport(report interface{}) ([]byte, error) {
	xmlReport, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(xmlReport)), nil
}

func (g *ReportGenerator) generateTextReport(report interface{}) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	switch r := report.(type) {
	case *models.TaxResult:
		g.writeTaxResult(tw, r)
	case *models.CgtResult:
		g.writeCgtResult(tw, r)
	case *models.YearComparison:
		g.writeMetric(tw, "Expenses", r.Expenses)
		g.writeMetric(tw, "Turnover", r.Turnover)
	case *ClassificationResult:
		fmt.Fprintf(tw, "Description:\t%s\n", r.Description)
		fmt.Fprintf(tw, "Category:\t%s\n", r.Category)
		if r.Matched {
			fmt.Fprintf(tw, "Matched keyword:\t%s\n", r.Keyword)
		} else {
			fmt.Fprintf(tw, "Status:\t%s\n", "needs manual review")
		}
	case *ClassificationSummary:
		fmt.Fprintf(tw, "Transactions:\t%d\n", r.Total)
		fmt.Fprintf(tw, "Classified:\t%d\n", r.Classified)
		fmt.Fprintf(tw, "Needs review:\t%d\n", r.Unclassified)
		fmt.Fprintf(tw, "Success rate:\t%s\n", r.SuccessRate)
		for _, c := range r.PerCategory {
			fmt.Fprintf(tw, "  %s\t%d\n", c.Category, c.Count)
		}
	case *AccessDecision:
		fmt.Fprintf(tw, "%s\t%s %s:\t%s\n", g.title.String(r.Role), r.Action, r.Section, allowedText(r.Allowed))
	case *TeamCapabilities:
		g.writeTeamCapabilities(tw, r)
	default:
		return nil, fmt.Errorf("unsupported report type %T for text format", report)
	}

	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) writeTaxResult(w io.Writer, r *models.TaxResult) {
	fmt.Fprintf(w, "Gross income:\t%s\n", currencyutils.FormatNaira(r.GrossIncome))
	fmt.Fprintf(w, "Consolidated relief:\t%s\n", currencyutils.FormatNaira(r.ConsolidatedRelief))
	fmt.Fprintf(w, "Taxable income:\t%s\n", currencyutils.FormatNaira(r.TaxableIncome))
	for _, band := range r.BandsApplied {
		fmt.Fprintf(w, "  %s band:\t%s\t%s\n",
			currencyutils.FormatRate(band.Rate),
			currencyutils.FormatNaira(band.AmountInBand),
			currencyutils.FormatNaira(band.TaxInBand))
	}
	fmt.Fprintf(w, "Tax payable:\t%s\n", currencyutils.FormatNaira(r.TaxPayable))
	fmt.Fprintf(w, "Effective rate:\t%s\n", currencyutils.FormatPercent(r.EffectiveRate))
	fmt.Fprintf(w, "Net income:\t%s\n", currencyutils.FormatNaira(r.NetIncome()))
}

func (g *ReportGenerator) writeCgtResult(w io.Writer, r *models.CgtResult) {
	fmt.Fprintf(w, "Entity:\t%s\n", g.title.String(string(r.EntityType)))
	fmt.Fprintf(w, "Gain:\t%s\n", currencyutils.FormatNaira(r.GainAmount))
	fmt.Fprintf(w, "Rule:\t%s\n", r.RateDescription)
	fmt.Fprintf(w, "Tax payable:\t%s\n", currencyutils.FormatNaira(r.TaxPayable))
	if r.Breakdown != nil {
		for _, band := range r.Breakdown.BandsApplied {
			fmt.Fprintf(w, "  %s band:\t%s\t%s\n",
				currencyutils.FormatRate(band.Rate),
				currencyutils.FormatNaira(band.AmountInBand),
				currencyutils.FormatNaira(band.TaxInBand))
		}
	}
}

func (g *ReportGenerator) writeMetric(w io.Writer, name string, m models.MetricComparison) {
	fmt.Fprintf(w, "%s:\t%s\t(last year %s)\t%s %s\n",
		name,
		currencyutils.FormatNaira(m.ThisYear),
		currencyutils.FormatNaira(m.LastYear),
		g.title.String(m.Direction()),
		currencyutils.FormatPercent(m.PercentChange))
}

func (g *ReportGenerator) writeTeamCapabilities(w io.Writer, r *TeamCapabilities) {
	if r.Allowed != nil {
		fmt.Fprintf(w, "%s\t%s:\t%s\n", g.title.String(r.Role), r.Capability, allowedText(*r.Allowed))
		return
	}
	granted := r.Capabilities.Granted()
	names := make([]string, len(granted))
	for i, c := range granted {
		names[i] = string(c)
	}
	fmt.Fprintf(w, "%s:\t%s\n", g.title.String(r.Role), strings.Join(names, ", "))
}

func allowedText(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}

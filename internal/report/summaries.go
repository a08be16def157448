package report

import (
	"encoding/xml"
	"fmt"

	"ngtax/tax-engine/internal/models"
	"ngtax/tax-engine/internal/permissions"
)

// CategoryCount is one row of a classification summary.
type CategoryCount struct {
	Category string `json:"category" yaml:"category" xml:"Name,attr"`
	Count    int    `json:"count" yaml:"count" xml:",chardata"`
}

// ClassificationSummary is the reportable form of models.ClassificationStats.
type ClassificationSummary struct {
	XMLName      xml.Name        `json:"-" yaml:"-" xml:"ClassificationSummary"`
	Total        int             `json:"total" yaml:"total" xml:"Total"`
	Classified   int             `json:"classified" yaml:"classified" xml:"Classified"`
	Unclassified int             `json:"unclassified" yaml:"unclassified" xml:"Unclassified"`
	SuccessRate  string          `json:"success_rate" yaml:"success_rate" xml:"SuccessRate"`
	PerCategory  []CategoryCount `json:"per_category" yaml:"per_category" xml:"PerCategory>Category"`
}

// NewClassificationSummary flattens stats into a sorted summary.
func NewClassificationSummary(stats *models.ClassificationStats) *ClassificationSummary {
	summary := &ClassificationSummary{
		Total:        stats.Total,
		Classified:   stats.Classified,
		Unclassified: stats.Unclassified,
		SuccessRate:  fmt.Sprintf("%.2f%%", stats.SuccessRate()),
		PerCategory:  []CategoryCount{},
	}
	for _, name := range stats.Categories() {
		summary.PerCategory = append(summary.PerCategory, CategoryCount{Category: name, Count: stats.PerCategory[name]})
	}
	return summary
}

// ClassificationResult is a single classified description.
type ClassificationResult struct {
	XMLName     xml.Name `json:"-" yaml:"-" xml:"Classification"`
	Description string   `json:"description" yaml:"description" xml:"Description"`
	Category    string   `json:"category" yaml:"category" xml:"Category"`
	Matched     bool     `json:"matched" yaml:"matched" xml:"Matched"`
	Keyword     string   `json:"keyword,omitempty" yaml:"keyword,omitempty" xml:"Keyword,omitempty"`
}

// AccessDecision is the answer to one settings permission question.
type AccessDecision struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"AccessDecision"`
	Role    string   `json:"role" yaml:"role" xml:"Role"`
	Section string   `json:"section" yaml:"section" xml:"Section"`
	Action  string   `json:"action" yaml:"action" xml:"Action"`
	Allowed bool     `json:"allowed" yaml:"allowed" xml:"Allowed"`
}

// TeamCapabilities lists the capabilities of a team role. When a single
// capability was asked about, Capability and Allowed carry the answer.
type TeamCapabilities struct {
	XMLName      xml.Name                     `json:"-" yaml:"-" xml:"TeamCapabilities"`
	Role         string                       `json:"role" yaml:"role" xml:"Role"`
	Capabilities permissions.CapabilityRecord `json:"capabilities" yaml:"capabilities" xml:"Capabilities"`
	Capability   string                       `json:"capability,omitempty" yaml:"capability,omitempty" xml:"Capability,omitempty"`
	Allowed      *bool                        `json:"allowed,omitempty" yaml:"allowed,omitempty" xml:"Allowed,omitempty"`
}

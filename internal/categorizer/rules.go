// Package categorizer assigns transaction categories by ordered keyword rules.
//
// A RuleSet is an ordered list of categories, each with a set of lowercase
// keywords. A description is classified into the first category, in declaration
// order, that has any keyword occurring in it as a substring. There is no
// scoring: when two categories both match, the one declared first wins.
package categorizer

import (
	"fmt"
	"strings"

	"ngtax/tax-engine/internal/models"
)

type rule struct {
	name        string
	description string
	keywords    []string
}

// RuleSet is an immutable, ordered category rule table.
type RuleSet struct {
	rules []rule
}

// NewRuleSet builds a RuleSet from category configurations, keeping their order.
// Keywords are lowercased and trimmed; blank keywords are dropped. Category
// names must be non-empty and unique.
func NewRuleSet(configs []models.CategoryConfig) (*RuleSet, error) {
	seen := make(map[string]bool, len(configs))
	rules := make([]rule, 0, len(configs))

	for i, cfg := range configs {
		name := strings.TrimSpace(cfg.Name)
		if name == "" {
			return nil, fmt.Errorf("category %d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		seen[name] = true

		keywords := make([]string, 0, len(cfg.Keywords))
		for _, kw := range cfg.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}

		rules = append(rules, rule{
			name:        name,
			description: cfg.Description,
			keywords:    keywords,
		})
	}

	return &RuleSet{rules: rules}, nil
}

// Len returns the number of categories.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Names returns the category names in match order. This is the canonical
// category taxonomy for storage and reporting.
func (rs *RuleSet) Names() []string {
	names := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		names[i] = r.name
	}
	return names
}

// Configs returns a copy of the rule set as category configurations.
func (rs *RuleSet) Configs() []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(rs.rules))
	for i, r := range rs.rules {
		keywords := make([]string, len(r.keywords))
		copy(keywords, r.keywords)
		out[i] = models.CategoryConfig{Name: r.name, Description: r.description, Keywords: keywords}
	}
	return out
}

// Contains reports whether name is a category of the rule set.
func (rs *RuleSet) Contains(name string) bool {
	for _, r := range rs.rules {
		if r.name == name {
			return true
		}
	}
	return false
}

// match returns the first rule with a keyword contained in lowered, and that keyword.
func (rs *RuleSet) match(lowered string) (rule, string, bool) {
	for _, r := range rs.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r, kw, true
			}
		}
	}
	return rule{}, "", false
}

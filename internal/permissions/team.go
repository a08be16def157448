package permissions

import (
	"strings"
)

// TeamRole is a role of the team collaboration taxonomy.
type TeamRole string

const (
	TeamOwner  TeamRole = "owner"
	TeamAdmin  TeamRole = "admin"
	TeamMember TeamRole = "member"
	TeamViewer TeamRole = "viewer"
)

// Capability names one boolean of a CapabilityRecord.
type Capability string

const (
	CapViewFinancials   Capability = "canViewFinancials"
	CapEditTransactions Capability = "canEditTransactions"
	CapManageTeam       Capability = "canManageTeam"
	CapExportData       Capability = "canExportData"
	CapViewReports      Capability = "canViewReports"
	CapManageSettings   Capability = "canManageSettings"
	CapDeleteData       Capability = "canDeleteData"
)

// CapabilityRecord is the fixed set of capabilities a team role holds.
type CapabilityRecord struct {
	CanViewFinancials   bool `json:"canViewFinancials" yaml:"canViewFinancials"`
	CanEditTransactions bool `json:"canEditTransactions" yaml:"canEditTransactions"`
	CanManageTeam       bool `json:"canManageTeam" yaml:"canManageTeam"`
	CanExportData       bool `json:"canExportData" yaml:"canExportData"`
	CanViewReports      bool `json:"canViewReports" yaml:"canViewReports"`
	CanManageSettings   bool `json:"canManageSettings" yaml:"canManageSettings"`
	CanDeleteData       bool `json:"canDeleteData" yaml:"canDeleteData"`
}

// Has reports whether the record grants c. Unknown capabilities are denied.
func (r CapabilityRecord) Has(c Capability) bool {
	switch c {
	case CapViewFinancials:
		return r.CanViewFinancials
	case CapEditTransactions:
		return r.CanEditTransactions
	case CapManageTeam:
		return r.CanManageTeam
	case CapExportData:
		return r.CanExportData
	case CapViewReports:
		return r.CanViewReports
	case CapManageSettings:
		return r.CanManageSettings
	case CapDeleteData:
		return r.CanDeleteData
	default:
		return false
	}
}

// Granted returns the capabilities set in the record, in canonical order.
func (r CapabilityRecord) Granted() []Capability {
	var out []Capability
	for _, c := range Capabilities() {
		if r.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

var teamTable = map[TeamRole]CapabilityRecord{
	TeamOwner: {
		CanViewFinancials:   true,
		CanEditTransactions: true,
		CanManageTeam:       true,
		CanExportData:       true,
		CanViewReports:      true,
		CanManageSettings:   true,
		CanDeleteData:       true,
	},
	TeamAdmin: {
		CanViewFinancials:   true,
		CanEditTransactions: true,
		CanManageTeam:       true,
		CanExportData:       true,
		CanViewReports:      true,
		CanManageSettings:   true,
	},
	TeamMember: {
		CanViewFinancials:   true,
		CanEditTransactions: true,
		CanViewReports:      true,
	},
	TeamViewer: {
		CanViewFinancials: true,
		CanViewReports:    true,
	},
}

// TeamRoles returns the canonical team roles, most privileged first.
func TeamRoles() []TeamRole {
	return []TeamRole{TeamOwner, TeamAdmin, TeamMember, TeamViewer}
}

// Capabilities returns the canonical capability names.
func Capabilities() []Capability {
	return []Capability{
		CapViewFinancials,
		CapEditTransactions,
		CapManageTeam,
		CapExportData,
		CapViewReports,
		CapManageSettings,
		CapDeleteData,
	}
}

// IsValid reports whether r is a team role.
func (r TeamRole) IsValid() bool {
	_, ok := teamTable[r]
	return ok
}

// IsValid reports whether c is a known capability.
func (c Capability) IsValid() bool {
	for _, known := range Capabilities() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseTeamRole converts a name to a TeamRole. Unknown or empty names resolve
// to TeamViewer; the boolean reports whether the name was recognized.
func ParseTeamRole(name string) (TeamRole, bool) {
	role := TeamRole(strings.ToLower(strings.TrimSpace(name)))
	if role.IsValid() {
		return role, true
	}
	return TeamViewer, false
}

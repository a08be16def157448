// Package permissions evaluates the two role taxonomies of the engine.
//
// The settings taxonomy (admin, accountant, staff, viewer) grants read or write
// access per settings section. The team taxonomy (owner, admin, member, viewer)
// grants a fixed record of boolean capabilities. The two are distinct types and
// cannot be mixed: a TeamRole is never accepted where a SettingsRole is expected.
//
// Both tables are compiled in and never mutated. Every lookup fails closed.
package permissions

import (
	"strings"
)

// SettingsRole is a role of the settings taxonomy.
type SettingsRole string

const (
	SettingsAdmin      SettingsRole = "admin"
	SettingsAccountant SettingsRole = "accountant"
	SettingsStaff      SettingsRole = "staff"
	SettingsViewer     SettingsRole = "viewer"
)

// Section is a named settings area.
type Section string

const (
	SectionCompanyProfile Section = "companyProfile"
	SectionUsersRoles     Section = "usersRoles"
	SectionTaxSettings    Section = "taxSettings"
	SectionCategories     Section = "categories"
	SectionNotifications  Section = "notifications"
	SectionIntegrations   Section = "integrations"
	SectionBilling        Section = "billing"
	SectionAuditLog       Section = "auditLog"
)

// Action is an operation on a settings section.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Access is the permission a settings role holds on one section.
type Access struct {
	CanRead  bool `json:"canRead" yaml:"canRead"`
	CanWrite bool `json:"canWrite" yaml:"canWrite"`
}

// Allows reports whether the access grants action.
func (a Access) Allows(action Action) bool {
	switch action {
	case ActionRead:
		return a.CanRead
	case ActionWrite:
		return a.CanWrite
	default:
		return false
	}
}

var (
	readWrite = Access{CanRead: true, CanWrite: true}
	readOnly  = Access{CanRead: true}
)

// settingsTable maps section and role to access. Missing pairs mean no access.
var settingsTable = map[Section]map[SettingsRole]Access{
	SectionCompanyProfile: {
		SettingsAdmin:      readWrite,
		SettingsAccountant: readOnly,
		SettingsStaff:      readOnly,
		SettingsViewer:     readOnly,
	},
	SectionUsersRoles: {
		SettingsAdmin: readWrite,
	},
	SectionTaxSettings: {
		SettingsAdmin:      readWrite,
		SettingsAccountant: readWrite,
		SettingsStaff:      readOnly,
		SettingsViewer:     readOnly,
	},
	SectionCategories: {
		SettingsAdmin:      readWrite,
		SettingsAccountant: readWrite,
		SettingsStaff:      readOnly,
	},
	SectionNotifications: {
		SettingsAdmin:      readWrite,
		SettingsAccountant: readWrite,
		SettingsStaff:      readWrite,
		SettingsViewer:     readOnly,
	},
	SectionIntegrations: {
		SettingsAdmin:      readWrite,
		SettingsAccountant: readOnly,
	},
	SectionBilling: {
		SettingsAdmin: readWrite,
	},
	SectionAuditLog: {
		SettingsAdmin:      readOnly,
		SettingsAccountant: readOnly,
	},
}

// SettingsRoles returns the canonical settings roles, most privileged first.
func SettingsRoles() []SettingsRole {
	return []SettingsRole{SettingsAdmin, SettingsAccountant, SettingsStaff, SettingsViewer}
}

// Sections returns the canonical settings sections.
func Sections() []Section {
	return []Section{
		SectionCompanyProfile,
		SectionUsersRoles,
		SectionTaxSettings,
		SectionCategories,
		SectionNotifications,
		SectionIntegrations,
		SectionBilling,
		SectionAuditLog,
	}
}

// Actions returns the canonical settings actions.
func Actions() []Action {
	return []Action{ActionRead, ActionWrite}
}

// IsValid reports whether r is a settings role.
func (r SettingsRole) IsValid() bool {
	switch r {
	case SettingsAdmin, SettingsAccountant, SettingsStaff, SettingsViewer:
		return true
	}
	return false
}

// IsValid reports whether s is a settings section.
func (s Section) IsValid() bool {
	_, ok := settingsTable[s]
	return ok
}

// IsValid reports whether a is a settings action.
func (a Action) IsValid() bool {
	return a == ActionRead || a == ActionWrite
}

// ParseSettingsRole converts a name to a SettingsRole. Unknown or empty names
// resolve to SettingsViewer; the boolean reports whether the name was recognized.
func ParseSettingsRole(name string) (SettingsRole, bool) {
	role := SettingsRole(strings.ToLower(strings.TrimSpace(name)))
	if role.IsValid() {
		return role, true
	}
	return SettingsViewer, false
}

// lookupAccess returns the table entry for role on section; absent pairs are zero.
func lookupAccess(role SettingsRole, section Section) Access {
	return settingsTable[section][role]
}

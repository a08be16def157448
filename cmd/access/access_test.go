package access

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"ngtax/tax-engine/internal/config"
	"ngtax/tax-engine/internal/container"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/report"
	"ngtax/tax-engine/internal/taxerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, format string) *container.Container {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := config.DefaultConfig()
	cfg.Data.Directory = t.TempDir()
	cfg.Reference.CategoriesFile = filepath.Join(cfg.Data.Directory, "categories.yaml")
	cfg.Reference.TaxRulesFile = filepath.Join(cfg.Data.Directory, "tax_rules.yaml")
	cfg.Report.Format = format
	c, err := container.NewContainerWithLogger(cfg, &logging.MockLogger{})
	require.NoError(t, err)
	return c
}

func TestAccessCommand_Structure(t *testing.T) {
	assert.Equal(t, "access", Cmd.Use)
	assert.NotNil(t, Cmd.PersistentFlags().Lookup("role"))
	assert.NotNil(t, Cmd.PersistentFlags().Lookup("strict"))

	names := []string{}
	for _, sub := range Cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"settings", "team"}, names)

	action := settingsCmd.Flags().Lookup("action")
	require.NotNil(t, action)
	assert.Equal(t, "read", action.DefValue)
}

func TestRunSettings(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		role    string
		allowed bool
	}{
		{"staff cannot read users", options{role: "staff", section: "usersRoles", action: "read"}, "staff", false},
		{"admin writes users", options{role: "admin", section: "usersRoles", action: "write"}, "admin", true},
		{"unknown role is viewer", options{role: "superuser", section: "companyProfile", action: "read"}, "viewer", true},
		{"unknown section denied", options{role: "admin", section: "payroll", action: "read"}, "admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContainer(t, "json")

			var buf bytes.Buffer
			require.NoError(t, runSettings(c, &buf, tt.opts))

			var decision report.AccessDecision
			require.NoError(t, json.Unmarshal(buf.Bytes(), &decision))
			assert.Equal(t, tt.role, decision.Role)
			assert.Equal(t, tt.allowed, decision.Allowed)
		})
	}
}

func TestRunSettings_Strict(t *testing.T) {
	c := newTestContainer(t, "text")

	err := runSettings(c, &bytes.Buffer{}, options{role: "admin", section: "payroll", action: "read", strict: true})
	require.Error(t, err)

	var unknown *taxerror.UnknownNameError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "payroll", unknown.Name)
}

func TestRunTeam(t *testing.T) {
	c := newTestContainer(t, "json")

	var buf bytes.Buffer
	require.NoError(t, runTeam(c, &buf, options{role: "admin", capability: "canDeleteData"}))

	var caps report.TeamCapabilities
	require.NoError(t, json.Unmarshal(buf.Bytes(), &caps))
	assert.Equal(t, "admin", caps.Role)
	assert.True(t, caps.Capabilities.CanManageTeam)
	require.NotNil(t, caps.Allowed)
	assert.False(t, *caps.Allowed)
}

func TestRunTeam_Text(t *testing.T) {
	c := newTestContainer(t, "text")

	var buf bytes.Buffer
	require.NoError(t, runTeam(c, &buf, options{role: "member"}))
	assert.Contains(t, buf.String(), "canViewFinancials, canEditTransactions, canViewReports")

	err := runTeam(c, &bytes.Buffer{}, options{role: "owner", capability: "canFly", strict: true})
	assert.EqualError(t, err, `permission check failed: unknown capability "canFly"`)
}

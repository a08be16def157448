// Package access implements the permission lookup commands.
package access

import (
	"fmt"
	"io"

	"ngtax/tax-engine/cmd/root"
	"ngtax/tax-engine/internal/container"
	"ngtax/tax-engine/internal/permissions"
	"ngtax/tax-engine/internal/report"

	"github.com/spf13/cobra"
)

type options struct {
	role       string
	section    string
	action     string
	capability string
	strict     bool
}

var opts options

// Cmd represents the access command
var Cmd = &cobra.Command{
	Use:   "access",
	Short: "Evaluate role permissions",
	Long: `Evaluate role permissions. Settings roles (admin, accountant, staff, viewer)
are checked per settings section and action. Team roles (owner, admin, member,
viewer) carry a fixed set of capabilities. Unknown roles are treated as viewer.`,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Check a settings role against a section and action",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return runSettings(c, cmd.OutOrStdout(), opts)
	},
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show the capabilities of a team role",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return runTeam(c, cmd.OutOrStdout(), opts)
	},
}

func init() {
	Cmd.PersistentFlags().StringVar(&opts.role, "role", "", "Role name")
	Cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Fail on unknown section, action or capability names")

	settingsCmd.Flags().StringVarP(&opts.section, "section", "s", "", "Settings section (e.g. usersRoles, taxSettings)")
	settingsCmd.Flags().StringVarP(&opts.action, "action", "a", string(permissions.ActionRead), "Action (read or write)")
	_ = settingsCmd.MarkFlagRequired("section")

	teamCmd.Flags().StringVar(&opts.capability, "capability", "", "Single capability to check (e.g. canDeleteData)")

	Cmd.AddCommand(settingsCmd, teamCmd)
}

func evaluator(c *container.Container, o options) *permissions.Evaluator {
	if o.strict && !c.GetEvaluator().Strict() {
		return permissions.NewEvaluator(true, c.GetLogger())
	}
	return c.GetEvaluator()
}

func runSettings(c *container.Container, w io.Writer, o options) error {
	role, _ := permissions.ParseSettingsRole(o.role)

	allowed, err := evaluator(c, o).CheckAccess(role, permissions.Section(o.section), permissions.Action(o.action))
	if err != nil {
		return fmt.Errorf("permission check failed: %w", err)
	}

	return root.Render(c, w, &report.AccessDecision{
		Role:    string(role),
		Section: o.section,
		Action:  o.action,
		Allowed: allowed,
	})
}

func runTeam(c *container.Container, w io.Writer, o options) error {
	role, _ := permissions.ParseTeamRole(o.role)
	e := evaluator(c, o)

	result := &report.TeamCapabilities{
		Role:         string(role),
		Capabilities: e.Capabilities(role),
	}

	if o.capability != "" {
		has, err := e.CheckCapability(role, permissions.Capability(o.capability))
		if err != nil {
			return fmt.Errorf("permission check failed: %w", err)
		}
		result.Capability = o.capability
		result.Allowed = &has
	}

	return root.Render(c, w, result)
}

// Package reference implements commands that inspect and export reference data.
package reference

import (
	"fmt"
	"io"
	"path/filepath"

	"ngtax/tax-engine/cmd/root"
	"ngtax/tax-engine/internal/container"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/permissions"
	"ngtax/tax-engine/internal/store"

	"github.com/spf13/cobra"
)

var exportDir string

// Cmd represents the reference command
var Cmd = &cobra.Command{
	Use:   "reference",
	Short: "Inspect or export the reference data in use",
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List the canonical category and role names",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return runNames(c, cmd.OutOrStdout())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the effective categories and tax rules as YAML files",
	Long: `Write the effective categories and tax rules as YAML files. The files can
be edited and pointed to with reference.categories_file and
reference.tax_rules_file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return runExport(c, cmd.OutOrStdout(), exportDir)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Directory to write the files to")
	Cmd.AddCommand(namesCmd, exportCmd)
}

func runNames(c *container.Container, w io.Writer) error {
	fmt.Fprintln(w, "Categories:")
	for _, name := range c.GetCategorizer().RuleSet().Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "Settings roles:")
	for _, r := range permissions.SettingsRoles() {
		fmt.Fprintf(w, "  %s\n", r)
	}
	fmt.Fprintln(w, "Settings sections:")
	for _, s := range permissions.Sections() {
		fmt.Fprintf(w, "  %s\n", s)
	}

	fmt.Fprintln(w, "Team roles:")
	for _, r := range permissions.TeamRoles() {
		fmt.Fprintf(w, "  %s\n", r)
	}
	fmt.Fprintln(w, "Team capabilities:")
	for _, capability := range permissions.Capabilities() {
		fmt.Fprintf(w, "  %s\n", capability)
	}
	return nil
}

func runExport(c *container.Container, w io.Writer, dir string) error {
	s := c.GetStore()

	categoriesPath := filepath.Join(dir, store.DefaultCategoriesFile)
	if err := s.SaveCategories(categoriesPath, c.GetCategorizer().RuleSet().Configs()); err != nil {
		return err
	}

	rulesPath := filepath.Join(dir, store.DefaultTaxRulesFile)
	if err := s.SaveTaxRules(rulesPath, c.GetCalculator().Rules()); err != nil {
		return err
	}

	c.GetLogger().Info("Reference data exported",
		logging.Field{Key: logging.FieldOutputFile, Value: dir})
	fmt.Fprintf(w, "Wrote %s\nWrote %s\n", categoriesPath, rulesPath)
	return nil
}

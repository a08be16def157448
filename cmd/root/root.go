// Package root contains the root command for the application.
package root

import (
	"fmt"
	"io"

	"ngtax/tax-engine/internal/config"
	"ngtax/tax-engine/internal/container"
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/validation"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	Format     string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// container's logger once the configuration has been loaded.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies for the running command.
	AppContainer *container.Container

	// SharedFlags holds the values of the persistent flags.
	SharedFlags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ngtax",
		Short: "Nigerian tax computation and transaction classification engine.",
		Long: `ngtax computes Personal Income Tax and Capital Gains Tax under the Nigerian
progressive band rules, compares fiscal years, classifies bank transactions
into expense categories, and evaluates role permissions.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: initialize,
	}
)

// Init initializes the root command persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.ConfigFile, "config", "c", "", "Config file (default searches $HOME/.ngtax, .ngtax and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format override (text, json, yaml, xml)")
}

func initialize(cmd *cobra.Command, args []string) error {
	if envFile, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Error loading .env file", logging.Field{Key: logging.FieldFile, Value: envFile})
	}

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if err := ApplyOverrides(cfg, SharedFlags); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Command started", logging.Field{Key: logging.FieldOperation, Value: cmd.CommandPath()})
	return nil
}

// ApplyOverrides applies flag values on top of the loaded configuration.
func ApplyOverrides(cfg *config.Config, flags GlobalFlags) error {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.Format != "" {
		if err := validation.IsValidReportFormat(flags.Format); err != nil {
			return err
		}
		cfg.Report.Format = flags.Format
	}
	return nil
}

// GetContainer returns the container, failing when the root pre-run did not execute.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	return AppContainer, nil
}

// Render writes v to w in the configured report format.
func Render(c *container.Container, w io.Writer, v interface{}) error {
	return c.GetReporter().Write(w, v, c.GetConfig().Report.Format)
}

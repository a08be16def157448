// Package main is the entry point of the ngtax command line tool.
package main

import (
	"fmt"
	"os"
	"strings"

	"ngtax/tax-engine/cmd/access"
	"ngtax/tax-engine/cmd/cgt"
	"ngtax/tax-engine/cmd/classify"
	"ngtax/tax-engine/cmd/compare"
	"ngtax/tax-engine/cmd/pit"
	"ngtax/tax-engine/cmd/reference"
	"ngtax/tax-engine/cmd/root"
	"ngtax/tax-engine/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// Load .env before anything reads the environment.
	_, _ = config.LoadEnv()

	logrus.SetLevel(logLevelFromEnv())

	root.Init()

	root.Cmd.AddCommand(pit.Cmd)
	root.Cmd.AddCommand(cgt.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(access.Cmd)
	root.Cmd.AddCommand(reference.Cmd)
}

// logLevelFromEnv reads the global logrus level from NGTAX_LOG_LEVEL.
func logLevelFromEnv() logrus.Level {
	logLevelStr := os.Getenv(config.EnvPrefix + "_LOG_LEVEL")
	if logLevelStr == "" {
		return logrus.InfoLevel
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		return logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

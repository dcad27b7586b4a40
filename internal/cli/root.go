// SPDX-License-Identifier: MIT

// Package cli provides the commands of the chemgraph tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemgraph/element"
)

// Version is stamped at build time.
var Version = "dev"

var (
	logLevel     string
	logFormat    string
	elementsFile string
)

var rootCmd = &cobra.Command{
	Use:     "chemgraph",
	Short:   "Build molecular graphs under valence constraints",
	Version: Version,
	Long: `chemgraph assembles molecules from carbon branches, bonds, mutations,
added atoms and chains, then locks them with hydrogens to report the raw
formula and the molecular weight.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&elementsFile, "elements", "", "YAML element table replacing the built-in one")
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error
		return 1
	}
	return 0
}

// loadTable returns the table named by --elements, or the built-in one.
func loadTable() (*element.Table, error) {
	if elementsFile == "" {
		return element.Default(), nil
	}
	f, err := os.Open(elementsFile)
	if err != nil {
		return nil, fmt.Errorf("opening element table: %w", err)
	}
	defer f.Close()

	t, err := element.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", elementsFile, err)
	}
	return t, nil
}

// SPDX-License-Identifier: MIT

// Package cli implements the linkgrid command-line interface.
//
// # Commands
//
//   - run: build a grid, apply the scenario's deformations, render results
//   - validate: load a scenario file and report what it would do
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every correction made by the engine. The logger is passed through
// context.Context.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "linkgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, set through SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "linkgrid deforms a grid of links and propagates distance constraints",
		Long:         `linkgrid displaces one link of a 2D/3D grid and lets every other link follow until all neighbour pairs respect a per-axis distance window.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\ncommit: %s\nbuilt: %s\n", appName, commit, date))

	root.AddCommand(c.runCommand())
	root.AddCommand(c.validateCommand())

	return root
}

// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	"github.com/runoshun/todo/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A simple CLI to-do app",
		Long: `todo keeps a list of short text tasks in a local SQLite database.

Tasks are stored under $XDG_CONFIG_HOME/todo (or the platform config
directory when XDG_CONFIG_HOME is unset). The database is created on
first use.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			// Only task commands touch the database.
			if cmd.GroupID != groupTask {
				return nil
			}
			return c.Open(cmd.Context())
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	removeCmd := newRemoveCommand(c)
	removeCmd.GroupID = groupTask

	// Setup commands
	pathCmd := newPathCommand(c)
	pathCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		removeCmd,
		pathCmd,
		configCmd,
	)

	return root
}

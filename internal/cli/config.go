package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/spf13/cobra"
)

// newPathCommand creates the path command showing where data is stored.
func newPathCommand(c *app.Container) *cobra.Command {
	var showDir bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the database file path",
		Long: `Print the path of the task database.

With --dir, print the data directory that also holds config.toml and logs/.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showDir {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.Config.DataDir)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.Config.DatabasePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDir, "dir", false, "Print the data directory instead")

	return cmd
}

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Inspect the todo configuration file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))

	return cmd
}

// configFile mirrors the layout of config.toml.
type configFile struct {
	Log      domain.LogConfig      `toml:"log"`
	Database domain.DatabaseConfig `toml:"database"`
	List     domain.ListConfig     `toml:"list"`
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after applying config.toml over defaults.

Example config.toml:

  [log]
  level = "info"      # debug, info, warn, error

  [database]
  file = "tasks.db"   # file name inside the data directory

  [list]
  format = "table"    # table, json, yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.AppConfig
			if cfg == nil {
				cfg = domain.NewDefaultConfig()
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if _, err := os.Stat(c.Config.ConfigPath); err == nil {
				_, _ = fmt.Fprintf(w, "  %s\n", c.Config.ConfigPath)
			} else {
				_, _ = fmt.Fprintf(w, "  %s (not found, using defaults)\n", c.Config.ConfigPath)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective config]")
			out := configFile{Log: cfg.Log, Database: cfg.Database, List: cfg.List}
			if err := toml.NewEncoder(w).Encode(out); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}

	return cmd
}

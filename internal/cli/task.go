package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Long: `Add a new task with the given description.

Multiple arguments are joined with single spaces, so quoting is optional.

Examples:
  todo add "Buy groceries"
  todo add Finish report`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Description: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
				fmt.Sprintf("Task added successfully with id: %d", out.TaskID)))
			return nil
		},
	}

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Long: `Display all tasks ordered by ID.

The default table has the columns ID, DONE, BIRTH and DESCRIPTION.
BIRTH is the creation time; a corrupted value is shown as <invalid>.

Examples:
  todo list
  todo list --format json
  todo list -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveListFormat(opts.Format, c.AppConfig)
			if err != nil {
				return err
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			return renderTasks(cmd.OutOrStdout(), out.Tasks, format)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "o", "", "Output format: table, json or yaml (default from config, else table)")

	return cmd
}

// resolveListFormat picks the flag value, then the configured default.
func resolveListFormat(flag string, cfg *domain.Config) (domain.ListFormat, error) {
	if flag == "" {
		if cfg != nil && cfg.List.Format.IsValid() {
			return cfg.List.Format, nil
		}
		return domain.ListFormatTable, nil
	}
	format := domain.ListFormat(strings.ToLower(flag))
	if !format.IsValid() {
		return "", &domain.ValidationError{Field: "format", Value: flag, Err: domain.ErrInvalidListFormat}
	}
	return format, nil
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done by ID",
		Long: `Mark a task as done.

Marking a task that is already done is not an error.

Examples:
  todo done 1
  todo done "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.AlreadyDone {
				_, _ = fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("Task %d was already done.", taskID)))
				return nil
			}
			_, _ = fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("Task %d marked as done!", taskID)))
			return nil
		},
	}

	return cmd
}

// newRemoveCommand creates the remove command for deleting tasks.
func newRemoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a task by ID",
		Long: `Remove a task permanently.

Examples:
  todo remove 2
  todo rm "#2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID}); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("Task %d removed!", taskID)))
			return nil
		},
	}

	return cmd
}

// parseTaskID parses a task ID argument. A leading # is accepted.
func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id", Value: s, Err: domain.ErrInvalidTaskID}
	}
	return id, nil
}

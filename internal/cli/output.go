package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/todo/internal/domain"
	"gopkg.in/yaml.v3"
)

// Colors defines the color palette for command output.
var Colors = struct {
	Header  lipgloss.Color
	Success lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
}{
	Header:  lipgloss.Color("#6C5CE7"), // Purple
	Success: lipgloss.Color("#00B894"), // Green
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
}

// styles are rendered without color when output is not a terminal.
var styles = struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Invalid lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(Colors.Header),
	Success: lipgloss.NewStyle().Foreground(Colors.Success),
	Muted:   lipgloss.NewStyle().Foreground(Colors.Muted),
	Invalid: lipgloss.NewStyle().Foreground(Colors.Error),
}

// Column widths of the task table.
const (
	idWidth     = 8
	doneWidth   = 8
	birthWidth  = len(domain.TimestampLayout)
	separatorLn = 60
)

// NoTasksMessage is printed by the table format when the store is empty.
const NoTasksMessage = "No tasks found"

// taskView is the exported shape of a task for json and yaml output.
type taskView struct {
	Created     string `json:"created" yaml:"created"`
	Description string `json:"description" yaml:"description"`
	ID          int64  `json:"id" yaml:"id"`
	Done        bool   `json:"done" yaml:"done"`
}

func newTaskViews(tasks []*domain.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskView{
			ID:          t.ID,
			Description: t.Description,
			Done:        t.Done,
			Created:     t.Created.String(),
		})
	}
	return views
}

// renderTasks writes tasks in the requested format.
func renderTasks(w io.Writer, tasks []*domain.Task, format domain.ListFormat) error {
	switch format {
	case domain.ListFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newTaskViews(tasks)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case domain.ListFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newTaskViews(tasks)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		printTaskTable(w, tasks)
		return nil
	}
}

// printTaskTable prints tasks as a pipe-separated table.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, styles.Muted.Render(NoTasksMessage))
		return
	}

	header := formatRow("ID", "DONE", "BIRTH", "DESCRIPTION")
	_, _ = fmt.Fprintln(w, styles.Header.Render(header))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", separatorLn))

	for _, t := range tasks {
		done := pad(strconv.FormatBool(t.Done), doneWidth)
		if t.Done {
			done = styles.Success.Render(done)
		}
		birth := pad(t.Created.String(), birthWidth)
		if !t.Created.Valid {
			birth = styles.Invalid.Render(birth)
		}
		_, _ = fmt.Fprintf(w, "%s | %s | %s | %s\n",
			pad(strconv.FormatInt(t.ID, 10), idWidth),
			done,
			birth,
			t.Description,
		)
	}
}

func formatRow(id, done, birth, desc string) string {
	return fmt.Sprintf("%s | %s | %s | %s", pad(id, idWidth), pad(done, doneWidth), pad(birth, birthWidth), desc)
}

// pad left-aligns s in a column of the given display width.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

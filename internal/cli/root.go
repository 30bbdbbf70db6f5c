// Package cli provides the command-line interface for tick.
package cli

import (
	"fmt"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupView  = "view"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tick.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tick",
		Short: "Terminal task dashboard",
		Long: `tick is a personal task dashboard for the terminal.

Tasks have a title, description, status (todo, in-progress, completed),
priority (low, medium, high), a due date and free-form tags. The dashboard
derives counts, the completion rate, overdue and due-today lists and due date
reminders from the current task collection.

Run without arguments to open the interactive dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the TUI
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	profileCmd := newProfileCommand(c)
	profileCmd.GroupID = groupSetup

	settingsCmd := newSettingsCommand(c)
	settingsCmd.GroupID = groupSetup

	migrateCmd := newMigrateCommand(c)
	migrateCmd.GroupID = groupSetup

	// Task management commands
	newCmd := newNewCommand(c)
	newCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	reopenCmd := newReopenCommand(c)
	reopenCmd.GroupID = groupTask

	copyCmd := newCopyCommand(c)
	copyCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	pruneCmd := newPruneCommand(c)
	pruneCmd.GroupID = groupTask

	clearCmd := newClearCommand(c)
	clearCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	// Views
	dashboardCmd := newDashboardCommand(c)
	dashboardCmd.GroupID = groupView

	notificationsCmd := newNotificationsCommand(c)
	notificationsCmd.GroupID = groupView

	analyticsCmd := newAnalyticsCommand(c)
	analyticsCmd.GroupID = groupView

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupView

	watchCmd := newWatchCommand(c)
	watchCmd.GroupID = groupView

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupView

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupView

	// Add subcommands
	root.AddCommand(
		initCmd,
		configCmd,
		profileCmd,
		settingsCmd,
		migrateCmd,
		newCmd,
		listCmd,
		showCmd,
		editCmd,
		statusCmd,
		doneCmd,
		reopenCmd,
		copyCmd,
		rmCmd,
		pruneCmd,
		clearCmd,
		exportCmd,
		dashboardCmd,
		notificationsCmd,
		analyticsCmd,
		statsCmd,
		watchCmd,
		logsCmd,
		tuiCmd,
	)

	return root
}

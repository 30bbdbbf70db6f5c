package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/tui"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `tick` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive dashboard",
		Long:  `Launch the interactive terminal dashboard for managing tasks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI runs the TUI in the alternate screen until the user quits.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

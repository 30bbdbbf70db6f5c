package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/spf13/cobra"
)

// newSettingsCommand creates the settings command.
func newSettingsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage preferences",
		Long: fmt.Sprintf(`Show and change preferences.

Keys: %s`, strings.Join(domain.SettingKeys(), ", ")),
		// Without a subcommand, show the settings
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showSettings(cmd, c, false)
		},
	}

	cmd.AddCommand(newSettingsShowCommand(c))
	cmd.AddCommand(newSettingsSetCommand(c))
	cmd.AddCommand(newSettingsResetCommand(c))

	return cmd
}

func showSettings(cmd *cobra.Command, c *app.Container, asJSON bool) error {
	out, err := c.ShowSettingsUseCase().Execute(cmd.Context(), usecase.ShowSettingsInput{})
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), out.Settings)
	}
	printSettings(cmd.OutOrStdout(), out.Settings)
	return nil
}

// printSettings prints one dotted key per line.
func printSettings(w io.Writer, s domain.UserSettings) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()
	for _, key := range domain.SettingKeys() {
		v, _ := s.Get(key)
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", key, v)
	}
}

// newSettingsShowCommand creates the settings show subcommand.
func newSettingsShowCommand(c *app.Container) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showSettings(cmd, c, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

// newSettingsSetCommand creates the settings set subcommand.
func newSettingsSetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a preference",
		Long: `Change a single preference.

Examples:
  tick settings set appearance.theme dark
  tick settings set notifications.dueDateReminders false
  tick settings set defaultDueTime 09:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.UpdateSettingsUseCase().Execute(cmd.Context(), usecase.UpdateSettingsInput{
				Key:   args[0],
				Value: args[1],
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// newSettingsResetCommand creates the settings reset subcommand.
func newSettingsResetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ResetSettingsUseCase().Execute(cmd.Context(), usecase.ResetSettingsInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults")
			printSettings(cmd.OutOrStdout(), out.Settings)
			return nil
		},
	}
}

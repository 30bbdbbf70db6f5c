package cli

import (
	"fmt"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs [id]",
		Short: "Show the operation log",
		Long: `Show entries of the operation log (<data dir>/logs/tick.log).

With a task ID, only entries about that task are shown. The full ID of a
deleted task still matches its entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ShowLogsInput{Lines: lines}
			if len(args) == 1 {
				input.TaskID = args[0]
			}
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			if out.Content != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}

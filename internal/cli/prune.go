package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/runoshun/ticktick/internal/usecase/shared"
	"github.com/spf13/cobra"
)

func newPruneCommand(c *app.Container) *cobra.Command {
	var (
		olderThan string
		dryRun    bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete tasks completed long ago",
		Long: `Prune deletes completed tasks whose completion time is older than
--older-than (default 30d). Use --older-than 0d to prune every completed task.

Examples:
  tick prune --dry-run
  tick prune --older-than 2w -y`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			age, err := domain.ParseAge(olderThan)
			if err != nil {
				return err
			}
			uc := c.PruneTasksUseCase()
			w := cmd.OutOrStdout()

			preview, err := uc.Execute(cmd.Context(), usecase.PruneTasksInput{OlderThan: age, DryRun: true})
			if err != nil {
				return err
			}
			if len(preview.DeletedTasks) == 0 {
				_, _ = fmt.Fprintln(w, "Nothing to prune.")
				return nil
			}

			_, _ = fmt.Fprintln(w, "Tasks to be deleted:")
			for _, t := range preview.DeletedTasks {
				_, _ = fmt.Fprintf(w, "  - %s  %s\n", shared.ShortID(t.ID), t.Title)
			}
			_, _ = fmt.Fprintln(w)

			if dryRun {
				_, _ = fmt.Fprintln(w, "Dry run: no changes made.")
				return nil
			}

			if !yes {
				_, _ = fmt.Fprint(w, "Are you sure you want to delete these tasks? [y/N] ")
				var response string
				if _, scanErr := fmt.Fscanln(cmd.InOrStdin(), &response); scanErr != nil {
					_, _ = fmt.Fprintln(w, "\nAborted.")
					return nil
				}
				if strings.ToLower(response) != "y" {
					_, _ = fmt.Fprintln(w, "Aborted.")
					return nil
				}
			}

			out, err := uc.Execute(cmd.Context(), usecase.PruneTasksInput{OlderThan: age})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "Pruned %d task(s).\n", len(out.DeletedTasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&olderThan, "older-than", "30d", "Minimum age since completion (e.g. 30d, 2w, 12h)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Display only, no deletion")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/spf13/cobra"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		To     string
		Path   string
		Force  bool
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy stored data to another storage backend",
		Long: `Copy every stored key (tasks, profile, settings, onboarding flag and
default view) from the current storage backend into another one.

Keys already holding the same value are skipped. A key holding a different
value stops the migration unless --force is given. The current store is never
modified; switch backends afterwards by setting [storage] backend in the config.

Examples:
  # Move from the JSON file to SQLite
  tick migrate --to sqlite

  # Copy into a specific file
  tick migrate --to json --path ./backup.json

  # Copy into redis, overwriting what is there
  tick migrate --to redis --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			to := strings.ToLower(strings.TrimSpace(opts.To))
			current := c.AppConfig.Storage.Backend

			if isSameStore(c, to, opts.Path) {
				return fmt.Errorf("%w: %s", domain.ErrSameStore, current)
			}

			dest, err := c.OpenStore(cmd.Context(), to, opts.Path)
			if err != nil {
				return err
			}
			defer func() { _ = dest.Close() }()

			out, err := c.MigrateStoreUseCase(dest).Execute(cmd.Context(), usecase.MigrateStoreInput{
				Force:  opts.Force,
				DryRun: opts.DryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Total == 0 {
				_, _ = fmt.Fprintf(w, "Nothing stored in the %s store\n", current)
				return nil
			}

			verb := "Migrated"
			if opts.DryRun {
				verb = "Would migrate"
			}
			summary := fmt.Sprintf("%s %d key(s) from %s to %s", verb, out.Migrated, current, to)
			if out.Skipped > 0 {
				summary += fmt.Sprintf(" (skipped %d identical)", out.Skipped)
			}
			_, _ = fmt.Fprintln(w, summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "Destination backend: json, sqlite, redis")
	cmd.Flags().StringVar(&opts.Path, "path", "", "Destination file for json/sqlite (default: store file in the data directory)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite keys holding a different value")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would be copied without writing")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// isSameStore reports whether backend and path point at the store in use.
func isSameStore(c *app.Container, backend, path string) bool {
	if backend != c.AppConfig.Storage.Backend {
		return false
	}
	switch backend {
	case domain.BackendJSON, domain.BackendSQLite:
		if path == "" {
			path = domain.StorePath(c.Config.DataDir, backend)
		}
		return filepath.Clean(path) == filepath.Clean(c.Config.StorePath)
	default:
		return true
	}
}

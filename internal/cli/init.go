package cli

import (
	"fmt"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var in usecase.CompleteOnboardingInput

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up your profile",
		Long: `Complete the first-run setup.

Stores the profile and marks onboarding as done. Fields that are not given
keep their current value. The email must look like an address.

Examples:
  tick init --name "Ada Lovelace" --email ada@example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.CompleteOnboardingUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", out.Profile.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Your email address")
	cmd.Flags().StringVar(&in.Bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&in.Avatar, "avatar", "", "Avatar identifier")

	return cmd
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/spf13/cobra"
)

// newProfileCommand creates the profile command.
// Without flags it shows the profile; with flags it updates it.
func newProfileCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name   string
		Email  string
		Bio    string
		Avatar string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		Long: fmt.Sprintf(`Show or update the local user profile.

Available avatars: %s

Examples:
  tick profile
  tick profile --name "Grace Hopper" --avatar female-avatar-1`, strings.Join(domain.Avatars, ", ")),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in usecase.UpdateProfileInput
			if cmd.Flags().Changed("name") {
				in.Name = &opts.Name
			}
			if cmd.Flags().Changed("email") {
				in.Email = &opts.Email
			}
			if cmd.Flags().Changed("bio") {
				in.Bio = &opts.Bio
			}
			if cmd.Flags().Changed("avatar") {
				in.Avatar = &opts.Avatar
			}

			w := cmd.OutOrStdout()
			if in != (usecase.UpdateProfileInput{}) {
				out, err := c.UpdateProfileUseCase().Execute(cmd.Context(), in)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(w, "Profile updated")
				printProfile(w, out.Profile)
				return nil
			}

			out, err := c.ShowProfileUseCase().Execute(cmd.Context(), usecase.ShowProfileInput{})
			if err != nil {
				return err
			}
			if opts.JSON {
				return writeJSON(w, out.Profile)
			}
			printProfile(w, out.Profile)
			if !out.Onboarded {
				_, _ = fmt.Fprintln(w, "\nRun 'tick init' to finish setting up your profile.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "New email address")
	cmd.Flags().StringVar(&opts.Bio, "bio", "", "New bio")
	cmd.Flags().StringVar(&opts.Avatar, "avatar", "", "New avatar")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func printProfile(w io.Writer, p domain.UserProfile) {
	_, _ = fmt.Fprintf(w, "Name:   %s (%s)\n", p.Name, p.Initials())
	_, _ = fmt.Fprintf(w, "Email:  %s\n", p.Email)
	_, _ = fmt.Fprintf(w, "Avatar: %s\n", p.Avatar)
	if p.Bio != "" {
		_, _ = fmt.Fprintf(w, "Bio:    %s\n", p.Bio)
	}
}

package usecase

import (
	"context"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
)

// ShowProfileInput contains the parameters for showing the profile.
type ShowProfileInput struct{}

// ShowProfileOutput contains the stored profile.
type ShowProfileOutput struct {
	Profile   domain.UserProfile
	Onboarded bool
}

// ShowProfile is the use case for displaying the local user profile.
type ShowProfile struct {
	prefs domain.PreferenceRepository
}

// NewShowProfile creates a new ShowProfile use case.
func NewShowProfile(prefs domain.PreferenceRepository) *ShowProfile {
	return &ShowProfile{prefs: prefs}
}

// Execute returns the stored profile.
func (uc *ShowProfile) Execute(_ context.Context, _ ShowProfileInput) (*ShowProfileOutput, error) {
	return &ShowProfileOutput{
		Profile:   uc.prefs.Profile(),
		Onboarded: uc.prefs.OnboardingDone(),
	}, nil
}

// UpdateProfileInput contains the profile fields to change.
// Only non-nil fields will be updated.
type UpdateProfileInput struct {
	Name   *string
	Email  *string
	Bio    *string
	Avatar *string
}

func (in UpdateProfileInput) empty() bool {
	return in.Name == nil && in.Email == nil && in.Bio == nil && in.Avatar == nil
}

// apply returns p with the non-nil fields of in applied.
func (in UpdateProfileInput) apply(p domain.UserProfile) domain.UserProfile {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.Bio != nil {
		p.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Avatar != nil {
		p.Avatar = strings.TrimSpace(*in.Avatar)
	}
	return p
}

// UpdateProfileOutput contains the updated profile.
type UpdateProfileOutput struct {
	Profile domain.UserProfile
}

// UpdateProfile is the use case for editing the local user profile.
type UpdateProfile struct {
	prefs domain.PreferenceRepository
}

// NewUpdateProfile creates a new UpdateProfile use case.
func NewUpdateProfile(prefs domain.PreferenceRepository) *UpdateProfile {
	return &UpdateProfile{prefs: prefs}
}

// Execute validates and stores the changed profile.
func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*UpdateProfileOutput, error) {
	if in.empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	profile := in.apply(uc.prefs.Profile())
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	uc.prefs.SetProfile(ctx, profile)
	return &UpdateProfileOutput{Profile: profile}, nil
}

// CompleteOnboardingInput contains the profile entered during onboarding.
// Empty fields keep the current value.
type CompleteOnboardingInput struct {
	Name   string
	Email  string
	Bio    string
	Avatar string
}

// CompleteOnboardingOutput contains the stored profile.
type CompleteOnboardingOutput struct {
	Profile domain.UserProfile
}

// CompleteOnboarding is the use case for the first-run setup.
// The onboarding flag is only set once the profile is valid.
type CompleteOnboarding struct {
	prefs domain.PreferenceRepository
}

// NewCompleteOnboarding creates a new CompleteOnboarding use case.
func NewCompleteOnboarding(prefs domain.PreferenceRepository) *CompleteOnboarding {
	return &CompleteOnboarding{prefs: prefs}
}

// Execute stores the profile and marks onboarding as done.
func (uc *CompleteOnboarding) Execute(ctx context.Context, in CompleteOnboardingInput) (*CompleteOnboardingOutput, error) {
	profile := uc.prefs.Profile()
	update := UpdateProfileInput{}
	if in.Name != "" {
		update.Name = &in.Name
	}
	if in.Email != "" {
		update.Email = &in.Email
	}
	if in.Bio != "" {
		update.Bio = &in.Bio
	}
	if in.Avatar != "" {
		update.Avatar = &in.Avatar
	}
	profile = update.apply(profile)

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	uc.prefs.SetProfile(ctx, profile)
	uc.prefs.CompleteOnboarding(ctx)
	return &CompleteOnboardingOutput{Profile: profile}, nil
}

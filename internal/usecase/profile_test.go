package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/testutil"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowProfile_Execute(t *testing.T) {
	prefs := testutil.NewMockPreferences()

	out, err := usecase.NewShowProfile(prefs).Execute(context.Background(), usecase.ShowProfileInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), out.Profile)
	assert.False(t, out.Onboarded)
}

func TestUpdateProfile_Execute(t *testing.T) {
	// Setup
	prefs := testutil.NewMockPreferences()
	uc := usecase.NewUpdateProfile(prefs)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.UpdateProfileInput{
		Name:   strPtr(" Ada Lovelace "),
		Avatar: strPtr("female-avatar-2"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out.Profile.Name)
	assert.Equal(t, "female-avatar-2", out.Profile.Avatar)
	assert.Equal(t, domain.DefaultProfile().Email, out.Profile.Email)
	assert.Equal(t, out.Profile, prefs.ProfileV)
}

func TestUpdateProfile_Execute_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		input   usecase.UpdateProfileInput
	}{
		{domain.ErrNoFieldsToUpdate, "no fields", usecase.UpdateProfileInput{}},
		{domain.ErrEmptyName, "empty name", usecase.UpdateProfileInput{Name: strPtr("  ")}},
		{domain.ErrInvalidEmail, "bad email", usecase.UpdateProfileInput{Email: strPtr("not-an-email")}},
		{domain.ErrInvalidAvatar, "bad avatar", usecase.UpdateProfileInput{Avatar: strPtr("robot")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := testutil.NewMockPreferences()

			_, err := usecase.NewUpdateProfile(prefs).Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, prefs.SetCalls)
		})
	}
}

func TestCompleteOnboarding_Execute(t *testing.T) {
	// Setup
	prefs := testutil.NewMockPreferences()
	uc := usecase.NewCompleteOnboarding(prefs)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.CompleteOnboardingInput{
		Name:  "Grace",
		Email: "grace@example.org",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Grace", out.Profile.Name)
	assert.Equal(t, "grace@example.org", prefs.ProfileV.Email)
	assert.Equal(t, domain.DefaultProfile().Bio, prefs.ProfileV.Bio)
	assert.True(t, prefs.Onboarded)
}

func TestCompleteOnboarding_Execute_InvalidEmailKeepsFlag(t *testing.T) {
	prefs := testutil.NewMockPreferences()

	_, err := usecase.NewCompleteOnboarding(prefs).Execute(context.Background(), usecase.CompleteOnboardingInput{
		Name:  "Grace",
		Email: "grace@",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.False(t, prefs.Onboarded)
	assert.Equal(t, domain.DefaultProfile(), prefs.ProfileV)
}

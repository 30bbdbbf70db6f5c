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

func TestShowSettings_Execute(t *testing.T) {
	prefs := testutil.NewMockPreferences()

	out, err := usecase.NewShowSettings(prefs).Execute(context.Background(), usecase.ShowSettingsInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), out.Settings)
}

func TestUpdateSettings_Execute(t *testing.T) {
	// Setup
	prefs := testutil.NewMockPreferences()
	uc := usecase.NewUpdateSettings(prefs)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.UpdateSettingsInput{Key: "appearance.theme", Value: "dark"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, out.Settings.Appearance.Theme)
	assert.Equal(t, domain.ThemeDark, prefs.SettingsV.Appearance.Theme)
	assert.Equal(t, domain.ViewBoard, prefs.View)
}

func TestUpdateSettings_Execute_DefaultViewSyncsRememberedView(t *testing.T) {
	prefs := testutil.NewMockPreferences()

	_, err := usecase.NewUpdateSettings(prefs).Execute(context.Background(), usecase.UpdateSettingsInput{Key: "defaultView", Value: "list"})

	require.NoError(t, err)
	assert.Equal(t, domain.ViewList, prefs.SettingsV.DefaultView)
	assert.Equal(t, domain.ViewList, prefs.View)
}

func TestUpdateSettings_Execute_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		input   usecase.UpdateSettingsInput
	}{
		{domain.ErrUnknownSetting, "unknown key", usecase.UpdateSettingsInput{Key: "language", Value: "en"}},
		{domain.ErrInvalidTheme, "bad theme", usecase.UpdateSettingsInput{Key: "appearance.theme", Value: "neon"}},
		{domain.ErrInvalidDueTime, "bad due time", usecase.UpdateSettingsInput{Key: "defaultDueTime", Value: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := testutil.NewMockPreferences()

			_, err := usecase.NewUpdateSettings(prefs).Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.DefaultSettings(), prefs.SettingsV)
		})
	}
}

func TestResetSettings_Execute(t *testing.T) {
	prefs := testutil.NewMockPreferences()
	prefs.SettingsV.Appearance.CompactMode = true

	out, err := usecase.NewResetSettings(prefs).Execute(context.Background(), usecase.ResetSettingsInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), out.Settings)
	assert.False(t, prefs.SettingsV.Appearance.CompactMode)
}

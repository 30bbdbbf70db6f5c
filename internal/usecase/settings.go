package usecase

import (
	"context"

	"github.com/runoshun/ticktick/internal/domain"
)

// ShowSettingsInput contains the parameters for showing settings.
type ShowSettingsInput struct{}

// ShowSettingsOutput contains the stored settings.
type ShowSettingsOutput struct {
	Settings domain.UserSettings
}

// ShowSettings is the use case for displaying settings.
type ShowSettings struct {
	prefs domain.PreferenceRepository
}

// NewShowSettings creates a new ShowSettings use case.
func NewShowSettings(prefs domain.PreferenceRepository) *ShowSettings {
	return &ShowSettings{prefs: prefs}
}

// Execute returns the stored settings.
func (uc *ShowSettings) Execute(_ context.Context, _ ShowSettingsInput) (*ShowSettingsOutput, error) {
	return &ShowSettingsOutput{Settings: uc.prefs.Settings()}, nil
}

// UpdateSettingsInput contains a single dotted setting assignment.
type UpdateSettingsInput struct {
	Key   string // e.g. "appearance.theme"
	Value string // String form of the new value
}

// UpdateSettingsOutput contains the settings after the change.
type UpdateSettingsOutput struct {
	Settings domain.UserSettings
}

// UpdateSettings is the use case for changing one setting.
type UpdateSettings struct {
	prefs domain.PreferenceRepository
}

// NewUpdateSettings creates a new UpdateSettings use case.
func NewUpdateSettings(prefs domain.PreferenceRepository) *UpdateSettings {
	return &UpdateSettings{prefs: prefs}
}

// Execute applies and stores the setting.
// Changing defaultView also updates the remembered task view.
func (uc *UpdateSettings) Execute(ctx context.Context, in UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings := uc.prefs.Settings()
	previousView := settings.DefaultView
	if err := settings.Set(in.Key, in.Value); err != nil {
		return nil, err
	}

	uc.prefs.SetSettings(ctx, settings)
	if settings.DefaultView != previousView {
		uc.prefs.SetDefaultView(ctx, settings.DefaultView)
	}
	return &UpdateSettingsOutput{Settings: settings}, nil
}

// ResetSettingsInput contains the parameters for resetting settings.
type ResetSettingsInput struct{}

// ResetSettingsOutput contains the default settings now in effect.
type ResetSettingsOutput struct {
	Settings domain.UserSettings
}

// ResetSettings is the use case for restoring default settings.
type ResetSettings struct {
	prefs domain.PreferenceRepository
}

// NewResetSettings creates a new ResetSettings use case.
func NewResetSettings(prefs domain.PreferenceRepository) *ResetSettings {
	return &ResetSettings{prefs: prefs}
}

// Execute restores the defaults.
func (uc *ResetSettings) Execute(ctx context.Context, _ ResetSettingsInput) (*ResetSettingsOutput, error) {
	uc.prefs.ResetSettings(ctx)
	return &ResetSettingsOutput{Settings: uc.prefs.Settings()}, nil
}

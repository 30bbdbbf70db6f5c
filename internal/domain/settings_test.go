package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.True(t, s.Notifications.Email)
	assert.True(t, s.Notifications.Push)
	assert.True(t, s.Notifications.DueDateReminders)
	assert.Equal(t, ThemeSystem, s.Appearance.Theme)
	assert.False(t, s.Appearance.CompactMode)
	assert.Equal(t, ViewBoard, s.DefaultView)
	assert.Equal(t, "17:00", s.DefaultDueTime)
	assert.NoError(t, s.Validate())
}

func TestUserSettings_GetSet(t *testing.T) {
	s := DefaultSettings()

	for _, key := range SettingKeys() {
		_, err := s.Get(key)
		assert.NoError(t, err, key)
	}

	require.NoError(t, s.Set("appearance.theme", "Dark"))
	require.NoError(t, s.Set("notifications.dueDateReminders", "false"))
	require.NoError(t, s.Set("defaultView", "list"))
	require.NoError(t, s.Set("defaultDueTime", "08:30"))

	assert.Equal(t, ThemeDark, s.Appearance.Theme)
	assert.False(t, s.Notifications.DueDateReminders)
	assert.Equal(t, ViewList, s.DefaultView)
	v, err := s.Get("defaultDueTime")
	require.NoError(t, err)
	assert.Equal(t, "08:30", v)
}

func TestUserSettings_SetRejectsInvalid(t *testing.T) {
	s := DefaultSettings()

	assert.ErrorIs(t, s.Set("appearance.theme", "neon"), ErrInvalidTheme)
	assert.ErrorIs(t, s.Set("defaultView", "calendar"), ErrInvalidView)
	assert.ErrorIs(t, s.Set("defaultDueTime", "25:00"), ErrInvalidDueTime)
	assert.ErrorIs(t, s.Set("nope", "x"), ErrUnknownSetting)
	assert.Error(t, s.Set("notifications.push", "maybe"))

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownSetting)

	// Failed updates leave the settings untouched.
	assert.Equal(t, DefaultSettings(), s)
}

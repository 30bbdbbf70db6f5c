package cli

import (
	"encoding/json"
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitCommand(t *testing.T) {
	// Setup
	container, _, prefs := newTestContainer()

	// Execute
	out, err := runCommand(t, newInitCommand(container), "--name", "Ada Lovelace", "--email", "ada@example.com")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Ada Lovelace!")
	assert.True(t, prefs.Onboarded)
	assert.Equal(t, "ada@example.com", prefs.ProfileV.Email)
}

func TestNewInitCommand_InvalidEmail(t *testing.T) {
	container, _, prefs := newTestContainer()

	_, err := runCommand(t, newInitCommand(container), "--name", "Ada", "--email", "not-an-email")

	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.False(t, prefs.Onboarded)
}

func TestNewProfileCommand_Show(t *testing.T) {
	container, _, _ := newTestContainer()

	out, err := runCommand(t, newProfileCommand(container))

	require.NoError(t, err)
	assert.Contains(t, out, "Name:   John Doe (JD)")
	assert.Contains(t, out, "tick init")
}

func TestNewProfileCommand_JSON(t *testing.T) {
	container, _, _ := newTestContainer()

	out, err := runCommand(t, newProfileCommand(container), "--json")

	require.NoError(t, err)
	var p domain.UserProfile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, domain.DefaultProfile(), p)
}

func TestNewProfileCommand_Update(t *testing.T) {
	container, _, prefs := newTestContainer()

	out, err := runCommand(t, newProfileCommand(container), "--name", "Grace Hopper", "--avatar", "female-avatar-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Profile updated")
	assert.Equal(t, "Grace Hopper", prefs.ProfileV.Name)
	assert.Equal(t, "female-avatar-1", prefs.ProfileV.Avatar)
}

func TestNewProfileCommand_UpdateInvalidAvatar(t *testing.T) {
	container, _, prefs := newTestContainer()

	_, err := runCommand(t, newProfileCommand(container), "--avatar", "robot")

	assert.ErrorIs(t, err, domain.ErrInvalidAvatar)
	assert.Equal(t, domain.DefaultProfile(), prefs.ProfileV)
}

func TestNewSettingsCommand_Show(t *testing.T) {
	container, _, _ := newTestContainer()

	out, err := runCommand(t, newSettingsCommand(container))

	require.NoError(t, err)
	for _, key := range domain.SettingKeys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "17:00")
}

func TestNewSettingsCommand_SetAndReset(t *testing.T) {
	// Setup
	container, _, prefs := newTestContainer()

	// Execute: set
	out, err := runCommand(t, newSettingsCommand(container), "set", "appearance.theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Set appearance.theme = dark")
	assert.Equal(t, domain.ThemeDark, prefs.SettingsV.Appearance.Theme)

	// Execute: defaultView also updates the remembered view
	_, err = runCommand(t, newSettingsCommand(container), "set", "defaultView", "list")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewList, prefs.View)

	// Execute: reset
	out, err = runCommand(t, newSettingsCommand(container), "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings reset to defaults")
	assert.Equal(t, domain.DefaultSettings(), prefs.SettingsV)
}

func TestNewSettingsCommand_SetInvalid(t *testing.T) {
	container, _, prefs := newTestContainer()

	_, err := runCommand(t, newSettingsCommand(container), "set", "appearance.theme", "neon")
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)

	_, err = runCommand(t, newSettingsCommand(container), "set", "nope", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)

	assert.Equal(t, domain.DefaultSettings(), prefs.SettingsV)
}

package domain

import (
	"strconv"
	"strings"
)

// Theme selects the color palette.
type Theme string

// Valid themes.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid returns true if the theme is a known value.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// View selects how task collections are laid out.
type View string

// Valid views.
const (
	ViewBoard View = "board"
	ViewList  View = "list"
)

// IsValid returns true if the view is a known value.
func (v View) IsValid() bool {
	return v == ViewBoard || v == ViewList
}

// NotificationSettings controls which reminders are produced.
type NotificationSettings struct {
	Email            bool `json:"email"`
	Push             bool `json:"push"`
	DueDateReminders bool `json:"dueDateReminders"`
}

// AppearanceSettings controls presentation.
type AppearanceSettings struct {
	Theme       Theme `json:"theme"`
	CompactMode bool  `json:"compactMode"`
}

// UserSettings is the locally stored preference set.
type UserSettings struct {
	Notifications  NotificationSettings `json:"notifications"`
	Appearance     AppearanceSettings   `json:"appearance"`
	DefaultView    View                 `json:"defaultView"`
	DefaultDueTime string               `json:"defaultDueTime"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() UserSettings {
	return UserSettings{
		Notifications: NotificationSettings{
			Email:            true,
			Push:             true,
			DueDateReminders: true,
		},
		Appearance: AppearanceSettings{
			Theme:       ThemeSystem,
			CompactMode: false,
		},
		DefaultView:    ViewBoard,
		DefaultDueTime: DefaultDueTime,
	}
}

// Validate checks enum fields and the due time format.
func (s UserSettings) Validate() error {
	if !s.Appearance.Theme.IsValid() {
		return ErrInvalidTheme
	}
	if !s.DefaultView.IsValid() {
		return ErrInvalidView
	}
	if _, _, err := ParseDueTime(s.DefaultDueTime); err != nil {
		return err
	}
	return nil
}

// SettingKeys lists the dotted keys accepted by Set, in display order.
func SettingKeys() []string {
	return []string{
		"notifications.email",
		"notifications.push",
		"notifications.dueDateReminders",
		"appearance.theme",
		"appearance.compactMode",
		"defaultView",
		"defaultDueTime",
	}
}

// Get returns the string form of a dotted setting key.
func (s UserSettings) Get(key string) (string, error) {
	switch key {
	case "notifications.email":
		return strconv.FormatBool(s.Notifications.Email), nil
	case "notifications.push":
		return strconv.FormatBool(s.Notifications.Push), nil
	case "notifications.dueDateReminders":
		return strconv.FormatBool(s.Notifications.DueDateReminders), nil
	case "appearance.theme":
		return string(s.Appearance.Theme), nil
	case "appearance.compactMode":
		return strconv.FormatBool(s.Appearance.CompactMode), nil
	case "defaultView":
		return string(s.DefaultView), nil
	case "defaultDueTime":
		return s.DefaultDueTime, nil
	}
	return "", ErrUnknownSetting
}

// Set updates a dotted setting key from its string form and validates the result.
func (s *UserSettings) Set(key, value string) error {
	next := *s
	value = strings.TrimSpace(value)

	var err error
	switch key {
	case "notifications.email":
		next.Notifications.Email, err = strconv.ParseBool(value)
	case "notifications.push":
		next.Notifications.Push, err = strconv.ParseBool(value)
	case "notifications.dueDateReminders":
		next.Notifications.DueDateReminders, err = strconv.ParseBool(value)
	case "appearance.theme":
		next.Appearance.Theme = Theme(strings.ToLower(value))
	case "appearance.compactMode":
		next.Appearance.CompactMode, err = strconv.ParseBool(value)
	case "defaultView":
		next.DefaultView = View(strings.ToLower(value))
	case "defaultDueTime":
		next.DefaultDueTime = value
	default:
		return ErrUnknownSetting
	}
	if err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

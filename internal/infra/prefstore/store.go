// Package prefstore keeps the local user's profile and settings, persisted
// under their own keys of a KeyValueStore.
package prefstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/runoshun/ticktick/internal/domain"
)

const logCategory = "prefs"

// Store implements domain.PreferenceRepository.
// Values are read once by Load and flushed on every change.
// Fields are ordered to minimize memory padding.
type Store struct {
	kv          domain.KeyValueStore
	logger      domain.Logger
	profile     domain.UserProfile
	settings    domain.UserSettings
	defaultView domain.View
	mu          sync.RWMutex
	onboarded   bool
}

// New creates a Store holding the defaults until Load is called.
func New(kv domain.KeyValueStore, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{
		kv:          kv,
		logger:      logger,
		profile:     domain.DefaultProfile(),
		settings:    domain.DefaultSettings(),
		defaultView: domain.ViewBoard,
	}
}

// Load reads every preference key. Missing keys keep their defaults;
// malformed values and read failures are logged and replaced by defaults.
// Only context cancellation is returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = domain.DefaultProfile()
	s.settings = domain.DefaultSettings()
	s.onboarded = false
	s.defaultView = domain.ViewBoard

	read := func(key string) (string, bool) {
		raw, found, err := s.kv.Get(ctx, key)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn("", logCategory, fmt.Sprintf("read %s failed, using defaults: %v", key, err))
			}
			return "", false
		}
		return raw, found
	}

	if raw, ok := read(domain.KeyUserProfile); ok {
		var p domain.UserProfile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.logger.Warn("", logCategory, fmt.Sprintf("malformed %s, using defaults: %v", domain.KeyUserProfile, err))
		} else {
			s.profile = p
		}
	}

	if raw, ok := read(domain.KeyUserSettings); ok {
		settings := domain.DefaultSettings()
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			s.logger.Warn("", logCategory, fmt.Sprintf("malformed %s, using defaults: %v", domain.KeyUserSettings, err))
		} else if err := settings.Validate(); err != nil {
			s.logger.Warn("", logCategory, fmt.Sprintf("invalid %s, using defaults: %v", domain.KeyUserSettings, err))
		} else {
			s.settings = settings
		}
	}

	if raw, ok := read(domain.KeyOnboardingComplete); ok {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			s.logger.Warn("", logCategory, fmt.Sprintf("malformed %s %q, using false", domain.KeyOnboardingComplete, raw))
		}
		s.onboarded = done
	}

	if raw, ok := read(domain.KeyDefaultTaskView); ok {
		view := domain.View(raw)
		if view.IsValid() {
			s.defaultView = view
		} else {
			s.logger.Warn("", logCategory, fmt.Sprintf("unknown %s %q, using board", domain.KeyDefaultTaskView, raw))
		}
	}

	return ctx.Err()
}

// Profile returns the stored profile.
func (s *Store) Profile() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile replaces the profile and flushes it.
func (s *Store) SetProfile(ctx context.Context, p domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.writeJSON(ctx, domain.KeyUserProfile, p)
}

// Settings returns the stored settings.
func (s *Store) Settings() domain.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the settings and flushes them.
func (s *Store) SetSettings(ctx context.Context, settings domain.UserSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.writeJSON(ctx, domain.KeyUserSettings, settings)
}

// ResetSettings restores and flushes the default settings.
func (s *Store) ResetSettings(ctx context.Context) {
	s.SetSettings(ctx, domain.DefaultSettings())
}

// OnboardingDone reports whether onboarding was completed.
func (s *Store) OnboardingDone() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded
}

// CompleteOnboarding records that onboarding was completed.
func (s *Store) CompleteOnboarding(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboarded = true
	s.write(ctx, domain.KeyOnboardingComplete, strconv.FormatBool(true))
}

// DefaultView returns the stored task view.
func (s *Store) DefaultView() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultView
}

// SetDefaultView replaces the task view and flushes it as a bare string.
func (s *Store) SetDefaultView(ctx context.Context, v domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultView = v
	s.write(ctx, domain.KeyDefaultTaskView, string(v))
}

// writeJSON marshals v and writes it under key. Callers hold s.mu.
func (s *Store) writeJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("", logCategory, fmt.Sprintf("marshal %s: %v", key, err))
		return
	}
	s.write(ctx, key, string(data))
}

// write flushes one key. Failures are logged; the in-memory value is kept.
func (s *Store) write(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.logger.Error("", logCategory, fmt.Sprintf("write %s: %v", key, err))
	}
}

// Ensure Store implements PreferenceRepository.
var _ domain.PreferenceRepository = (*Store)(nil)

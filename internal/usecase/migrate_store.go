package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/ticktick/internal/domain"
)

// MigrateStoreInput contains parameters for MigrateStore.
type MigrateStoreInput struct {
	// Force overwrites destination keys that hold a different value.
	Force bool

	// DryRun reports what would be copied without writing.
	DryRun bool
}

// MigrateStoreOutput contains migration results.
type MigrateStoreOutput struct {
	Total    int // Keys present in the source
	Migrated int // Keys written (or that would be written)
	Skipped  int // Keys already identical in the destination
}

// MigrateStore copies every persisted key from one key-value store to another.
type MigrateStore struct {
	source domain.KeyValueStore
	dest   domain.KeyValueStore
}

// NewMigrateStore creates a new MigrateStore use case.
func NewMigrateStore(source, dest domain.KeyValueStore) *MigrateStore {
	return &MigrateStore{source: source, dest: dest}
}

// Execute copies the persisted layout key by key.
// Identical destination values are skipped; differing ones fail the
// migration before anything is written unless Force is set.
func (uc *MigrateStore) Execute(ctx context.Context, in MigrateStoreInput) (*MigrateStoreOutput, error) {
	if uc.source == nil || uc.dest == nil {
		return nil, errors.New("source or destination store is nil")
	}

	type entry struct {
		key, value string
	}
	var pending []entry

	out := &MigrateStoreOutput{}
	for _, key := range domain.PersistedKeys() {
		value, ok, err := uc.source.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", key, err)
		}
		if !ok {
			continue
		}
		out.Total++

		existing, found, err := uc.dest.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read destination %s: %w", key, err)
		}
		if found && existing == value {
			out.Skipped++
			continue
		}
		if found && !in.Force {
			return nil, fmt.Errorf("%w: %s", domain.ErrMigrationConflict, key)
		}
		pending = append(pending, entry{key: key, value: value})
	}

	out.Migrated = len(pending)
	if in.DryRun {
		return out, nil
	}

	for _, e := range pending {
		if err := uc.dest.Set(ctx, e.key, e.value); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", e.key, err)
		}
	}
	return out, nil
}

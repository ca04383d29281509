package database

import (
	"context"

	"github.com/akyairhashvil/cantieri/internal/store"
)

// SnapshotRepository stores the whole scheduling state.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snap store.Snapshot) error
	LoadSnapshot(ctx context.Context) (store.Snapshot, bool, error)
}

// SettingsRepository stores user preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SnapshotRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)

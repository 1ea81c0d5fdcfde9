package settings

import "context"

type SettingsRepository interface {
	// Get returns the single settings row, or ErrSettingsNotFound when none
	// has been saved yet.
	Get(ctx context.Context) (CompanySettings, error)
	Upsert(ctx context.Context, s CompanySettings) (CompanySettings, error)
}

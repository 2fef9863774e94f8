package port

//go:generate mockgen -source=preference_store.go -destination=storemocks/mock_preference_store.go -package=storemocks

import "context"

// PreferenceStore is the local key-value store holding UI preferences.
type PreferenceStore interface {
	// Get returns the value stored under key and whether it was present.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

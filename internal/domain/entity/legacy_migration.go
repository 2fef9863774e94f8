package entity

// LegacyMigration describes the store mutations needed to retire the
// legacy auto-switch flag.
type LegacyMigration struct {
	// RemoveLegacyKey is always true: the legacy key never survives a read.
	RemoveLegacyKey bool

	// PersistTheme is the theme to write, or nil when nothing is written.
	PersistTheme *Theme

	// Outcome is ThemeSourceSystem when the flag was set, empty otherwise.
	Outcome ThemeSource
}

// Migrated reports whether the legacy flag produced a theme.
func (m LegacyMigration) Migrated() bool {
	return m.Outcome != ""
}

// ParseLegacyBool reads a boolean stored by the old preference helper.
// "1"/"true" and "0"/"false" are recognized; anything else yields def.
func ParseLegacyBool(value string, present bool, def bool) bool {
	if !present {
		return def
	}
	switch value {
	case "1", "true":
		return true
	case "0", "false":
		return false
	default:
		return def
	}
}

// PlanLegacyMigration computes the migration for the current legacy value.
// It is idempotent: once the key is gone it plans a bare removal.
func PlanLegacyMigration(legacyValue string, present bool) LegacyMigration {
	plan := LegacyMigration{RemoveLegacyKey: true}
	if !ParseLegacyBool(legacyValue, present, false) {
		return plan
	}
	system := ThemeSystem
	plan.PersistTheme = &system
	plan.Outcome = ThemeSourceSystem
	return plan
}

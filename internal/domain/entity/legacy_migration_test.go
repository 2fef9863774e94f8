package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanLegacyMigration(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		present     bool
		wantMigrate bool
	}{
		{name: "absent", present: false},
		{name: "true literal", value: "true", present: true, wantMigrate: true},
		{name: "one", value: "1", present: true, wantMigrate: true},
		{name: "false literal", value: "false", present: true},
		{name: "zero", value: "0", present: true},
		{name: "garbage", value: "yes please", present: true},
		{name: "empty", value: "", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanLegacyMigration(tt.value, tt.present)

			assert.True(t, plan.RemoveLegacyKey, "legacy key is always removed")
			assert.Equal(t, tt.wantMigrate, plan.Migrated())

			if tt.wantMigrate {
				require.NotNil(t, plan.PersistTheme)
				assert.Equal(t, ThemeSystem, *plan.PersistTheme)
				assert.Equal(t, ThemeSourceSystem, plan.Outcome)
			} else {
				assert.Nil(t, plan.PersistTheme)
				assert.Empty(t, plan.Outcome)
			}
		})
	}
}

func TestParseLegacyBool_Default(t *testing.T) {
	assert.True(t, ParseLegacyBool("", false, true))
	assert.True(t, ParseLegacyBool("maybe", true, true))
	assert.False(t, ParseLegacyBool("0", true, true))
}

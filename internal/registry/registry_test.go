package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-service/internal/model"
)

func TestRegistryRules(t *testing.T) {
	t.Parallel()

	reg := New()

	rules := reg.Rules()
	require.NotEmpty(t, rules)

	seen := make(map[model.InterventionType]struct{})
	for _, rule := range rules {
		_, dup := seen[rule.Type]
		require.False(t, dup, "duplicate type %s", rule.Type)
		seen[rule.Type] = struct{}{}

		assert.NotEmpty(t, rule.DisplayName)
		if rule.RequiresCategory {
			assert.NotEmpty(t, rule.Categories,
				"type %s requires a category but enumerates none", rule.Type)
		}
	}

	rule, ok := reg.Rule(TypeBatterySwap)
	require.True(t, ok)
	assert.False(t, rule.Repeatable)
	assert.False(t, rule.Combinable)

	_, ok = reg.Rule(model.InterventionType("teleportation"))
	assert.False(t, ok)
}

func TestRegistryAllowsCategory(t *testing.T) {
	t.Parallel()

	reg := New()

	rule, ok := reg.Rule(TypeMaintenance)
	require.True(t, ok)

	assert.True(t, rule.AllowsCategory(CategoryPreventive))
	assert.True(t, rule.AllowsCategory(CategoryCorrective))
	assert.False(t, rule.AllowsCategory(""))
	assert.False(t, rule.AllowsCategory("cosmetic"))
}

func TestRegistryAvailableTypes(t *testing.T) {
	t.Parallel()

	reg := New()

	type testCase struct {
		name     string
		existing []model.InterventionType
		want     []model.InterventionType
	}

	tests := []testCase{
		{
			name:     "empty work order offers every type",
			existing: nil,
			want: []model.InterventionType{
				TypeMaintenance, TypeInspection, TypeBatterySwap, TypeWindAudit,
			},
		},
		{
			name:     "repeatable type stays available",
			existing: []model.InterventionType{TypeMaintenance},
			want: []model.InterventionType{
				TypeMaintenance, TypeInspection, TypeBatterySwap, TypeWindAudit,
			},
		},
		{
			name:     "non-repeatable type is excluded once present",
			existing: []model.InterventionType{TypeWindAudit},
			want: []model.InterventionType{
				TypeMaintenance, TypeInspection, TypeBatterySwap,
			},
		},
		{
			name:     "non-combinable type blocks everything",
			existing: []model.InterventionType{TypeBatterySwap},
			want:     nil,
		},
		{
			name: "non-combinable type blocks regardless of what else is present",
			existing: []model.InterventionType{
				TypeMaintenance, TypeBatterySwap, TypeMaintenance,
			},
			want: nil,
		},
		{
			name: "maintenance, wind audit, maintenance again stays open",
			existing: []model.InterventionType{
				TypeMaintenance, TypeWindAudit, TypeMaintenance,
			},
			want: []model.InterventionType{
				TypeMaintenance, TypeInspection, TypeBatterySwap,
			},
		},
		{
			name:     "unknown types are ignored",
			existing: []model.InterventionType{"retired_type"},
			want: []model.InterventionType{
				TypeMaintenance, TypeInspection, TypeBatterySwap, TypeWindAudit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := reg.AvailableTypes(tt.existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Replays the rule scenarios end to end: each addition must be offered by
// AvailableTypes computed before it.
func TestRegistryAdditionSequences(t *testing.T) {
	t.Parallel()

	reg := New()

	contains := func(types []model.InterventionType, t model.InterventionType) bool {
		for _, x := range types {
			if x == t {
				return true
			}
		}
		return false
	}

	t.Run("battery swap first blocks maintenance", func(t *testing.T) {
		t.Parallel()

		existing := []model.InterventionType{TypeBatterySwap}
		assert.False(t, contains(reg.AvailableTypes(existing), TypeMaintenance))
	})

	t.Run("maintenance, wind audit, second maintenance all allowed", func(t *testing.T) {
		t.Parallel()

		var existing []model.InterventionType
		for _, next := range []model.InterventionType{
			TypeMaintenance, TypeWindAudit, TypeMaintenance,
		} {
			require.True(t, contains(reg.AvailableTypes(existing), next),
				"%s should be addable to %v", next, existing)
			existing = append(existing, next)
		}

		assert.False(t, contains(reg.AvailableTypes(existing), TypeWindAudit),
			"wind audit is not repeatable")
	})
}

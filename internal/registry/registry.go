// Package registry holds the static rule set governing which intervention
// types may be combined on one work order. The registry is built once at
// process start and never mutated, so every lookup is safe without locking
// and AvailableTypes stays a pure function.
package registry

import (
	"github.com/you-humble/field-service/internal/model"
)

const (
	TypeMaintenance model.InterventionType = "maintenance"
	TypeInspection  model.InterventionType = "inspection"
	TypeBatterySwap model.InterventionType = "battery_swap"
	TypeWindAudit   model.InterventionType = "wind_audit"
)

const (
	CategoryPreventive = "preventive"
	CategoryCorrective = "corrective"
)

// Rule describes one intervention type.
type Rule struct {
	Type        model.InterventionType
	DisplayName string
	// Repeatable: may this type appear more than once on one work order.
	Repeatable bool
	// Combinable: may this type coexist with other types. A non-combinable
	// type, once present, blocks all further additions.
	Combinable bool
	// RequiresCategory: submissions must carry one of Categories.
	RequiresCategory bool
	Categories       []string
	// TracksParts: does this type participate in parts accounting.
	TracksParts bool
}

func (r Rule) AllowsCategory(category string) bool {
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Registry struct {
	rules map[model.InterventionType]Rule
	order []model.InterventionType
}

// New builds the registry of intervention types. Changing cardinality or
// combination rules is a registry version bump, not a runtime operation.
func New() *Registry {
	r := &Registry{rules: make(map[model.InterventionType]Rule)}

	r.register(Rule{
		Type:             TypeMaintenance,
		DisplayName:      "Maintenance visit",
		Repeatable:       true,
		Combinable:       true,
		RequiresCategory: true,
		Categories:       []string{CategoryPreventive, CategoryCorrective},
		TracksParts:      true,
	})
	r.register(Rule{
		Type:        TypeInspection,
		DisplayName: "Inspection",
		Repeatable:  true,
		Combinable:  true,
		TracksParts: false,
	})
	r.register(Rule{
		Type:        TypeBatterySwap,
		DisplayName: "Battery replacement",
		Repeatable:  false,
		Combinable:  false,
		TracksParts: true,
	})
	r.register(Rule{
		Type:        TypeWindAudit,
		DisplayName: "Wind audit",
		Repeatable:  false,
		Combinable:  true,
		TracksParts: false,
	})

	return r
}

func (r *Registry) register(rule Rule) {
	r.rules[rule.Type] = rule
	r.order = append(r.order, rule.Type)
}

// Rule returns the rule for the given type.
func (r *Registry) Rule(t model.InterventionType) (Rule, bool) {
	rule, ok := r.rules[t]
	return rule, ok
}

// Rules returns all rules in registration order.
func (r *Registry) Rules() []Rule {
	rules := make([]Rule, 0, len(r.order))
	for _, t := range r.order {
		rules = append(rules, r.rules[t])
	}
	return rules
}

// AvailableTypes returns the subset of registered types that may legally be
// added next, given the types already present on a work order:
//
//  1. a type already present with Repeatable=false is excluded;
//  2. if any present type has Combinable=false, nothing may be added;
//  3. otherwise no further exclusions apply.
//
// Pure and total: unknown existing types are ignored, the function never
// fails. This is the single source of truth for both rendering choices and
// server-side validation of submissions.
func (r *Registry) AvailableTypes(existing []model.InterventionType) []model.InterventionType {
	present := make(map[model.InterventionType]struct{}, len(existing))
	for _, t := range existing {
		rule, ok := r.rules[t]
		if !ok {
			continue
		}
		if !rule.Combinable {
			return nil
		}
		present[t] = struct{}{}
	}

	available := make([]model.InterventionType, 0, len(r.order))
	for _, t := range r.order {
		if _, ok := present[t]; ok && !r.rules[t].Repeatable {
			continue
		}
		available = append(available, t)
	}

	return available
}

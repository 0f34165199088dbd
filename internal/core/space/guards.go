// Package space contains the pure business logic for space operations.
package space

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// Types is the closed set of accepted space types, mirrored by the
// CHECK constraint on spaces.type.
var Types = []string{"enclosure", "grazing_field", "other"}

// ValidType reports whether s is one of the accepted space types.
func ValidType(s string) bool {
	for _, t := range Types {
		if s == t {
			return true
		}
	}
	return false
}

// CreateSpaceContext provides context for space creation guards.
type CreateSpaceContext struct {
	Name     string
	Type     string
	Capacity int
}

// CanCreateSpace evaluates whether a space can be created.
// Rules:
// - Name must be non-empty
// - Type must be one of the accepted literals
// - Capacity must not be negative
func CanCreateSpace(ctx CreateSpaceContext) GuardResult {
	if ctx.Name == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "space name is required",
		}
	}

	if !ValidType(ctx.Type) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("value '%s' is not a valid space type (expected enclosure, grazing_field or other)", ctx.Type),
		}
	}

	if ctx.Capacity < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "capacity cannot be negative",
		}
	}

	return GuardResult{Allowed: true}
}

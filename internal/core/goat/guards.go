// Package goat contains the pure business logic for goat operations.
// Guards are pure functions that evaluate preconditions without side effects.
package goat

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

// Genders is the closed set of accepted gender values. The schema enforces
// the same set with a CHECK constraint; guards reject before the write.
var Genders = []string{"Male", "Female"}

// KnownBreeds lists the named breeds. Values outside this list are still
// accepted and stored as free text, matching the lookup behavior of the
// herd records this store was built for.
var KnownBreeds = []string{
	"Beetal",
	"Jamunapari",
	"Barbari",
	"Sirohi",
	"Osmanabadi",
	"BlackBengal",
	"Kutchi",
	"Kaghani",
	"Chegu",
	"Jakhrana",
}

// ValidGender reports whether s is one of the accepted gender literals.
func ValidGender(s string) bool {
	for _, g := range Genders {
		if s == g {
			return true
		}
	}
	return false
}

// KnownBreed reports whether s is one of the named breeds.
func KnownBreed(s string) bool {
	for _, b := range KnownBreeds {
		if s == b {
			return true
		}
	}
	return false
}

// CreateGoatContext provides context for goat creation guards.
type CreateGoatContext struct {
	Name      string
	Breed     string
	Gender    string
	Offspring int
	Cost      float64
	Weight    float64
}

// CanCreateGoat evaluates whether a goat can be created.
// Rules:
// - Name and breed must be non-empty
// - Gender must be one of the accepted literals
// - Offspring, cost and weight must not be negative
func CanCreateGoat(ctx CreateGoatContext) GuardResult {
	if ctx.Name == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "goat name is required",
		}
	}

	if ctx.Breed == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "goat breed is required",
		}
	}

	if !ValidGender(ctx.Gender) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("value '%s' is not a valid gender (expected Male or Female)", ctx.Gender),
		}
	}

	if ctx.Offspring < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "offspring count cannot be negative",
		}
	}

	if ctx.Cost < 0 || ctx.Weight < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "cost and weight cannot be negative",
		}
	}

	return GuardResult{Allowed: true}
}

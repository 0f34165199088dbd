package goat

import "testing"

func TestCanCreateGoat(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateGoatContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can create goat with valid fields",
			ctx: CreateGoatContext{
				Name:   "Daisy",
				Breed:  "Beetal",
				Gender: "Female",
				Cost:   180,
				Weight: 55.5,
			},
			wantAllowed: true,
		},
		{
			name: "can create goat with unknown breed (free text)",
			ctx: CreateGoatContext{
				Name:   "Scout",
				Breed:  "Boer",
				Gender: "Male",
			},
			wantAllowed: true,
		},
		{
			name: "cannot create goat without name",
			ctx: CreateGoatContext{
				Breed:  "Beetal",
				Gender: "Female",
			},
			wantAllowed: false,
			wantReason:  "goat name is required",
		},
		{
			name: "cannot create goat without breed",
			ctx: CreateGoatContext{
				Name:   "Daisy",
				Gender: "Female",
			},
			wantAllowed: false,
			wantReason:  "goat breed is required",
		},
		{
			name: "cannot create goat with invalid gender",
			ctx: CreateGoatContext{
				Name:   "Daisy",
				Breed:  "Beetal",
				Gender: "Unknown",
			},
			wantAllowed: false,
			wantReason:  "value 'Unknown' is not a valid gender (expected Male or Female)",
		},
		{
			name: "cannot create goat with lowercase gender",
			ctx: CreateGoatContext{
				Name:   "Daisy",
				Breed:  "Beetal",
				Gender: "female",
			},
			wantAllowed: false,
			wantReason:  "value 'female' is not a valid gender (expected Male or Female)",
		},
		{
			name: "cannot create goat with negative offspring",
			ctx: CreateGoatContext{
				Name:      "Daisy",
				Breed:     "Beetal",
				Gender:    "Female",
				Offspring: -1,
			},
			wantAllowed: false,
			wantReason:  "offspring count cannot be negative",
		},
		{
			name: "cannot create goat with negative weight",
			ctx: CreateGoatContext{
				Name:   "Daisy",
				Breed:  "Beetal",
				Gender: "Female",
				Weight: -3,
			},
			wantAllowed: false,
			wantReason:  "cost and weight cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateGoat(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidGender(t *testing.T) {
	if !ValidGender("Male") || !ValidGender("Female") {
		t.Error("expected Male and Female to be valid genders")
	}
	for _, bad := range []string{"", "male", "FEMALE", "Other"} {
		if ValidGender(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestKnownBreed(t *testing.T) {
	if !KnownBreed("Jamunapari") {
		t.Error("expected Jamunapari to be a known breed")
	}
	if KnownBreed("Boer") {
		t.Error("expected Boer to be unknown (stored as free text)")
	}
}

func TestGuardResultError(t *testing.T) {
	if err := (GuardResult{Allowed: true}).Error(); err != nil {
		t.Errorf("expected nil error for allowed result, got %v", err)
	}
	err := (GuardResult{Allowed: false, Reason: "goat name is required"}).Error()
	if err == nil || err.Error() != "goat name is required" {
		t.Errorf("unexpected error: %v", err)
	}
}

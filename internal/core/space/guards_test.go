package space

import "testing"

func TestCanCreateSpace(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateSpaceContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can create enclosure",
			ctx: CreateSpaceContext{
				Name:     "North enclosure",
				Type:     "enclosure",
				Capacity: 25,
			},
			wantAllowed: true,
		},
		{
			name: "can create grazing field",
			ctx: CreateSpaceContext{
				Name: "River paddock",
				Type: "grazing_field",
			},
			wantAllowed: true,
		},
		{
			name: "can create other space",
			ctx: CreateSpaceContext{
				Name: "Quarantine pen",
				Type: "other",
			},
			wantAllowed: true,
		},
		{
			name: "cannot create space without name",
			ctx: CreateSpaceContext{
				Type: "enclosure",
			},
			wantAllowed: false,
			wantReason:  "space name is required",
		},
		{
			name: "cannot create space with invalid type",
			ctx: CreateSpaceContext{
				Name: "Barn",
				Type: "barn",
			},
			wantAllowed: false,
			wantReason:  "value 'barn' is not a valid space type (expected enclosure, grazing_field or other)",
		},
		{
			name: "cannot create space with negative capacity",
			ctx: CreateSpaceContext{
				Name:     "North enclosure",
				Type:     "enclosure",
				Capacity: -5,
			},
			wantAllowed: false,
			wantReason:  "capacity cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateSpace(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidType(t *testing.T) {
	for _, good := range Types {
		if !ValidType(good) {
			t.Errorf("expected %q to be valid", good)
		}
	}
	for _, bad := range []string{"", "Enclosure", "field", "pasture"} {
		if ValidType(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

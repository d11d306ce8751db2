package workload

import "testing"

// TestParseRounding tests rounding mode name parsing.
func TestParseRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Rounding
		wantErr bool
	}{
		{name: "half-away", input: "half-away", want: RoundHalfAway},
		{name: "half-even", input: "half-even", want: RoundHalfEven},
		{name: "case insensitive", input: " Half-Even ", want: RoundHalfEven},
		{name: "unknown", input: "banker", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRounding(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRoundingRound tests both modes at and away from the halfway point.
func TestRoundingRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		halfAway float64
		halfEven float64
	}{
		{0.5, 1, 0},
		{1.5, 2, 2},
		{2.5, 3, 2},
		{-2.5, -3, -2},
		{10.04, 10, 10},
		{7.9077, 8, 8},
		{-11.84, -12, -12},
	}

	for _, tt := range tests {
		if got := RoundHalfAway.Round(tt.in); got != tt.halfAway {
			t.Errorf("half-away Round(%v) = %v, want %v", tt.in, got, tt.halfAway)
		}
		if got := RoundHalfEven.Round(tt.in); got != tt.halfEven {
			t.Errorf("half-even Round(%v) = %v, want %v", tt.in, got, tt.halfEven)
		}
	}
}

// TestRoundingString tests the String method of Rounding.
func TestRoundingString(t *testing.T) {
	t.Parallel()

	if RoundHalfAway.String() != "half-away" {
		t.Errorf("unexpected %q", RoundHalfAway.String())
	}
	if RoundHalfEven.String() != "half-even" {
		t.Errorf("unexpected %q", RoundHalfEven.String())
	}
	if Rounding(9).String() != "unknown" {
		t.Errorf("unexpected %q", Rounding(9).String())
	}
}

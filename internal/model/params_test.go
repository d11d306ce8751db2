package model

import (
	"errors"
	"strconv"
	"testing"
)

// TestNewParams tests parsing of positional model parameters.
func TestNewParams(t *testing.T) {
	t.Parallel()

	t.Run("parses integers", func(t *testing.T) {
		t.Parallel()

		p, err := NewParams("2", "100", "10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Params{T: 2, N: 100, Lines: 10}
		if p != want {
			t.Errorf("got %+v, want %+v", p, want)
		}
	})

	t.Run("accepts negative values", func(t *testing.T) {
		t.Parallel()

		p, err := NewParams("-1", "0", "-5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.T != -1 || p.N != 0 || p.Lines != -5 {
			t.Errorf("unexpected params: %+v", p)
		}
	})

	tests := []struct {
		name      string
		t, n, l   string
		wantParam string
	}{
		{name: "non-numeric t", t: "two", n: "100", l: "10", wantParam: ParamT},
		{name: "non-numeric N", t: "2", n: "1e2", l: "10", wantParam: ParamN},
		{name: "non-numeric n", t: "2", n: "100", l: "", wantParam: ParamLines},
		{name: "float t", t: "2.5", n: "100", l: "10", wantParam: ParamT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewParams(tt.t, tt.n, tt.l)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Param != tt.wantParam {
				t.Errorf("expected param %q, got %q", tt.wantParam, pe.Param)
			}
			if !errors.Is(err, strconv.ErrSyntax) {
				t.Errorf("expected wrapped strconv.ErrSyntax, got %v", pe.Err)
			}
		})
	}
}

// TestParamsRecordCount tests the number of records implied by n.
func TestParamsRecordCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		lines    int
		expected int
	}{
		{-3, 0},
		{0, 0},
		{1, 0},
		{2, 1},
		{10, 9},
	}

	for _, tc := range testCases {
		t.Run(strconv.Itoa(tc.lines), func(t *testing.T) {
			t.Parallel()
			got := Params{T: 1, N: 2, Lines: tc.lines}.RecordCount()
			if got != tc.expected {
				t.Errorf("got %d, expected %d", got, tc.expected)
			}
		})
	}
}

// TestParamsString tests the log representation of Params.
func TestParamsString(t *testing.T) {
	t.Parallel()

	got := Params{T: 2, N: 100, Lines: 10}.String()
	if got != "t=2 N=100 n=10" {
		t.Errorf("unexpected string %q", got)
	}
}

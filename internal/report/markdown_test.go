package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/writedist/internal/model"
)

func TestMarkdownWriterCounts(t *testing.T) {
	t.Parallel()

	t.Run("writes parameters, summary and table", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		n, err := NewMarkdownWriter(&buf, 10).WriteCounts(CountSet{
			Kind:   model.KindAnalytic,
			Params: model.Params{T: 2, N: 100, Lines: 3},
			Records: countsOf(
				model.WriteCountRecord{Index: 1, Count: 1000},
				model.WriteCountRecord{Index: 2, Count: 500},
			),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 records, got %d", n)
		}
		out := buf.String()
		for _, want := range []string{
			"# Analytic Write Counts",
			"Parameter",
			"Total writes: 1,500",
			"Index",
			"500",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\n%s", want, out)
			}
		}
	})

	t.Run("sequence error writes nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		want := &model.DomainError{Model: "zipf", Expr: "ln(N)"}
		_, err := NewMarkdownWriter(&buf, 10).WriteCounts(CountSet{
			Kind:    model.KindZipf,
			Records: failingCounts(want, model.WriteCountRecord{Index: 1, Count: 1}),
		})
		if !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, 10).WriteCounts(CountSet{Kind: model.KindZipf, Records: countsOf()}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "No records") {
			t.Errorf("expected a note about missing records\n%s", buf.String())
		}
	})
}

func TestMarkdownWriterRanks(t *testing.T) {
	t.Parallel()

	t.Run("writes summary, pie chart and table", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		n, err := NewMarkdownWriter(&buf, 2).WriteRanks(sampleRanks())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 3 {
			t.Errorf("expected 3 records, got %d", n)
		}
		out := buf.String()
		for _, want := range []string{
			"# Address Frequency Ranking",
			"Distinct addresses: 3",
			"Total accesses: 6",
			"top 2 addresses account for 83.3%",
			"```mermaid",
			"pie",
			"other",
			"Address",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\n%s", want, out)
			}
		}
	})

	t.Run("no other slice when every rank fits", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, 10).WriteRanks(sampleRanks()); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(buf.String(), "other") {
			t.Errorf("unexpected other slice\n%s", buf.String())
		}
		if !strings.Contains(buf.String(), "100.0%") {
			t.Errorf("expected a 100%% share\n%s", buf.String())
		}
	})

	t.Run("empty ranking", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		n, err := NewMarkdownWriter(&buf, 10).WriteRanks(nil)
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Errorf("expected 0 records, got %d", n)
		}
		if strings.Contains(buf.String(), "mermaid") {
			t.Errorf("unexpected chart for empty ranking\n%s", buf.String())
		}
	})
}

func TestEscapeCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: "0x10", want: "0x10"},
		{in: "a|b", want: `a\|b`},
		{in: "line\r", want: `line\r`},
		{in: "", want: "(empty)"},
	}
	for _, tt := range tests {
		if got := escapeCell(tt.in); got != tt.want {
			t.Errorf("escapeCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChartLabel(t *testing.T) {
	t.Parallel()

	if got := chartLabel(`say "hi"`); got != "say 'hi'" {
		t.Errorf("unexpected label %q", got)
	}
	if got := chartLabel(""); got != "(empty)" {
		t.Errorf("unexpected label %q", got)
	}
}

package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/writedist/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// otherLabel is the pie chart slice that groups the ranks beyond top N.
const otherLabel = "other"

// MarkdownWriter outputs records as a Markdown document for sharing.
// Numbers in the summaries are grouped by thousands. Unlike the text and
// JSON writers it holds every row in memory until the sequence ends,
// since the summary precedes the table.
type MarkdownWriter struct {
	output  io.Writer
	topN    int
	printer *message.Printer
	title   cases.Caser
}

var _ Writer = (*MarkdownWriter)(nil)

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer. topN is the number of ranks shown as their own pie chart slice.
func NewMarkdownWriter(output io.Writer, topN int) *MarkdownWriter {
	if topN < 1 {
		topN = defaultTopN
	}
	return &MarkdownWriter{
		output:  output,
		topN:    topN,
		printer: message.NewPrinter(language.English),
		title:   cases.Title(language.English),
	}
}

// WriteCounts writes the model parameters, a summary and the record table.
// Nothing is written if the sequence yields an error.
func (w *MarkdownWriter) WriteCounts(set CountSet) (int, error) {
	var (
		rows  [][]string
		total int64
	)
	for rec, err := range set.Records {
		if err != nil {
			return 0, err
		}
		rows = append(rows, []string{strconv.Itoa(rec.Index), strconv.FormatInt(rec.Count, 10)})
		total += rec.Count
	}

	md := markdown.NewMarkdown(w.output)
	md.H1(w.title.String(set.Kind.String()) + " Write Counts")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{model.ParamT, strconv.Itoa(set.Params.T)},
			{model.ParamN, strconv.Itoa(set.Params.N)},
			{"n", strconv.Itoa(set.Params.Lines)},
		},
	})
	md.PlainText("")

	md.H2("Summary")
	md.PlainText("")
	md.BulletList(
		w.printer.Sprintf("Records: %d", len(rows)),
		w.printer.Sprintf("Total writes: %d", total),
	)
	md.PlainText("")

	md.H2("Records")
	md.PlainText("")
	if len(rows) == 0 {
		md.Note("No records: n must be at least 2.")
	} else {
		md.Table(markdown.TableSet{
			Header: []string{"Index", "Count"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	return len(rows), md.Build()
}

// WriteRanks writes a summary, a pie chart of the top ranks' share of
// accesses and the ranking table.
func (w *MarkdownWriter) WriteRanks(ranks []model.FrequencyRankRecord) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Address Frequency Ranking")
	md.PlainText("")

	total := model.TotalCount(ranks)
	md.H2("Summary")
	md.PlainText("")
	md.BulletList(
		w.printer.Sprintf("Distinct addresses: %d", len(ranks)),
		w.printer.Sprintf("Total accesses: %d", total),
	)
	md.PlainText("")

	if len(ranks) == 0 {
		md.Tip("The trace is empty.")
		md.PlainText("")
		return 0, md.Build()
	}

	top := min(w.topN, len(ranks))
	md.PlainText(w.printer.Sprintf("The top %d addresses account for %.1f%% of all accesses.",
		top, share(model.TotalCount(ranks[:top]), total)))
	md.PlainText("")
	w.writePieChart(md, ranks, top)

	md.H2("Ranking")
	md.PlainText("")
	rows := make([][]string, len(ranks))
	for i, r := range ranks {
		rows[i] = []string{
			strconv.Itoa(r.Rank),
			strconv.FormatInt(r.Count, 10),
			escapeCell(r.Address),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Count", "Address"},
		Rows:   rows,
	})
	md.PlainText("")

	return len(ranks), md.Build()
}

// writePieChart writes a mermaid pie chart with one slice per top rank
// and one slice for the rest.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, ranks []model.FrequencyRankRecord, top int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Access Share"),
		piechart.WithShowData(true),
	)

	for _, r := range ranks[:top] {
		chart.LabelAndIntValue(chartLabel(r.Address), uint64(r.Count)) //nolint:gosec // counts are positive
	}
	if rest := model.TotalCount(ranks[top:]); rest > 0 {
		chart.LabelAndIntValue(otherLabel, uint64(rest)) //nolint:gosec // counts are positive
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// share returns part as a percentage of total.
func share(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

// escapeCell makes an address safe to place in a table cell.
func escapeCell(s string) string {
	if s == "" {
		return "(empty)"
	}
	return cellReplacer.Replace(s)
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r", `\r`, "\t", `\t`)

// chartLabel makes an address safe to use as a quoted mermaid label.
func chartLabel(s string) string {
	if s == "" {
		return "(empty)"
	}
	return labelReplacer.Replace(s)
}

var labelReplacer = strings.NewReplacer(`"`, "'", "\r", " ", "\t", " ")

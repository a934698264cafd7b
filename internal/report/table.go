package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteSummaryTable renders a tablewriter summary of each Recorder's peak
// metrics, grounded on the teacher's printTable in cmd/benchmark/main.go.
func WriteSummaryTable(w io.Writer, recorders []*Recorder) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Samples", "Max Altitude", "Max Speed"})

	p := message.NewPrinter(language.English)
	for _, r := range recorders {
		_ = table.Append([]string{
			titleCase(r.Name),
			p.Sprintf("%d", len(r.Samples)),
			p.Sprintf("%.1f", r.MaxAltitude()),
			p.Sprintf("%.1f", r.MaxSpeed()),
		})
	}
	_ = table.Render()
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// FormatCount renders n with locale-appropriate thousands separators
// (golang.org/x/text/message), used by the headless bench tool's tick
// counter.
func FormatCount(n int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", n)
}

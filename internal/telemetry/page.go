package telemetry

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// statusPage renders the "/" HTML status page as a templ.Component
// (spec.md §6.6). No .templ source was available to generate from, so
// the component is hand-authored as a templ.ComponentFunc, the same
// functional-component shape `templ generate` itself would emit.
func statusPage(stats StatsSnapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!doctype html>
<html>
<head><title>flightcore</title></head>
<body>
<h1>flightcore</h1>
<table>
<tr><td>entities</td><td>%d</td></tr>
<tr><td>dropped events</td><td>%d</td></tr>
<tr><td>skipped entities</td><td>%d</td></tr>
<tr><td>clamped velocities</td><td>%d</td></tr>
<tr><td>dropped bindings</td><td>%d</td></tr>
</table>
<h2>systems</h2>
<table>
<tr><th>name</th><th>hz</th><th>invocations</th><th>avg us</th></tr>
%s
</table>
</body>
</html>
`, stats.EntityCount, stats.DroppedEvents, stats.SkippedEntities, stats.ClampedVelocities, stats.DroppedBindings, systemRows(stats))
		return err
	})
}

func systemRows(stats StatsSnapshot) string {
	rows := ""
	for _, s := range stats.Systems {
		rows += fmt.Sprintf("<tr><td>%s</td><td>%.1f</td><td>%d</td><td>%.1f</td></tr>\n",
			s.Name, s.FrequencyHz, s.Invocations, s.AvgExecMicros)
	}
	return rows
}

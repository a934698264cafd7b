package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stratobyte/flightcore/internal/report"
	"github.com/stratobyte/flightcore/pkg/math3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TEST: GIVEN a sequence of recorded samples WHEN MaxAltitude/MaxSpeed are queried THEN they report the peak values
func TestRecorder_TracksPeaks(t *testing.T) {
	r := report.NewRecorder("probe")
	r.Record(0, math3.Vector3{Y: 10}, 5)
	r.Record(1, math3.Vector3{Y: 50}, 20)
	r.Record(2, math3.Vector3{Y: 30}, 8)

	assert.Equal(t, 50.0, r.MaxAltitude())
	assert.Equal(t, 20.0, r.MaxSpeed())
}

// TEST: GIVEN an empty Recorder WHEN SaveAltitudePlot is called THEN it returns an error instead of writing a degenerate file
func TestRecorder_SaveAltitudePlot_EmptyErrors(t *testing.T) {
	r := report.NewRecorder("empty")
	err := r.SaveAltitudePlot(filepath.Join(t.TempDir(), "out.svg"))
	assert.Error(t, err)
}

// TEST: GIVEN a populated Recorder WHEN SaveAltitudePlot is called THEN it writes a non-empty SVG file
func TestRecorder_SaveAltitudePlot_Writes(t *testing.T) {
	r := report.NewRecorder("probe")
	r.Record(0, math3.Vector3{Y: 0}, 0)
	r.Record(1, math3.Vector3{Y: 100}, 10)

	path := filepath.Join(t.TempDir(), "altitude.svg")
	require.NoError(t, r.SaveAltitudePlot(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TEST: GIVEN several recorders WHEN WriteSummaryTable runs THEN the output contains each recorder's title-cased name
func TestWriteSummaryTable_IncludesNames(t *testing.T) {
	r1 := report.NewRecorder("racer")
	r1.Record(0, math3.Vector3{Y: 5}, 3)
	r2 := report.NewRecorder("cruiser")
	r2.Record(0, math3.Vector3{Y: 8}, 2)

	var buf bytes.Buffer
	report.WriteSummaryTable(&buf, []*report.Recorder{r1, r2})

	out := buf.String()
	assert.Contains(t, out, "Racer")
	assert.Contains(t, out, "Cruiser")
}

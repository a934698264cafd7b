package telemetry_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stratobyte/flightcore/internal/logging"
	"github.com/stratobyte/flightcore/internal/telemetry"
	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld(4)
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddTransform(id, components.DefaultTransform()))
	r := components.DefaultRenderable()
	r.Visible = true
	require.NoError(t, w.AddRenderable(id, r))
	return w
}

// TEST: GIVEN a world with one renderable entity WHEN GET /snapshot is requested THEN it returns one entity's transform/visibility as JSON (spec.md §6.2)
func TestServer_Snapshot(t *testing.T) {
	logging.Reset()
	log := logging.GetLogger("error")
	w := newTestWorld(t)
	sched := ecs.NewScheduler()

	srv := telemetry.NewServer(w, sched, log)
	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []telemetry.EntitySnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.True(t, got[0].Visible)
	assert.Equal(t, 1.0, got[0].Transform[15])
}

// TEST: GIVEN a world WHEN GET /stats is requested THEN the observability counters and scheduler stats are returned as JSON (spec.md §6.6)
func TestServer_Stats(t *testing.T) {
	logging.Reset()
	log := logging.GetLogger("error")
	w := newTestWorld(t)
	sched := ecs.NewScheduler()

	srv := telemetry.NewServer(w, sched, log)
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got telemetry.StatsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.EntityCount)
}

// TEST: GIVEN a world WHEN GET / is requested THEN it returns a 200 HTML status page
func TestServer_Index(t *testing.T) {
	logging.Reset()
	log := logging.GetLogger("error")
	w := newTestWorld(t)
	sched := ecs.NewScheduler()

	srv := telemetry.NewServer(w, sched, log)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flightcore")
}

package telemetry

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestObserveFrame(t *testing.T) {
	before := testutil.ToFloat64(FramesRendered)
	ObserveFrame(3 * time.Millisecond)
	ObserveFrame(4 * time.Millisecond)
	assert.Equal(t, before+2, testutil.ToFloat64(FramesRendered))
}

func TestHandlerExposesMetrics(t *testing.T) {
	InputEvents.WithLabelValues("key").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `panekit_input_events_total{kind="key"}`)
	assert.Contains(t, string(body), "panekit_frame_duration_seconds")
}

func TestTracerProviderExportsFrames(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var out bytes.Buffer
	tp, err := NewTracerProvider("panekit-test", &out)
	require.NoError(t, err)

	ctx, span := StartFrame(context.Background(), AttrPage.String("Home"))
	AddEvent(ctx, "page changed", AttrEventKind.String("key"))
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, out.String(), `"Name":"frame"`)
	assert.Contains(t, out.String(), "panekit.page")
}

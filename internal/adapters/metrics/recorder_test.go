package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsEventsByTypeAndModule(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.Observe(domain.MetricsEvent{Type: domain.MetricsRequest, Module: domain.AIModuleCRM})
	recorder.Observe(domain.MetricsEvent{Type: domain.MetricsResponse, Module: domain.AIModuleCRM, Latency: 300 * time.Millisecond})
	recorder.Observe(domain.MetricsEvent{Type: domain.MetricsRequest})
	recorder.Observe(domain.MetricsEvent{Type: domain.MetricsError, Latency: time.Second})

	assert.InDelta(t, 1, testutil.ToFloat64(recorder.events.WithLabelValues("request", "crm")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.events.WithLabelValues("response", "crm")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.events.WithLabelValues("error", "none")), 0.001)
	assert.Equal(t, 2, testutil.CollectAndCount(recorder.latency))
}

func TestRecorderWriteText(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.Observe(domain.MetricsEvent{Type: domain.MetricsResponse, Module: domain.AIModuleMarketing, Latency: 120 * time.Millisecond})

	var out bytes.Buffer
	require.NoError(t, recorder.WriteText(&out))
	assert.Contains(t, out.String(), `ppai_ai_events_total{module="marketing",type="response"} 1`)
	assert.Contains(t, out.String(), "ppai_ai_request_duration_seconds_count")
}

func TestRecorderRegistryIsPrivate(t *testing.T) {
	t.Parallel()

	first, second := NewRecorder(), NewRecorder()
	first.Observe(domain.MetricsEvent{Type: domain.MetricsRequest})

	count, err := testutil.GatherAndCount(second.Registry(), "ppai_ai_events_total")
	require.NoError(t, err)
	assert.Zero(t, count)
}

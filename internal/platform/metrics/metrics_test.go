package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.VisitAdded()
	m.VisitAdded()
	m.PhotoUpload(UploadStored)
	m.PhotoUpload(UploadRejected)
	m.PhotoUpload(UploadRejected)
	m.CacheLookup(CacheHit)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.visitsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.photoUploads.WithLabelValues(UploadStored)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.photoUploads.WithLabelValues(UploadRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues(CacheHit)))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.VisitAdded()
		m.PhotoUpload(UploadFailed)
		m.CacheLookup(CacheMiss)
	})
}

func TestMetrics_DoubleRegisterFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

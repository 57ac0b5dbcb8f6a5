package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "workplace-service")

	m.ObserveHTTPRequest("GET", "/api/v1/floors", 200, 15*time.Millisecond)
	m.ObserveDBQuery("query", time.Millisecond, nil)
	m.ObserveDBQuery("exec", time.Millisecond, errors.New("boom"))
	m.ObserveAdmission("created")
	m.ObserveAdmission("created")
	m.SetDBPoolStats(4, 1, 3, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/floors", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("exec", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.admissionsTotal.WithLabelValues("created")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbOpenConnections))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("query", time.Second, nil)
		m.ObserveAdmission("taken")
		m.SetDBPoolStats(1, 1, 0, 0)
	})
}

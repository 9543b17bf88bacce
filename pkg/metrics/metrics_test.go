package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPMetrics(t *testing.T) {
	before := testutil.ToFloat64(HttpRequestsTotal.WithLabelValues("test", "GET", "/x", "200"))
	RecordHTTPMetrics("test", "GET", "/x", 200, time.Millisecond)
	after := testutil.ToFloat64(HttpRequestsTotal.WithLabelValues("test", "GET", "/x", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordClientCall_Status(t *testing.T) {
	RecordClientCall("list", errors.New("x"), time.Millisecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(APIClientRequestsTotal.WithLabelValues("list", "error")), 1.0)
}

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("throttled"))
	RecordLogin("throttled")
	assert.Equal(t, before+1, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("throttled")))
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues("udp", "NOERROR"))
	Observe("udp", "NOERROR", 5*time.Millisecond)
	after := testutil.ToFloat64(QueriesTotal.WithLabelValues("udp", "NOERROR"))

	assert.Equal(t, before+1, after)
}

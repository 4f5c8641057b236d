package metrics

import (
	"strconv"
	"time"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

// Recorder feeds client call measurements into the package metrics.
type Recorder struct{}

var _ mws.Recorder = Recorder{}

// ObserveCall implements mws.Recorder.
func (Recorder) ObserveCall(action, group string, status int, d time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	APICallsTotal.WithLabelValues(action, group, code).Inc()
	APICallDuration.WithLabelValues(action, group).Observe(d.Seconds())
}

// ObserveThrottled implements mws.Recorder.
func (Recorder) ObserveThrottled(action, group string) {
	APIThrottledTotal.WithLabelValues(action, group).Inc()
}

// ObserveQuota implements mws.Recorder.
func (Recorder) ObserveQuota(group string, q mws.QuotaState) {
	QuotaRemaining.WithLabelValues(group).Set(q.Remaining)
	QuotaMax.WithLabelValues(group).Set(q.Max)
}

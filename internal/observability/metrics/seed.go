package metrics

import (
	"time"

	"blog-seeder/internal/domain/entity"
)

// RecordCreated records one persisted record of the given kind.
// A nil *Seed records nothing.
func (m *Seed) RecordCreated(kind entity.Kind, duration time.Duration) {
	if m == nil {
		return
	}
	m.RecordsCreated.WithLabelValues(string(kind)).Inc()
	m.InsertDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
}

// RecordRun records the outcome of a seed run.
func (m *Seed) RecordRun(success bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDuration.Observe(duration.Seconds())
	m.LastRunTimestamp.SetToCurrentTime()
}

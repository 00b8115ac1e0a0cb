package salary

import "time"

// SetClock pins the service's notion of the current time so tests of the
// run-date defaults are deterministic.
func SetClock(s ImportService, now func() time.Time) {
	if svc, ok := s.(*importService); ok {
		svc.now = now
	}
}

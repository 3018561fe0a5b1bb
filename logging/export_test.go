package logging

import "time"

// SetClock pins the timestamp source for tests.
func SetClock(l *Logger, now func() time.Time) { l.now = now }

package models

import "time"

// TrackingConfig carries the switches that gate every mutating call on
// the pending login store. It is passed in explicitly by callers so the
// policy stays testable without process-wide state.
type TrackingConfig struct {
	// TimeLimit is how long a login attempt may sit at the second
	// factor step before it is considered stalled; zero or negative
	// disables tracking entirely
	TimeLimit time.Duration

	// NotificationsEnabled indicates whether the downstream notifier
	// is available; when it isn't there is no point recording attempts
	// that nothing will ever act on
	NotificationsEnabled bool
}

// IsEnabled reports whether pending login tracking should perform any
// storage work at all. Both switches gate both the record and resolve
// paths, matching the coupling of the stale-login notification feature
// to its delivery mechanism.
func (c TrackingConfig) IsEnabled() bool {
	return c.TimeLimit > 0 && c.NotificationsEnabled
}

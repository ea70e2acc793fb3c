package config

import (
	"time"
	"vigil/internal/cli"
)

const (
	TrackingTimeLimit            = "tracking-time-limit"
	TrackingNotificationsEnabled = "tracking-notifications-enabled"
)

func GetTrackingFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         TrackingTimeLimit,
			DefaultValue: 15 * time.Minute,
			Usage:        "defines how long a login may sit at the second factor step before the user is notified, set to 0 to disable tracking",
			Type:         cli.FlagTypeDuration,
		},
		{
			Name:         TrackingNotificationsEnabled,
			DefaultValue: true,
			Usage:        "defines whether stalled login notifications are deliverable, tracking is disabled when this is false",
			Type:         cli.FlagTypeBool,
		},
	}
}

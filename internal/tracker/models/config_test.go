package models

import (
	"testing"
	"time"
)

func TestTrackingConfigIsEnabled(t *testing.T) {
	testCases := map[string]struct {
		config   TrackingConfig
		expected bool
	}{
		"both switches on": {
			config:   TrackingConfig{TimeLimit: time.Minute, NotificationsEnabled: true},
			expected: true,
		},
		"zero time limit": {
			config:   TrackingConfig{TimeLimit: 0, NotificationsEnabled: true},
			expected: false,
		},
		"negative time limit": {
			config:   TrackingConfig{TimeLimit: -time.Second, NotificationsEnabled: true},
			expected: false,
		},
		"notifications off": {
			config:   TrackingConfig{TimeLimit: time.Minute, NotificationsEnabled: false},
			expected: false,
		},
		"everything off": {
			config:   TrackingConfig{},
			expected: false,
		},
	}
	for name, testCase := range testCases {
		if observed := testCase.config.IsEnabled(); observed != testCase.expected {
			t.Errorf("%s: expected IsEnabled() to be %v, got %v", name, testCase.expected, observed)
		}
	}
}

func TestDeviceTypeName(t *testing.T) {
	if DeviceTypeName(DeviceTypeAndroid) != "Android" {
		t.Errorf("expected device type %v to map to 'Android'", DeviceTypeAndroid)
	}
	if DeviceTypeName(DeviceTypeLinuxCli) != "Linux CLI" {
		t.Errorf("expected device type %v to map to 'Linux CLI'", DeviceTypeLinuxCli)
	}
	// every known code should resolve to something other than the
	// unrecognised fallback
	for code := DeviceTypeAndroid; code <= DeviceTypeLinuxCli; code++ {
		if DeviceTypeName(code) == "Unknown" {
			t.Errorf("expected device type %v to have a display name", code)
		}
	}
	if DeviceTypeName(-42) != "Unknown" {
		t.Errorf("expected unrecognised device types to map to 'Unknown'")
	}
}

package models

import "time"

// PendingLogin is a login attempt that passed primary authentication
// but has not completed its second factor. At most one row exists per
// (UserId, DeviceId) pair; the composite primary key in the database
// is what enforces this.
type PendingLogin struct {
	UserId string `json:"userId"`
	// DeviceId is whatever identifier the device claimed during login.
	// A device only gets registered after completing its second factor,
	// so this cannot be cross-checked against any device table and is
	// untrusted metadata
	DeviceId   string    `json:"deviceId"`
	DeviceName string    `json:"deviceName"`
	DeviceType int       `json:"deviceType"`
	LoginTime  time.Time `json:"loginTime"`
	IpAddress  string    `json:"ipAddress"`
}

package models

import (
	"database/sql"
)

type ResolvePendingLoginV1Input struct {
	Db       *sql.DB
	Tracking TrackingConfig

	UserId   string
	DeviceId string
}

// ResolvePendingLoginV1 clears the pending login for a device that has
// completed its second factor. The same feature gate applies as on the
// record path; when tracking is off there is nothing to clear and the
// call performs no storage work.
func ResolvePendingLoginV1(opts ResolvePendingLoginV1Input) error {
	if !opts.Tracking.IsEnabled() {
		return nil
	}

	return DeletePendingLoginV1(DeletePendingLoginV1Input{
		Db:       opts.Db,
		UserId:   opts.UserId,
		DeviceId: opts.DeviceId,
	})
}

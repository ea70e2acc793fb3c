package models

import (
	"database/sql"
	"errors"
	"time"
)

type RecordPendingLoginV1Input struct {
	Db       *sql.DB
	Tracking TrackingConfig

	UserId     string
	DeviceId   string
	DeviceName string
	DeviceType int
	IpAddress  string
	LoginTime  time.Time
}

// RecordPendingLoginV1 inserts a pending login row for the given
// user/device pair if none exists yet. An existing row is left exactly
// as it is: refreshing the login time on repeated attempts would let an
// attacker push back the stale-login notification indefinitely by just
// retrying, so the insert is a single conditional statement and a
// duplicate-key rejection from the primary key is treated as success.
func RecordPendingLoginV1(opts RecordPendingLoginV1Input) error {
	if !opts.Tracking.IsEnabled() {
		return nil
	}

	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			INSERT INTO pending_login(
				user_id,
				device_id,
				device_name,
				device_type,
				login_time,
				ip_address
			) VALUES (
				?,
				?,
				?,
				?,
				?,
				?
			)
		`,
		Args: []any{
			opts.UserId,
			opts.DeviceId,
			opts.DeviceName,
			opts.DeviceType,
			opts.LoginTime.UTC(),
			opts.IpAddress,
		},
		RowsAffected: oneRowAffected,
		FnSource:     "models.RecordPendingLoginV1",
	}); err != nil {
		if errors.Is(err, ErrorDuplicateEntry) {
			// another writer already holds the row, same no-op path as
			// finding an existing entry
			return nil
		}
		return err
	}
	return nil
}

package models

import (
	"database/sql"
	"time"
)

type ListPendingLoginsBeforeV1Input struct {
	Db *sql.DB

	Before time.Time
}

// ListPendingLoginsBeforeV1 returns every pending login whose login
// time is strictly earlier than the provided threshold. Row order is
// not guaranteed. The listing never deletes anything; cleanup is the
// caller's explicit follow-up so a crash between notification and
// deletion re-surfaces the row on the next pass.
func ListPendingLoginsBeforeV1(opts ListPendingLoginsBeforeV1Input) ([]PendingLogin, error) {
	pendingLogins := []PendingLogin{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			SELECT
				user_id,
				device_id,
				device_name,
				device_type,
				login_time,
				ip_address
				FROM pending_login
					WHERE login_time < ?
			`,
		Args:     []any{opts.Before.UTC()},
		FnSource: "models.ListPendingLoginsBeforeV1",
		ProcessRows: func(r *sql.Rows) error {
			pendingLogin := PendingLogin{}
			if err := r.Scan(
				&pendingLogin.UserId,
				&pendingLogin.DeviceId,
				&pendingLogin.DeviceName,
				&pendingLogin.DeviceType,
				&pendingLogin.LoginTime,
				&pendingLogin.IpAddress,
			); err != nil {
				return err
			}
			pendingLogins = append(pendingLogins, pendingLogin)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return pendingLogins, nil
}

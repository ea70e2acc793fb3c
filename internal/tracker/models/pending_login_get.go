package models

import (
	"database/sql"
)

type GetPendingLoginV1Input struct {
	Db *sql.DB

	UserId   string
	DeviceId string
}

// GetPendingLoginV1 returns the pending login for an exact user/device
// pair; absence surfaces as ErrorNotFound.
func GetPendingLoginV1(opts GetPendingLoginV1Input) (*PendingLogin, error) {
	pendingLogin := PendingLogin{}
	if err := executeMysqlSelect(mysqlQueryInput{
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
					WHERE user_id = ? AND device_id = ?
			`,
		Args:     []any{opts.UserId, opts.DeviceId},
		FnSource: "models.GetPendingLoginV1",
		ProcessRow: func(r *sql.Row) error {
			return r.Scan(
				&pendingLogin.UserId,
				&pendingLogin.DeviceId,
				&pendingLogin.DeviceName,
				&pendingLogin.DeviceType,
				&pendingLogin.LoginTime,
				&pendingLogin.IpAddress,
			)
		},
	}); err != nil {
		return nil, err
	}
	return &pendingLogin, nil
}

package models

import (
	"database/sql"
)

type DeletePendingLoginV1Input struct {
	Db *sql.DB

	UserId   string
	DeviceId string
}

// DeletePendingLoginV1 removes the pending login for an exact
// user/device pair. Deleting a row that doesn't exist is not an error.
func DeletePendingLoginV1(opts DeletePendingLoginV1Input) error {
	return executeMysqlDelete(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			DELETE FROM pending_login
				WHERE user_id = ? AND device_id = ?
		`,
		Args:         []any{opts.UserId, opts.DeviceId},
		RowsAffected: atMostNRowsAffected(1),
		FnSource:     "models.DeletePendingLoginV1",
	})
}

type DeletePendingLoginsByUserV1Input struct {
	Db *sql.DB

	UserId string
}

// DeletePendingLoginsByUserV1 removes every pending login belonging to
// a user, used when the account itself goes away.
func DeletePendingLoginsByUserV1(opts DeletePendingLoginsByUserV1Input) error {
	return executeMysqlDelete(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			DELETE FROM pending_login
				WHERE user_id = ?
		`,
		Args:     []any{opts.UserId},
		FnSource: "models.DeletePendingLoginsByUserV1",
	})
}

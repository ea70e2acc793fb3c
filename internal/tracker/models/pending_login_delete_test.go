package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestDeletePendingLoginV1(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	userId := uuid.NewString()
	deviceId := uuid.NewString()
	mock.ExpectPrepare("DELETE FROM pending_login WHERE user_id = (.+) AND device_id = ").
		ExpectExec().
		WithArgs(userId, deviceId).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := DeletePendingLoginV1(DeletePendingLoginV1Input{
		Db:       db,
		UserId:   userId,
		DeviceId: deviceId,
	}); err != nil {
		t.Errorf("expected no error, got: %s", err)
	}
}

func TestDeletePendingLoginV1AbsentRowIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare("DELETE FROM pending_login WHERE user_id = (.+) AND device_id = ").
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := DeletePendingLoginV1(DeletePendingLoginV1Input{
		Db:       db,
		UserId:   uuid.NewString(),
		DeviceId: uuid.NewString(),
	}); err != nil {
		t.Errorf("expected deleting an absent row to succeed, got: %s", err)
	}
}

func TestDeletePendingLoginsByUserV1(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	userId := uuid.NewString()
	mock.ExpectPrepare("DELETE FROM pending_login WHERE user_id = ").
		ExpectExec().
		WithArgs(userId).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := DeletePendingLoginsByUserV1(DeletePendingLoginsByUserV1Input{
		Db:     db,
		UserId: userId,
	}); err != nil {
		t.Errorf("expected no error, got: %s", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected bulk delete to be executed: %s", err)
	}
}

func TestResolvePendingLoginV1(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	userId := uuid.NewString()
	deviceId := uuid.NewString()
	mock.ExpectPrepare("DELETE FROM pending_login WHERE user_id = (.+) AND device_id = ").
		ExpectExec().
		WithArgs(userId, deviceId).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := ResolvePendingLoginV1(ResolvePendingLoginV1Input{
		Db:       db,
		Tracking: enabledTracking,
		UserId:   userId,
		DeviceId: deviceId,
	}); err != nil {
		t.Errorf("expected no error, got: %s", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected delete to be executed: %s", err)
	}
}

func TestResolvePendingLoginV1DisabledSkipsStorage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	if err := ResolvePendingLoginV1(ResolvePendingLoginV1Input{
		Db:       db,
		Tracking: TrackingConfig{},
		UserId:   uuid.NewString(),
		DeviceId: uuid.NewString(),
	}); err != nil {
		t.Errorf("expected short-circuit without error, got: %s", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no storage work: %s", err)
	}
}

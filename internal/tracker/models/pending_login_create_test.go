package models

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

var enabledTracking = TrackingConfig{
	TimeLimit:            15 * time.Minute,
	NotificationsEnabled: true,
}

func TestRecordPendingLoginV1(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	userId := uuid.NewString()
	deviceId := uuid.NewString()
	loginTime := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	mock.ExpectPrepare("INSERT INTO pending_login").
		ExpectExec().
		WithArgs(userId, deviceId, "Firefox on Linux", DeviceTypeFirefoxBrowser, loginTime, "203.0.113.7").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := RecordPendingLoginV1(RecordPendingLoginV1Input{
		Db:         db,
		Tracking:   enabledTracking,
		UserId:     userId,
		DeviceId:   deviceId,
		DeviceName: "Firefox on Linux",
		DeviceType: DeviceTypeFirefoxBrowser,
		IpAddress:  "203.0.113.7",
		LoginTime:  loginTime,
	}); err != nil {
		t.Errorf("expected no error, got: %s", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected insert to be executed: %s", err)
	}
}

func TestRecordPendingLoginV1DuplicateIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	userId := uuid.NewString()
	deviceId := uuid.NewString()
	mock.ExpectPrepare("INSERT INTO pending_login").
		ExpectExec().
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	// a losing concurrent writer must take the same path as finding an
	// existing row, so the anti-reset guarantee holds under races
	if err := RecordPendingLoginV1(RecordPendingLoginV1Input{
		Db:         db,
		Tracking:   enabledTracking,
		UserId:     userId,
		DeviceId:   deviceId,
		DeviceName: "Chrome on Windows",
		DeviceType: DeviceTypeChromeBrowser,
		IpAddress:  "198.51.100.23",
		LoginTime:  time.Now().UTC(),
	}); err != nil {
		t.Errorf("expected duplicate entry to be treated as success, got: %s", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected insert to be attempted: %s", err)
	}
}

func TestRecordPendingLoginV1DisabledSkipsStorage(t *testing.T) {
	disabledConfigs := map[string]TrackingConfig{
		"zero time limit":        {TimeLimit: 0, NotificationsEnabled: true},
		"negative time limit":    {TimeLimit: -1 * time.Minute, NotificationsEnabled: true},
		"notifications disabled": {TimeLimit: 15 * time.Minute, NotificationsEnabled: false},
	}
	for name, trackingConfig := range disabledConfigs {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to create mock database: %s", err)
		}
		if err := RecordPendingLoginV1(RecordPendingLoginV1Input{
			Db:        db,
			Tracking:  trackingConfig,
			UserId:    uuid.NewString(),
			DeviceId:  uuid.NewString(),
			LoginTime: time.Now().UTC(),
		}); err != nil {
			t.Errorf("%s: expected short-circuit without error, got: %s", name, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("%s: expected no storage work: %s", name, err)
		}
		db.Close()
	}
}

func TestRecordPendingLoginV1WriteOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	userId := uuid.NewString()
	deviceId := uuid.NewString()
	firstAttemptAt := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	secondAttemptAt := firstAttemptAt.Add(10 * time.Second)

	mock.ExpectPrepare("INSERT INTO pending_login").
		ExpectExec().
		WithArgs(userId, deviceId, "Firefox on Linux", DeviceTypeFirefoxBrowser, firstAttemptAt, "203.0.113.7").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectPrepare("INSERT INTO pending_login").
		ExpectExec().
		WithArgs(userId, deviceId, "Totally Legit Device", DeviceTypeAndroid, secondAttemptAt, "203.0.113.7").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectPrepare("SELECT (.+) FROM pending_login").
		ExpectQuery().
		WithArgs(userId, deviceId).
		WillReturnRows(sqlmock.NewRows(pendingLoginColumns).
			AddRow(userId, deviceId, "Firefox on Linux", DeviceTypeFirefoxBrowser, firstAttemptAt, "203.0.113.7"))

	if err := RecordPendingLoginV1(RecordPendingLoginV1Input{
		Db:         db,
		Tracking:   enabledTracking,
		UserId:     userId,
		DeviceId:   deviceId,
		DeviceName: "Firefox on Linux",
		DeviceType: DeviceTypeFirefoxBrowser,
		IpAddress:  "203.0.113.7",
		LoginTime:  firstAttemptAt,
	}); err != nil {
		t.Fatalf("expected first record to succeed, got: %s", err)
	}
	if err := RecordPendingLoginV1(RecordPendingLoginV1Input{
		Db:         db,
		Tracking:   enabledTracking,
		UserId:     userId,
		DeviceId:   deviceId,
		DeviceName: "Totally Legit Device",
		DeviceType: DeviceTypeAndroid,
		IpAddress:  "203.0.113.7",
		LoginTime:  secondAttemptAt,
	}); err != nil {
		t.Fatalf("expected repeated record to be a no-op, got: %s", err)
	}

	pendingLogin, err := GetPendingLoginV1(GetPendingLoginV1Input{
		Db:       db,
		UserId:   userId,
		DeviceId: deviceId,
	})
	if err != nil {
		t.Fatalf("expected the record to exist, got: %s", err)
	}
	if !pendingLogin.LoginTime.Equal(firstAttemptAt) {
		t.Errorf("expected the original login time '%s' to be retained, got '%s'", firstAttemptAt, pendingLogin.LoginTime)
	}
	if pendingLogin.DeviceName != "Firefox on Linux" {
		t.Errorf("expected the original device name to be retained, got '%s'", pendingLogin.DeviceName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected both inserts and the lookup to be executed: %s", err)
	}
}

func TestRecordPendingLoginV1MissingDb(t *testing.T) {
	if err := RecordPendingLoginV1(RecordPendingLoginV1Input{
		Tracking:  enabledTracking,
		UserId:    uuid.NewString(),
		DeviceId:  uuid.NewString(),
		LoginTime: time.Now().UTC(),
	}); err == nil {
		t.Errorf("expected an error when no database connection is supplied")
	}
}

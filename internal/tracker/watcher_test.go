package tracker

import (
	"fmt"
	"testing"
	"time"
	"vigil/internal/tracker/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

var pendingLoginColumns = []string{
	"user_id",
	"device_id",
	"device_name",
	"device_type",
	"login_time",
	"ip_address",
}

var testTracking = models.TrackingConfig{
	TimeLimit:            15 * time.Minute,
	NotificationsEnabled: true,
}

type stubNotifier struct {
	notified []models.PendingLogin
	failFor  map[string]error
}

func (n *stubNotifier) NotifyStalledLogin(login models.PendingLogin) error {
	if err, ok := n.failFor[login.DeviceId]; ok {
		return err
	}
	n.notified = append(n.notified, login)
	return nil
}

func TestRunSweepV1(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	threshold := now.Add(-testTracking.TimeLimit)
	userId := uuid.NewString()
	deviceId := uuid.NewString()
	mock.ExpectPrepare("SELECT (.+) FROM pending_login WHERE login_time < ").
		ExpectQuery().
		WithArgs(threshold).
		WillReturnRows(sqlmock.NewRows(pendingLoginColumns).
			AddRow(userId, deviceId, "Firefox", models.DeviceTypeFirefoxBrowser, threshold.Add(-time.Minute), "203.0.113.9"))
	mock.ExpectPrepare("DELETE FROM pending_login WHERE user_id = (.+) AND device_id = ").
		ExpectExec().
		WithArgs(userId, deviceId).
		WillReturnResult(sqlmock.NewResult(0, 1))

	notifier := &stubNotifier{}
	report, err := RunSweepV1(RunSweepV1Input{
		Db:       db,
		Tracking: testTracking,
		Notifier: notifier,
		Now:      now,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %s", err)
	}
	if report.Found != 1 || report.Notified != 1 || report.Failed != 0 {
		t.Errorf("expected report of found[1]/notified[1]/failed[0], got found[%v]/notified[%v]/failed[%v]", report.Found, report.Notified, report.Failed)
	}
	if len(notifier.notified) != 1 {
		t.Fatalf("expected 1 notification, got %v", len(notifier.notified))
	}
	if notifier.notified[0].UserId != userId {
		t.Errorf("expected notification for user[%s], got user[%s]", userId, notifier.notified[0].UserId)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected notified login to be purged: %s", err)
	}
}

func TestRunSweepV1NotifyFailureKeepsRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	userId := uuid.NewString()
	failingDeviceId := uuid.NewString()
	okDeviceId := uuid.NewString()
	mock.ExpectPrepare("SELECT (.+) FROM pending_login WHERE login_time < ").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows(pendingLoginColumns).
			AddRow(userId, failingDeviceId, "Android", models.DeviceTypeAndroid, now.Add(-time.Hour), "203.0.113.10").
			AddRow(userId, okDeviceId, "iOS", models.DeviceTypeIos, now.Add(-time.Hour), "203.0.113.11"))
	// only the successfully notified login may be deleted; the failed
	// one stays for the next pass
	mock.ExpectPrepare("DELETE FROM pending_login WHERE user_id = (.+) AND device_id = ").
		ExpectExec().
		WithArgs(userId, okDeviceId).
		WillReturnResult(sqlmock.NewResult(0, 1))

	notifier := &stubNotifier{
		failFor: map[string]error{
			failingDeviceId: fmt.Errorf("smtp unavailable"),
		},
	}
	report, err := RunSweepV1(RunSweepV1Input{
		Db:       db,
		Tracking: testTracking,
		Notifier: notifier,
		Now:      now,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %s", err)
	}
	if report.Found != 2 || report.Notified != 1 || report.Failed != 1 {
		t.Errorf("expected report of found[2]/notified[1]/failed[1], got found[%v]/notified[%v]/failed[%v]", report.Found, report.Notified, report.Failed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected only the notified login to be purged: %s", err)
	}
}

func TestRunSweepV1DisabledDoesNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	notifier := &stubNotifier{}
	report, err := RunSweepV1(RunSweepV1Input{
		Db:       db,
		Tracking: models.TrackingConfig{},
		Notifier: notifier,
		Now:      time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %s", err)
	}
	if report.Found != 0 || report.Notified != 0 {
		t.Errorf("expected an empty report, got found[%v]/notified[%v]", report.Found, report.Notified)
	}
	if len(notifier.notified) != 0 {
		t.Errorf("expected no notifications, got %v", len(notifier.notified))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no storage work: %s", err)
	}
}

func TestWatcherOptsValidate(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %s", err)
	}
	defer db.Close()

	opts := WatcherOpts{
		Db:           db,
		Notifier:     &stubNotifier{},
		PollInterval: time.Minute,
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("expected valid options to pass validation, got: %s", err)
	}

	invalidOpts := map[string]WatcherOpts{
		"missing database": {Notifier: &stubNotifier{}, PollInterval: time.Minute},
		"missing notifier": {Db: db, PollInterval: time.Minute},
		"no poll interval": {Db: db, Notifier: &stubNotifier{}},
	}
	for name, opts := range invalidOpts {
		if err := opts.Validate(); err == nil {
			t.Errorf("%s: expected validation to fail", name)
		}
	}
}

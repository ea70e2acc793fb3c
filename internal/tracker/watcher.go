package tracker

import (
	"database/sql"
	"fmt"
	"sync"
	"time"
	"vigil/internal/common"
	"vigil/internal/tracker/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier is the downstream consumer of stalled logins; the watcher
// hands it records one at a time and only purges a record after the
// notifier accepts it.
type Notifier interface {
	NotifyStalledLogin(login models.PendingLogin) error
}

type WatcherOpts struct {
	// Db is the connection to the database holding pending logins
	Db *sql.DB

	// Tracking gates the whole feature; when disabled the watcher
	// idles instead of sweeping
	Tracking models.TrackingConfig

	// Notifier receives every stalled login found by a sweep
	Notifier Notifier

	// PollInterval is the duration between sweeps
	PollInterval time.Duration

	// ServiceLogs is a channel where logs are emitted to
	ServiceLogs chan<- common.ServiceLog

	// Done signals the watcher to stop after the current sweep
	Done chan common.Done
}

func (o WatcherOpts) Validate() error {
	if o.Db == nil {
		return fmt.Errorf("failed to receive a database connection")
	}
	if o.Notifier == nil {
		return fmt.Errorf("failed to receive a notifier")
	}
	if o.PollInterval <= 0 {
		return fmt.Errorf("failed to receive a valid poll interval")
	}
	return nil
}

// StartWatcher runs sweep passes over the pending login table until
// the Done channel is signalled. Each pass notifies-then-purges every
// login that has sat at the second factor step for longer than the
// configured time limit.
func StartWatcher(opts WatcherOpts) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("failed to validate watcher options: %w", err)
	}
	serviceLogs := opts.ServiceLogs
	if serviceLogs == nil {
		serviceLogs = common.GetNoopServiceLog()
	}

	var lifecycleWaiter sync.WaitGroup
	lifecycleWaiter.Add(1)
	go func() {
		defer lifecycleWaiter.Done()
		logrus.Infof("watcher is starting with interval[%v] and time limit[%v]", opts.PollInterval, opts.Tracking.TimeLimit)
		for {
			select {
			case <-opts.Done:
				logrus.Infof("watcher is stopping")
				return
			case <-time.After(opts.PollInterval):
			}
			report, err := RunSweepV1(RunSweepV1Input{
				Db:          opts.Db,
				Tracking:    opts.Tracking,
				Notifier:    opts.Notifier,
				Now:         time.Now().UTC(),
				ServiceLogs: serviceLogs,
			})
			if err != nil {
				serviceLogs <- common.ServiceLogf(common.LogLevelError, "sweep failed: %s", err)
				continue
			}
			if report.Found > 0 {
				serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "sweep[%s] found %v stalled login(s), notified %v, failed %v", report.SweepId, report.Found, report.Notified, report.Failed)
			}
		}
	}()

	lifecycleWaiter.Wait()
	return nil
}

type RunSweepV1Input struct {
	Db       *sql.DB
	Tracking models.TrackingConfig
	Notifier Notifier

	// Now is the reference timestamp used to derive the staleness
	// threshold, injected so sweeps are reproducible in tests
	Now time.Time

	ServiceLogs chan<- common.ServiceLog
}

type SweepReport struct {
	SweepId  string
	Found    int
	Notified int
	Failed   int
}

// RunSweepV1 performs a single pass: list logins older than the
// threshold, notify each, and delete only those whose notification
// went through. A record that fails to notify stays put and is picked
// up again on the next pass, so delivery is at-least-once.
func RunSweepV1(opts RunSweepV1Input) (SweepReport, error) {
	report := SweepReport{SweepId: uuid.NewString()}
	if !opts.Tracking.IsEnabled() {
		return report, nil
	}
	serviceLogs := opts.ServiceLogs
	if serviceLogs == nil {
		serviceLogs = common.GetNoopServiceLog()
	}

	sweepsCounter.Inc()
	threshold := opts.Now.UTC().Add(-opts.Tracking.TimeLimit)
	serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "sweep[%s] listing pending logins older than %s...", report.SweepId, threshold.Format(time.RFC3339))
	stalledLogins, err := models.ListPendingLoginsBeforeV1(models.ListPendingLoginsBeforeV1Input{
		Db:     opts.Db,
		Before: threshold,
	})
	if err != nil {
		sweepFailuresCounter.WithLabelValues("list").Inc()
		return report, fmt.Errorf("failed to list stalled logins: %w", err)
	}
	report.Found = len(stalledLogins)

	for _, stalledLogin := range stalledLogins {
		if err := opts.Notifier.NotifyStalledLogin(stalledLogin); err != nil {
			sweepFailuresCounter.WithLabelValues("notify").Inc()
			report.Failed++
			serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "sweep[%s] failed to notify user[%s] about device[%s]: %s", report.SweepId, stalledLogin.UserId, stalledLogin.DeviceId, err)
			continue
		}
		if err := models.DeletePendingLoginV1(models.DeletePendingLoginV1Input{
			Db:       opts.Db,
			UserId:   stalledLogin.UserId,
			DeviceId: stalledLogin.DeviceId,
		}); err != nil {
			// the notification already went out; leaving the row means
			// the user may be notified again on the next pass which is
			// the acceptable side of at-least-once
			sweepFailuresCounter.WithLabelValues("delete").Inc()
			report.Failed++
			serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "sweep[%s] failed to remove notified login for user[%s] device[%s]: %s", report.SweepId, stalledLogin.UserId, stalledLogin.DeviceId, err)
			continue
		}
		notifiedLoginsCounter.Inc()
		report.Notified++
	}
	return report, nil
}

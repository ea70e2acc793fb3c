package watcher

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"vigil/internal/cli"
	"vigil/internal/common"
	"vigil/internal/config"
	"vigil/internal/database"
	"vigil/internal/email"
	"vigil/internal/tracker"
	"vigil/internal/tracker/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "poll-interval",
		DefaultValue: 1 * time.Minute,
		Usage:        "specifies the duration between sweeps of the pending login table",
		Type:         cli.FlagTypeDuration,
	},
	{
		Name:         "user-email-query",
		DefaultValue: "SELECT email FROM user WHERE id = ?",
		Usage:        "specifies the query used to resolve a user id to the email address to notify, must select a single column and accept a single parameter",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "metrics-api-token",
		DefaultValue: "",
		Usage:        "when specified, the health/metrics endpoints require this value as a bearer token",
		Type:         cli.FlagTypeString,
	},
}.Append(config.GetListenAddrFlags(54932)).
	Append(config.GetMysqlFlags()).
	Append(config.GetSmtpFlags()).
	Append(config.GetTrackingFlags())

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "watcher",
	Aliases: []string{"w"},
	Short:   "Starts the watcher component",
	Long:    "Starts the watcher component which periodically sweeps the pending login table, notifies users whose login attempts stalled at the second factor, and purges the notified records",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		logrus.Infof("establishing connection to database...")
		connectionId := "vigil/watcher"
		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			ConnectionId: connectionId,
			Host:         viper.GetString(config.MysqlHost),
			Port:         viper.GetInt(config.MysqlPort),
			Username:     viper.GetString(config.MysqlUsername),
			Password:     viper.GetString(config.MysqlPassword),
			Database:     viper.GetString(config.MysqlDatabase),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}
		logrus.Debugf("established connection to database")

		logrus.Infof("starting connection freshness verifier...")
		databaseConnectionOk := true
		databaseConnectionStatusLastUpdatedAt := time.Now()
		databaseConnectionStatusUpdates := make(chan bool)
		var databaseConnectionStatusMutex sync.Mutex
		go func() {
			for {
				statusUpdate := <-databaseConnectionStatusUpdates
				databaseConnectionStatusMutex.Lock()
				if statusUpdate != databaseConnectionOk {
					logAtLevel := logrus.Infof
					if !statusUpdate {
						logAtLevel = logrus.Warnf
					}
					logAtLevel("database connection freshness status switched to '%v'", statusUpdate)
					databaseConnectionStatusLastUpdatedAt = time.Now()
				}
				databaseConnectionOk = statusUpdate
				databaseConnectionStatusMutex.Unlock()
			}
		}()
		go func() {
			for {
				logrus.Tracef("verifying database connection freshness...")
				if err := database.CheckMysqlConnection(connectionId); err != nil {
					logrus.Errorf("failed to check mysql connection with id '%s': %s", connectionId, err)
					databaseConnectionStatusUpdates <- false
					if err := database.RefreshMysqlConnection(connectionId); err != nil {
						logrus.Errorf("failed to refresh mysql connection with id '%s': %s", connectionId, err)
					}
				} else {
					logrus.Tracef("database connection freshness verified")
					databaseConnectionStatusUpdates <- true
				}
				<-time.After(3 * time.Second)
			}
		}()

		logrus.Infof("initialising tracking configuration...")
		trackingConfig := models.TrackingConfig{
			TimeLimit:            viper.GetDuration(config.TrackingTimeLimit),
			NotificationsEnabled: viper.GetBool(config.TrackingNotificationsEnabled),
		}
		if !trackingConfig.IsEnabled() {
			logrus.Warnf("tracking is disabled (time limit: %v, notifications enabled: %v), the watcher will idle", trackingConfig.TimeLimit, trackingConfig.NotificationsEnabled)
		}

		logrus.Infof("initialising notifier...")
		userEmailQuery := viper.GetString("user-email-query")
		notifier, err := email.NewStalledLoginNotifier(email.NewStalledLoginNotifierOpts{
			Smtp: email.SmtpConfig{
				Hostname: viper.GetString(config.SmtpHostname),
				Port:     viper.GetInt(config.SmtpPort),
				Username: viper.GetString(config.SmtpUsername),
				Password: viper.GetString(config.SmtpPassword),
			},
			Sender: email.User{
				Address: viper.GetString(config.SenderEmail),
				Name:    viper.GetString(config.SenderName),
			},
			ResolveAddress: func(userId string) (email.User, error) {
				var address string
				if err := databaseConnection.QueryRow(userEmailQuery, userId).Scan(&address); err != nil {
					return email.User{}, fmt.Errorf("failed to query email of user[%s]: %w", userId, err)
				}
				return email.User{Address: address}, nil
			},
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to initialise notifier: %w", err)
		}
		logrus.Infof("initialised notifier")

		logrus.Infof("initialising health endpoints...")
		router := mux.NewRouter()
		router.NotFoundHandler = common.GetNotFoundHandler()
		router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
		router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			databaseConnectionStatusMutex.Lock()
			isDatabaseDown := !databaseConnectionOk && databaseConnectionStatusLastUpdatedAt.Before(time.Now().Add(-30*time.Second))
			databaseConnectionStatusMutex.Unlock()
			if isDatabaseDown {
				common.SendHttpFailResponse(w, r, http.StatusServiceUnavailable, "not ok", fmt.Errorf("database connection is invalid"))
				return
			}
			common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok")
		}).Methods(http.MethodGet)
		router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
			databaseConnectionStatusMutex.Lock()
			isDatabaseOk := databaseConnectionOk
			databaseConnectionStatusMutex.Unlock()
			if !isDatabaseOk {
				common.SendHttpFailResponse(w, r, http.StatusServiceUnavailable, "not ready", fmt.Errorf("database connection is pending restoration"))
				return
			}
			common.SendHttpSuccessResponse(w, r, http.StatusOK, "ready")
		}).Methods(http.MethodGet)

		serverOpts := common.NewHttpServerOpts{
			Addr:        viper.GetString(config.ListenAddr),
			Done:        make(chan common.Done),
			Handler:     router,
			ServiceLogs: serviceLogs,
		}
		if metricsApiToken := viper.GetString("metrics-api-token"); metricsApiToken != "" {
			serverOpts.BearerAuth = &common.NewHttpServerBearerAuthOpts{
				Token: metricsApiToken,
			}
		}
		server, err := common.NewHttpServer(serverOpts)
		if err != nil {
			return fmt.Errorf("failed to initialise health endpoints: %w", err)
		}
		go func() {
			if err := server.Start(); err != nil {
				logrus.Errorf("health endpoints stopped: %s", err)
			}
		}()

		watcherDone := make(chan common.Done)
		signalChannel := make(chan os.Signal, 1)
		signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-signalChannel
			logrus.Infof("received shutdown signal, stopping...")
			close(serverOpts.Done)
			close(watcherDone)
		}()

		logrus.Infof("starting watcher...")
		return tracker.StartWatcher(tracker.WatcherOpts{
			Db:           databaseConnection,
			Tracking:     trackingConfig,
			Notifier:     notifier,
			PollInterval: viper.GetDuration("poll-interval"),
			ServiceLogs:  serviceLogs,
			Done:         watcherDone,
		})
	},
}

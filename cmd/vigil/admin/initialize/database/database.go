package database

import (
	"fmt"
	"vigil/internal/cli"
	"vigil/internal/common"
	"vigil/internal/config"
	"vigil/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "steps",
		DefaultValue: 0,
		Usage:        "specifies the number of migration steps to run, runs all pending migrations when 0",
		Type:         cli.FlagTypeInteger,
	},
}.Append(config.GetMysqlFlags())

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "database",
	Aliases: []string{"db"},
	Short:   "Runs database migrations for the pending login table",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		logrus.Infof("establishing connection to database...")
		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			ConnectionId: "vigil/migrator",
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

		logrus.Infof("running migrations...")
		if err := database.MigrateMysql(database.MigrateOpts{
			Connection:  databaseConnection,
			Steps:       viper.GetInt("steps"),
			ServiceLogs: serviceLogs,
		}); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logrus.Infof("migrations completed")
		return nil
	},
}

package logins

import (
	"encoding/json"
	"fmt"
	"time"
	"vigil/internal/cli"
	"vigil/internal/config"
	"vigil/internal/database"
	"vigil/internal/tracker/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "older-than",
		DefaultValue: time.Duration(0),
		Usage:        "only show logins that have been pending for longer than this duration",
		Type:         cli.FlagTypeDuration,
	},
}.Append(config.GetMysqlFlags())

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "logins",
	Aliases: []string{"login", "l"},
	Short:   "Lists login attempts that are still pending their second factor",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			ConnectionId: "vigil/get/logins",
			Host:         viper.GetString(config.MysqlHost),
			Port:         viper.GetInt(config.MysqlPort),
			Username:     viper.GetString(config.MysqlUsername),
			Password:     viper.GetString(config.MysqlPassword),
			Database:     viper.GetString(config.MysqlDatabase),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}

		pendingLogins, err := models.ListPendingLoginsBeforeV1(models.ListPendingLoginsBeforeV1Input{
			Db:     databaseConnection,
			Before: time.Now().UTC().Add(-viper.GetDuration("older-than")),
		})
		if err != nil {
			return fmt.Errorf("failed to list pending logins: %w", err)
		}

		outputFormat := viper.GetString("output")
		switch outputFormat {
		case "json":
			o, _ := json.MarshalIndent(pendingLogins, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"user", "device", "device name", "device type", "login time", "ip address"},
				Rows: func(t *cli.Table) error {
					for _, pendingLogin := range pendingLogins {
						if err := t.NewRow(
							pendingLogin.UserId,
							pendingLogin.DeviceId,
							pendingLogin.DeviceName,
							models.DeviceTypeName(pendingLogin.DeviceType),
							pendingLogin.LoginTime,
							pendingLogin.IpAddress,
						); err != nil {
							return err
						}
					}
					return nil
				},
			})
			fmt.Println(table.Render().GetString())
		}

		return nil
	},
}

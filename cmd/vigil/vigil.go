package vigil

import (
	"fmt"
	"os"
	"strings"
	"vigil/cmd/vigil/admin"
	"vigil/cmd/vigil/get"
	"vigil/cmd/vigil/start"
	"vigil/internal/cli"
	"vigil/internal/common"
	"vigil/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var availableOutputs = []string{
	"text",
	"json",
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: "text",
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(availableOutputs, ", ")),
		Type:         cli.FlagTypeString,
	},
}

func init() {
	Command.AddCommand(admin.Command)
	Command.AddCommand(get.Command)
	Command.AddCommand(start.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		cli.InitLogging(viper.GetString("log-level"))
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "vigil",
	Short:   "Tracks logins that stalled at the second factor and warns affected users",
	Version: config.GetVersion(),
	Long:    "Tracks login attempts that passed the password check but never completed two-step verification, and notifies users so stolen credentials don't go unnoticed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

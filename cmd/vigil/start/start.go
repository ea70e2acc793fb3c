package start

import (
	"vigil/cmd/vigil/start/watcher"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(watcher.Command)
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"st"},
	Short:   "Starts one of Vigil's core services",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

package get

import (
	"vigil/cmd/vigil/get/logins"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(logins.Command)
}

var Command = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	Short:   "Retrieves resources tracked by Vigil",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

package initialize

import (
	"vigil/cmd/vigil/admin/initialize/database"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(database.Command)
}

var Command = &cobra.Command{
	Use:     "initialize",
	Aliases: []string{"init", "i"},
	Short:   "Initialises Vigil",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

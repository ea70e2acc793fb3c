package admin

import (
	"vigil/cmd/vigil/admin/initialize"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(initialize.Command)
}

var Command = &cobra.Command{
	Use:     "admin",
	Aliases: []string{"adm"},
	Short:   "Privileged direct-to-database management commands for Vigil administrators",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

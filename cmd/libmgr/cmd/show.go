package cmd

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <model>",
	Short: "Show details of a data model",
	Long: `Prints the name and path of a registered data model.

Examples:
  libmgr show llama-7b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <model> <path>",
	Short: "Register an existing model directory",
	Long: `Adds a data model to the registry. <path> must be an existing
directory; it is stored as given, relative paths stay relative.

Examples:
  libmgr add llama-7b ./models/llama-7b`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

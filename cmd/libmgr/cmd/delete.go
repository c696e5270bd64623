package cmd

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <model>",
	Aliases: []string{"rm"},
	Short:   "Delete a data model",
	Long: `Recursively deletes the directory backing a data model and removes
it from the registry. If the directory cannot be deleted the model stays
registered.

Examples:
  libmgr delete llama-7b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

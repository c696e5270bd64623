package cmd

import (
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <model> <dest>",
	Short: "Move a data model to a new location",
	Long: `Renames the directory backing a data model to <dest> and records the
new location in the registry. The registry only changes if the rename
succeeded. Source and destination must be on the same filesystem.

Examples:
  libmgr move llama-7b /mnt/fast/llama-7b`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

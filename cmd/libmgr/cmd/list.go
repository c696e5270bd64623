package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/libmgr/internal/library"
	"github.com/msto63/libmgr/internal/ui"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered data models",
	Long: `Lists all registered data models sorted by name.

Examples:
  libmgr list
  libmgr list --output yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, func(c *library.Command) {
			c.Format = listOutput
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOutput, "output", "o", ui.FormatTable, "Output format: table, json or yaml")
}

package commands

import (
	"os"

	"github.com/kernelops/taintinfo/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known taint flags and their descriptions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ui.ListFlags(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

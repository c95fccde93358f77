package commands

import (
	"os"

	"github.com/kernelops/taintinfo/internal/taint"
	"github.com/kernelops/taintinfo/internal/ui"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Display information about the current taint status of the running kernel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := taint.NewFileSource(cfg.Source).Load()
		if err != nil {
			ui.Alertf(os.Stderr, "%s: %v", programName(), err)
			return err
		}
		ui.Report(os.Stdout, status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of taintinfo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("taintinfo v1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

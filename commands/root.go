package commands

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kernelops/taintinfo/internal/config"
	"github.com/kernelops/taintinfo/internal/taint"
	"github.com/kernelops/taintinfo/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	exitNorm        = 0
	exitErrGeneric  = 1
	exitErrMemAlloc = 2
)

const queryPrefix = "taint="

// errSyntax marks invocations that only warranted the syntax text.
var errSyntax = errors.New("bad syntax")

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "taintinfo",
	Short: "Decode the Linux kernel taint status",
	Long: `taintinfo decodes the kernel taint bitmask into named flags with
severity levels and human-readable descriptions.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && strings.HasPrefix(args[0], queryPrefix) {
			status, warnings := taint.ParseQuery(strings.TrimPrefix(args[0], queryPrefix))
			ui.PrintWarnings(os.Stderr, warnings)
			ui.Report(os.Stdout, status)
			return nil
		}
		ui.PrintSyntax(os.Stdout, programName())
		return errSyntax
	},
}

// Execute runs the command tree and owns the process exit code.
func Execute() {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rErr, ok := r.(runtime.Error); ok && strings.Contains(rErr.Error(), "out of memory") {
			ui.Alertf(os.Stderr, "%s: Out of memory", programName())
			os.Exit(exitErrMemAlloc)
		}
		panic(r)
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitErrGeneric)
	}
	os.Exit(exitNorm)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			ui.Alertf(os.Stderr, "%s: %v", programName(), err)
			return err
		}
		cfg = loaded
	}
	switch cfg.Color {
	case "always":
		pterm.EnableColor()
	case "never":
		pterm.DisableColor()
	}
	return nil
}

func programName() string {
	return filepath.Base(os.Args[0])
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to an optional YAML config file")
}

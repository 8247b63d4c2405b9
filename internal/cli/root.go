package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags of the root command.
var globalFlags GlobalFlags

var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Interactive process monitor",
	Long: `sysmon shows every running process with its CPU and memory usage,
refreshed about once a second, in a table you can re-sort and act on.

Keyboard shortcuts:
  s           Cycle sort order (CPU / MEM / PID)
  k           Kill a process (prompts for the PID, pre-filled with the selection)
  up/down     Move the selection
  ?           Show help
  q / Ctrl+C  Quit

Examples:
  sysmon
  sysmon --sort mem --cadence 2s
  sysmon snapshot --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cmd.Context(), globalFlags)
	},
}

func init() {
	AddGlobalFlags(rootCmd, &globalFlags)
}

// Execute runs the root command and exits non-zero on failure. SIGINT and
// SIGTERM cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err == nil || stderrors.Is(err, context.Canceled) {
		return
	}
	reportError(err)
	os.Exit(1)
}

// reportError prints err in the format the active output mode expects.
func reportError(err error) {
	if MachineMode() {
		_ = WriteJSONFromError(os.Stdout, err)
		return
	}

	var smErr *errors.Error
	if stderrors.As(err, &smErr) {
		fmt.Fprint(os.Stderr, smErr.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", ui.SymbolFail, err)
}

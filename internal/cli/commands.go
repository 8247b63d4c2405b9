package cli

import (
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/terminate"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	snapshotOpts SnapshotOptions
	killOpts     KillOptions
	initOpts     InitOptions
	versionShort bool
)

// snapshotCmd prints a single ranked table
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one ranked process table and exit",
	Long: `Sample every process twice, one cadence apart, and print the ranked
result. Useful in scripts and when no terminal is attached.

Examples:
  sysmon snapshot
  sysmon snapshot --sort mem --limit 10
  sysmon snapshot --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = snapshotOpts.JSON

		cfg, err := loadSettings(globalFlags)
		if err != nil {
			return err
		}
		ctrl, err := newController(cfg, terminate.New())
		if err != nil {
			return err
		}

		opts := snapshotOpts
		opts.MaxNameLength = cfg.MaxNameLength
		return snapshotCommand(cmd.Context(), cmd.OutOrStdout(), ctrl, opts)
	},
}

// killCmd sends a termination signal
var killCmd = &cobra.Command{
	Use:   "kill <pid>",
	Short: "Send SIGTERM to a process",
	Long: `Ask a process to exit. With --force the process is killed outright
(SIGKILL) instead.

Examples:
  sysmon kill 1234
  sysmon kill --yes 1234
  sysmon kill --force 1234`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return killCommand(cmd.OutOrStdout(), args[0], killOpts, terminate.New(), confirmKill)
	},
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the sysmon config file",
}

// configInitCmd creates a config file with defaults
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented config file",
	Long: `Write a config file with every setting at its default value.

Creates ./.sysmon.yaml, or ~/.config/sysmon/config.yaml with --global.

Examples:
  sysmon config init
  sysmon config init --global
  sysmon config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), initOpts)
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of sysmon.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(cmd.OutOrStdout(), versionShort)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sysmon.

Examples:
  # Bash
  sysmon completion bash > /etc/bash_completion.d/sysmon

  # Zsh
  sysmon completion zsh > "${fpath[1]}/_sysmon"

  # Fish
  sysmon completion fish > ~/.config/fish/completions/sysmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// snapshot command flags
	snapshotCmd.Flags().BoolVar(&snapshotOpts.JSON, "json", false, "output as JSON")
	snapshotCmd.Flags().IntVarP(&snapshotOpts.Limit, "limit", "n", 0, "print at most N processes (0 = all)")

	// kill command flags
	killCmd.Flags().BoolVar(&killOpts.Force, "force", false, "send SIGKILL instead of SIGTERM")
	killCmd.Flags().BoolVarP(&killOpts.Yes, "yes", "y", false, "don't ask for confirmation")

	// config init flags
	configInitCmd.Flags().BoolVar(&initOpts.Global, "global", false, "write the global config file")
	configInitCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite existing config")
	configInitCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "never prompt")
	configCmd.AddCommand(configInitCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")

	// Register all commands
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

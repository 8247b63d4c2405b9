// Package cli implements the sysmon command-line interface.
//
// The package is organized around Cobra commands, each delegating to a plain
// function that takes its dependencies as arguments so it can be driven from
// tests:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - Settings resolution (config file, environment, then flags)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command "sysmon" runs the interactive monitor. Subcommands:
//
//	sysmon snapshot      - Print one ranked table and exit
//	sysmon kill <pid>    - Send SIGTERM (or SIGKILL with --force) to a process
//	sysmon config init   - Write a commented default config file
//	sysmon version       - Print build information
//	sysmon completion    - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color, --cadence, --sort, --source,
// --proc-root) are persistent on the root command. A flag that is set wins
// over the config file, which wins over SYSMON_* environment variables and
// the built-in defaults.
package cli

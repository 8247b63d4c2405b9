// Package monitor implements sysmon's full-screen process table.
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds presentation state (table, kill prompt, help, layout)
//   - Update: Processes messages (keystrokes, tick events, new snapshots)
//   - View: Renders the current frame to a string for display
//
// All session logic lives in a session.Controller owned by the Model. Update
// runs on Bubble Tea's single event goroutine, so the controller and its
// accounting state are never touched concurrently.
//
// # Message Flow
//
//  1. tickMsg fires when the previous cycle's delay elapses
//  2. sampleCmd reads a snapshot off the event goroutine via Controller.Sample
//  3. snapshotMsg arrives; Controller.Apply accounts, ranks and returns a Frame
//  4. the next tick is scheduled for whatever remains of the cadence
//
// Each scheduled tick carries a sequence number. Scheduling a new tick (for
// example the fast refresh after a sort change) supersedes any tick already
// in flight, so exactly one refresh chain is ever live.
//
// While the kill prompt is open, ticks and snapshots are dropped. Leaving the
// prompt schedules a fast refresh that restarts the chain.
package monitor

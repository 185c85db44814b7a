// Package pipeline hosts the generator stages.
//
// A Host runs registered plugins in order against one Session. The session
// owns the configuration, the command model, the diagnostics accumulator
// and the generated outputs for the run. After every plugin the host calls
// Session.Checkpoint: accumulated error diagnostics abort the run and the
// remaining plugins are skipped.
package pipeline

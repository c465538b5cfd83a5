// Package trace records what the lumen front end is doing while it runs.
//
// Events are grouped by scope, from coarse to fine:
//
//   - ScopeDriver: one CLI command
//   - ScopePass: one tokenize or parse pass over a file
//   - ScopeModule: one file inside a directory run
//   - ScopeNode: single tokens and statements
//
// The level decides which scopes reach the output. LevelPhase keeps driver and
// pass events, LevelDetail adds files, LevelDebug adds tokens and statements.
//
// A tracer travels with the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// StreamTracer writes every event as it arrives, RingTracer keeps the most
// recent ones for a dump after a failure, MultiTracer feeds both.
package trace

// Package core defines the shared types used across prettylog.
//
// It provides the Level type for record priority, the Record type that
// carries a single log call into a format strategy, and the Frame and
// Stack types that describe a snapshot of the calling goroutine.
//
// Stacks are produced by a StackSource. RuntimeStackSource reads the
// live call stack with runtime.Callers and splits each function name
// into its declaring type and method, so that formatters can compare
// frames by type name and print them in a compact "Type.Method" form.
// Tests and embedding systems can supply their own StackSource to
// render synthetic stacks.
//
// Frames and stacks are only valid for the duration of the log call
// that captured them. They are never cached.
package core

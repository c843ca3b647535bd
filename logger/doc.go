// Package logger is the public API of prettylog. Most users only need to
// import this package and formatter.
//
// A Logger is immutable after construction: its adapters and minimum
// level are set once via the Builder and never modified. There is no
// package-level default logger; whoever composes the application's
// logging pipeline builds a Logger and passes it along.
//
//	pretty := formatter.NewBuilder().
//	    WithTag("APP").
//	    WithMethodCount(2).
//	    Build()
//
//	log := logger.NewBuilder().
//	    WithAdapter(logger.NewAdapter(pretty, logger.WithMinLevel(logger.DebugLevel))).
//	    Build()
//
//	log.Info("ready")
//	log.T("NET").Debugf("dialing %s", addr)
//
// T returns a Logger that adds a per-call tag; the formatter merges it
// with its own default tag ("APP-NET").
//
// Every logging method returns the error reported by the sinks, so
// callers that care about lost log lines can act on it. Adapters are
// all invoked even when one fails; the failures are combined.
//
// JSON, XML, Object and Err render structured payloads into the message
// body. NewSlogHandler lets log/slog records flow through the same
// pretty-print pipeline.
package logger

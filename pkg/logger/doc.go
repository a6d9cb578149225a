// Package logger builds the structured slog loggers used across fsmkit and
// defines the attribute helpers that keep state-machine log keys consistent.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level.
//   - WithOutput redirects records, WithAttr adds static attributes.
//   - WithContextValue / WithContextExtractors inject attributes taken from the
//     context.Context passed to the *Context logging methods.
//   - WithEnvironment / WithDevelopment / WithProduction apply per-environment defaults.
//
// Attribute helpers such as State, Event, FromState and ToState return slog.Attr
// values with fixed keys:
//
//	log.DebugContext(ctx, "event applied",
//	    logger.Event("open"),
//	    logger.FromState("closed"),
//	    logger.ToState("opened"),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger

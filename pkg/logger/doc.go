// Package logger builds structured *slog.Logger values from functional options.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which injects attributes pulled from the
// context.Context of every *Context logging call:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "signup"),
//	    logger.WithContextValue("submission_id", submissionKey{}),
//	)
//	log.InfoContext(ctx, "registration rejected", logger.InvalidFields(fields...))
//
// Attribute helpers in attr.go keep key names consistent. Helpers that take
// optional values (Error, SubmissionID) return an empty slog.Attr when there
// is nothing to record, which slog drops.
package logger

// Package logger builds *slog.Logger values for strcheck binaries.
//
// New applies functional options on top of production defaults (JSON, INFO,
// stdout) and wraps the chosen handler with a decorator that pulls attributes
// out of context.Context on every record, which is how request IDs reach the
// HTTP logs:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Service),
//	    logger.WithContextExtractors(requestid.LogExtractor),
//	)
//
// Attribute helpers (Error, RequestID, Kind, Valid, ...) keep key names
// consistent across packages.
package logger

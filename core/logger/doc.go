// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the CLI and the HTTP API.
// Console output uses colored capital levels and ISO8601 timestamps, JSON
// output is meant for log collectors.
//
// # Context Awareness
//
// WithRayID extracts the RayID (request id) from a Fiber context and attaches
// it to the log entry so all logs of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Dump created", zap.Uint("dump_id", dump.ID))
package logger

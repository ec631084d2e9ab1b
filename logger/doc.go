// Package logger provides structured logging on top of zerolog.
//
// It supports JSON and console output, level configuration, a process-wide
// global logger, and named component loggers.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("registry")
//	log.Debug("handler registered", logger.Fields("request", "orders.Place"))
//
// Request IDs placed on a context with ContextWithRequestID are attached by
// WithContext.
package logger

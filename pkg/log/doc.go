// Package log provides the logging abstraction scriptframe components
// write to.
//
// The Logger interface can be implemented by any logging library.
// Default implementations are provided for zerolog, a no-op logger, and
// an in-memory recorder for tests.
//
// # Usage
//
// Use the zerolog adapter for console output:
//
//	logger := log.NewZerolog(zerolog.InfoLevel)
//
// Or wrap an existing zerolog.Logger:
//
//	logger := log.Wrap(myZerolog)
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with existing logging
// infrastructure:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log

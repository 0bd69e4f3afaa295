// Package log defines the logging abstraction used by the aethokit client.
//
// The client stays silent unless a Logger is supplied; the default is a
// no-op. A zerolog adapter is provided for applications that already use
// zerolog, and any other logging library can be plugged in by implementing
// the Logger interface:
//
//	type MyLogger struct{ ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
//
// The gas key is never passed to a Logger by the client.
package log

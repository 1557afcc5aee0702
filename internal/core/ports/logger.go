package ports

// Logger is the console logger used by the resolver, orchestrator and bundlers
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})

	// SetDebug switches verbosity between debug and warnings-and-errors
	SetDebug(enabled bool)
}

package logging

// NullLogger discards everything. Useful for tests and as a default when
// no logger is configured.
type NullLogger struct{}

// NewNullLogger creates a logger that discards all messages.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(_ string, _ ...interface{}) {}
func (l *NullLogger) Info(_ string, _ ...interface{})    {}
func (l *NullLogger) Error(_ string, _ ...interface{})   {}

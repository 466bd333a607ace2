package logging

import "fmt"

// MockLogger records entries instead of writing them. Derived loggers share the
// same entry log so assertions can be made on the root mock.
type MockLogger struct {
	log    *entryLog
	err    error
	fields []Field
}

// LogEntry is one captured call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

type entryLog struct {
	entries []LogEntry
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{log: &entryLog{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.log == nil {
		m.log = &entryLog{}
	}
	all := make([]Field, 0, len(m.fields)+len(fields))
	all = append(all, m.fields...)
	all = append(all, fields...)
	m.log.entries = append(m.log.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.err,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatalf records a FATAL entry; it does not exit.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

func (m *MockLogger) WithError(err error) Logger {
	m.ensure()
	return &MockLogger{log: m.log, err: err, fields: m.fields}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.ensure()
	all := make([]Field, 0, len(m.fields)+len(fields))
	all = append(all, m.fields...)
	all = append(all, fields...)
	return &MockLogger{log: m.log, err: m.err, fields: all}
}

func (m *MockLogger) ensure() {
	if m.log == nil {
		m.log = &entryLog{}
	}
}

// Entries returns every captured entry in call order.
func (m *MockLogger) Entries() []LogEntry {
	if m.log == nil {
		return nil
	}
	return m.log.entries
}

// EntriesByLevel filters captured entries by level ("DEBUG", "INFO", ...).
func (m *MockLogger) EntriesByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// HasEntry reports whether an entry with level and message was captured.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, e := range m.Entries() {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}

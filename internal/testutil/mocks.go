package testutil

import (
	"errors"
	"sync"

	"cpstat/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockFetcher implements fetchers.FetcherInterface with canned ratings and a
// call log, so pipeline tests can assert that no network fetch happened.
type MockFetcher struct {
	Name    string
	Ratings map[string]int
	Err     error
	Calls   []string
}

func (m *MockFetcher) Platform() string {
	return m.Name
}

func (m *MockFetcher) Fetch(username string) (int, error) {
	m.Calls = append(m.Calls, username)
	if m.Err != nil {
		return 0, m.Err
	}
	rating, ok := m.Ratings[username]
	if !ok {
		return 0, errors.New("no rating")
	}
	return rating, nil
}

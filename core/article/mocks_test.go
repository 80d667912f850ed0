package article

import (
	"context"
	"sync"
	"time"
)

// mockStrategy is a hand-written Strategy with a function field
type mockStrategy struct {
	name        string
	AttemptFunc func(ctx context.Context, url string) Attempt

	mu    sync.Mutex
	calls []string
}

func (m *mockStrategy) Name() string { return m.name }

func (m *mockStrategy) Attempt(ctx context.Context, url string) Attempt {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	if m.AttemptFunc != nil {
		return m.AttemptFunc(ctx, url)
	}
	return Attempt{}
}

func (m *mockStrategy) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// recordingLogger keeps every message so tests can assert on them
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record(msg) }

// recordingMetrics keeps outcomes as "strategy:outcome" and final outcomes
type recordingMetrics struct {
	mu          sync.Mutex
	attempts    []string
	extractions []string
}

func (m *recordingMetrics) ObserveStrategy(strategy, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, strategy+":"+outcome)
}

func (m *recordingMetrics) ObserveExtraction(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extractions = append(m.extractions, outcome)
}

package engine

import "time"

// MockTimeProvider provides a controllable time source for testing
// Unlike the real provider it can be moved backwards to simulate clock anomalies
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance moves the mocked time by d, negative values rewind
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}

// AdvanceSeconds is Advance for fractional seconds
func (m *MockTimeProvider) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}

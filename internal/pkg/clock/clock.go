package clock

import "time"

// Clock abstracts "now" for code that validates times, so tests can pin it.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced clock for tests. Not safe for concurrent
// mutation; tests move it between assertions, not during them.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.now = t
}

func (c *MockClock) Add(d time.Duration) {
	c.now = c.now.Add(d)
}

package clock

import "time"

// Clock abstracts time so session expiry and QR code deadlines can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// FixedClock reports a preset instant, adjustable from tests.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}

func (c *FixedClock) Set(t time.Time) {
	c.now = t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

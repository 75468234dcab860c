package service

import (
	"sync"
	"time"
)

// stepClock returns a strictly increasing time on every call
type stepClock struct {
	mu   sync.Mutex
	next time.Time
}

func newStepClock() *stepClock {
	return &stepClock{next: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(time.Second)
	return now
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

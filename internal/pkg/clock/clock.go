// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/pokedex/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Expired reports whether something stamped at since has outlived ttl.
// A ttl of zero or less never expires.
func Expired(c Clock, since time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return !c.Now().Before(since.Add(ttl))
}

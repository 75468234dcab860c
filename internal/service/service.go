package service

import (
	"strings"
	"time"
)

// Option configures a service
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for record timestamps
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// timestamp is millisecond precision, the finest every backend keeps
func (o options) timestamp() time.Time {
	return o.now().UTC().Truncate(time.Millisecond)
}

// trimmed returns the trimmed value, nil stays nil
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// nonEmpty returns the trimmed value, or nil when it is missing or blank
func nonEmpty(s *string) *string {
	v := trimmed(s)
	if v == nil || *v == "" {
		return nil
	}
	return v
}

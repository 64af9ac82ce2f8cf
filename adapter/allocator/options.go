package allocator

import "github.com/sirupsen/logrus"

// WithLimit caps the number of bytes the allocator hands out at once. Zero or
// a negative value removes the cap.
func WithLimit(bytes int) Option {
	return func(a *Allocator) {
		a.limit = bytes
	}
}

// WithLogger sets the logger used to report release mismatches.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Allocator) {
		a.logger = l
	}
}

// Option configures behavior through the functional options pattern.
type Option func(*Allocator)

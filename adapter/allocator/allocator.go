// Package allocator contains the default [domain.Allocator] implementation,
// backed by the Go heap with an optional byte budget.
package allocator

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

// MaxSize is the largest buffer Allocate will attempt, in bytes. It stays
// below the largest single allocation the Go runtime accepts on 64-bit
// platforms.
const MaxSize = min(math.MaxInt, 1<<47)

// Allocator implements [domain.Allocator].
type Allocator struct {
	limit  int
	inUse  int
	logger logrus.FieldLogger
}

// NewAllocator returns a new implementation of [domain.Allocator].
func NewAllocator(opts ...Option) domain.Allocator {
	a := Allocator{
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return &a
}

// Allocate implements [domain.Allocator]. Sizes above [MaxSize], and any size
// the runtime refuses, report [domain.ErrNoMemory] instead of panicking.
func (a *Allocator) Allocate(size int) (buf []byte, err error) {
	if size < 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: cannot allocate %d bytes", domain.ErrNoMemory, size)
	}
	if a.limit > 0 && size > a.limit-a.inUse {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", domain.ErrNoMemory, size, a.inUse, a.limit)
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %d bytes: %v", domain.ErrNoMemory, size, r)
		}
	}()
	buf = make([]byte, size)
	a.inUse += size
	return buf, nil
}

// Release implements [domain.Allocator]. Releasing more bytes than are in use
// means a buffer was released twice or came from elsewhere; it is logged and
// InUse drops to zero.
func (a *Allocator) Release(b []byte) {
	if len(b) > a.inUse {
		a.logger.WithFields(logrus.Fields{
			"released": len(b),
			"in_use":   a.inUse,
		}).Warn("released more bytes than allocated")
		a.inUse = 0
		return
	}
	a.inUse -= len(b)
}

// InUse implements [domain.Allocator].
func (a *Allocator) InUse() int {
	return a.inUse
}

package domain

import "github.com/sirupsen/logrus"

// MinGrowthFactor is the smallest growth factor that keeps appends amortized
// O(1).
const MinGrowthFactor = 1.5

// DefaultGrowthFactor doubles the capacity of a full list.
const DefaultGrowthFactor = 2.0

// WithItemSize sets the byte size of every record. Required.
func WithItemSize(n int) ListOption {
	return func(lo *ListOptions) {
		lo.ItemSize = n
	}
}

// WithAllocated sets the initial capacity, in records. Zero defers the
// allocation to the first append.
func WithAllocated(n int) ListOption {
	return func(lo *ListOptions) {
		lo.Allocated = n
	}
}

// WithGrowthFactor sets the factor applied to the capacity of a full list.
func WithGrowthFactor(f float64) ListOption {
	return func(lo *ListOptions) {
		lo.GrowthFactor = f
	}
}

// WithAllocator sets the [Allocator] that provides the list buffer.
func WithAllocator(a Allocator) ListOption {
	return func(lo *ListOptions) {
		lo.Allocator = a
	}
}

// WithInvalidateOnSet makes [List.Set] bump the generation, invalidating
// iterators taken before the overwrite.
func WithInvalidateOnSet(b bool) ListOption {
	return func(lo *ListOptions) {
		lo.InvalidateOnSet = b
	}
}

// ListOption configures a list through the functional options pattern.
type ListOption func(*ListOptions)

// ListOptions contains parameters for creating a [List].
type ListOptions struct {
	// ItemSize is the byte size of every record.
	ItemSize int
	// Allocated is the initial capacity in records.
	Allocated int
	// GrowthFactor multiplies the capacity of a full list.
	GrowthFactor float64
	// Allocator provides the buffer.
	Allocator Allocator
	// InvalidateOnSet bumps the generation on in-place overwrites.
	InvalidateOnSet bool
}

// WithABIRegistry sets the [Registry] used to resolve handles.
func WithABIRegistry(r Registry) ABIOption {
	return func(ao *ABIOptions) {
		ao.Registry = r
	}
}

// WithABILogger sets the logger used for handle lifecycle messages.
func WithABILogger(l logrus.FieldLogger) ABIOption {
	return func(ao *ABIOptions) {
		ao.Logger = l
	}
}

// WithABIListFactory sets the function used to build lists.
func WithABIListFactory(f ListFactory) ABIOption {
	return func(ao *ABIOptions) {
		ao.ListFactory = f
	}
}

// WithABIListOptions appends options applied to every list created through
// the ABI. Item size and capacity always come from the call itself.
func WithABIListOptions(opts ...ListOption) ABIOption {
	return func(ao *ABIOptions) {
		ao.ListOptions = append(ao.ListOptions, opts...)
	}
}

// ABIOption configures the ABI surface through the functional options
// pattern.
type ABIOption func(*ABIOptions)

// ABIOptions contains parameters for the ABI surface.
type ABIOptions struct {
	Registry    Registry
	Logger      logrus.FieldLogger
	ListFactory ListFactory
	ListOptions []ListOption
}

package domain

import (
	"errors"
	"strconv"
)

// Status is the integer result returned by every fallible ABI entry point.
// Values are part of the binary contract and never change.
type Status int

// Stable status codes.
const (
	StatusOK              Status = 0
	StatusIndex           Status = -1
	StatusNoMemory        Status = -2
	StatusMutated         Status = -3
	StatusIterExhausted   Status = -4
	StatusInvalidArgument Status = -5
)

// OK reports whether s is [StatusOK].
func (s Status) OK() bool { return s == StatusOK }

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIndex:
		return "index out of range"
	case StatusNoMemory:
		return "no memory"
	case StatusMutated:
		return "mutated"
	case StatusIterExhausted:
		return "iterator exhausted"
	case StatusInvalidArgument:
		return "invalid argument"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Err returns the sentinel error for s, or nil for [StatusOK]. Unknown codes
// map to [ErrInvalidArgument].
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusIndex:
		return ErrIndex
	case StatusNoMemory:
		return ErrNoMemory
	case StatusMutated:
		return ErrMutated
	case StatusIterExhausted:
		return ErrIterExhausted
	}
	return ErrInvalidArgument
}

// StatusOf maps an error returned by the Go surface to its status code. Any
// error not recognised as one of the engine sentinels is reported as
// [StatusInvalidArgument].
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrIndex):
		return StatusIndex
	case errors.Is(err, ErrNoMemory):
		return StatusNoMemory
	case errors.Is(err, ErrMutated):
		return StatusMutated
	case errors.Is(err, ErrIterExhausted):
		return StatusIterExhausted
	}
	return StatusInvalidArgument
}

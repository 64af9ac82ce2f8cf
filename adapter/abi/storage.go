package abi

import (
	"encoding/binary"
	"math"

	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

// Iterator storage layout, little endian:
//
//	[0:8]   tag, marks storage written by IterInit
//	[8:16]  handle
//	[16:24] cursor
//	[24:32] captured generation
const (
	offTag        = 0
	offHandle     = 8
	offCursor     = 16
	offGeneration = 24
	storageSize   = 32
)

// "reclist\x01"
const storageTag uint64 = 0x017473696c636572

type iterState struct {
	handle     domain.Handle
	cursor     int
	generation uint64
}

func (st iterState) encode(b []byte) {
	binary.LittleEndian.PutUint64(b[offTag:], storageTag)
	binary.LittleEndian.PutUint64(b[offHandle:], uint64(st.handle))
	binary.LittleEndian.PutUint64(b[offCursor:], uint64(st.cursor))
	binary.LittleEndian.PutUint64(b[offGeneration:], st.generation)
}

func decodeState(b []byte) (iterState, error) {
	if len(b) < storageSize || binary.LittleEndian.Uint64(b[offTag:]) != storageTag {
		return iterState{}, domain.ErrIteratorStorage
	}
	cursor := binary.LittleEndian.Uint64(b[offCursor:])
	if cursor > math.MaxInt {
		return iterState{}, domain.ErrIteratorStorage
	}
	return iterState{
		handle:     domain.Handle(binary.LittleEndian.Uint64(b[offHandle:])),
		cursor:     int(cursor),
		generation: binary.LittleEndian.Uint64(b[offGeneration:]),
	}, nil
}

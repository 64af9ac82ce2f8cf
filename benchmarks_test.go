package reclist_test

import (
	"encoding/binary"
	"testing"

	"github.com/vinicius-lino-figueiredo/reclist"
)

func BenchmarkAppend(b *testing.B) {
	rec := binary.LittleEndian.AppendUint64(nil, 42)

	b.Run("Allocated=0", func(b *testing.B) {
		l, _ := reclist.NewList(reclist.WithItemSize(8))
		for b.Loop() {
			l.Append(rec)
		}
	})

	b.Run("Allocated=1M", func(b *testing.B) {
		l, _ := reclist.NewList(reclist.WithItemSize(8), reclist.WithAllocated(1<<20))
		for b.Loop() {
			l.Append(rec)
		}
	})

	b.Run("GrowthFactor=1.5", func(b *testing.B) {
		l, _ := reclist.NewList(reclist.WithItemSize(8), reclist.WithGrowthFactor(1.5))
		for b.Loop() {
			l.Append(rec)
		}
	})
}

func BenchmarkGet(b *testing.B) {
	l, _ := reclist.NewList(reclist.WithItemSize(8))
	for n := range 1024 {
		l.Append(binary.LittleEndian.AppendUint64(nil, uint64(n)))
	}
	out := make([]byte, 8)
	var i int
	for b.Loop() {
		l.Get(i&1023, out)
		i++
	}
}

func BenchmarkPop(b *testing.B) {
	rec := make([]byte, 8)

	b.Run("Last", func(b *testing.B) {
		l, _ := reclist.NewList(reclist.WithItemSize(8))
		for b.Loop() {
			l.Append(rec)
			l.PopLast(rec)
		}
	})

	b.Run("First/1024", func(b *testing.B) {
		l, _ := reclist.NewList(reclist.WithItemSize(8))
		for range 1024 {
			l.Append(rec)
		}
		for b.Loop() {
			l.Pop(0, rec)
			l.Append(rec)
		}
	})
}

func BenchmarkIterate(b *testing.B) {
	l, _ := reclist.NewList(reclist.WithItemSize(8))
	for n := range 1024 {
		l.Append(binary.LittleEndian.AppendUint64(nil, uint64(n)))
	}

	b.Run("Iterator", func(b *testing.B) {
		for b.Loop() {
			it := reclist.NewIterator(l)
			for {
				if _, err := it.Next(); err != nil {
					break
				}
			}
		}
	})

	b.Run("ABI", func(b *testing.B) {
		_, h := reclist.New(8, 1024)
		defer reclist.Free(h)
		for n := range 1024 {
			reclist.Append(h, binary.LittleEndian.AppendUint64(nil, uint64(n)))
		}
		storage := make([]byte, reclist.IterSizeof())
		for b.Loop() {
			reclist.IterInit(storage, h)
			for {
				if st, _ := reclist.IterNext(storage); st != reclist.StatusOK {
					break
				}
			}
		}
	})
}

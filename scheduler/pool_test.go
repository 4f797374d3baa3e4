package scheduler

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachParallelVisitsEveryIndex(t *testing.T) {
	p := New()
	defer p.Close()

	const n = 500
	var seen [n]int32
	p.ForEachParallel(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, v := range seen {
		require.Equalf(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestForEachParallelSliceConvenience(t *testing.T) {
	p := New()
	defer p.Close()

	items := []int{1, 2, 3, 4, 5}
	var sum int64
	ForEachParallelSlice(p, items, func(v int) {
		atomic.AddInt64(&sum, int64(v))
	})
	assert.Equal(t, int64(15), sum)
}

func TestForEachParallelZeroCountIsNoop(t *testing.T) {
	p := New()
	defer p.Close()
	p.ForEachParallel(0, func(int) { t.Fatal("should not be called") })
}

func TestForEachParallelRePanics(t *testing.T) {
	p := New()
	defer p.Close()

	defer func() {
		r := recover()
		assert.Equal(t, "boom", r)
	}()
	p.ForEachParallel(10, func(i int) {
		if i == 3 {
			panic("boom")
		}
	})
	t.Fatal("expected panic to propagate")
}

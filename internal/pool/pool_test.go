package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    int
	reset int
}

func newTestPool(size int) (*Pool[*item], *int) {
	created := 0
	p := New(
		func() *item {
			created++
			return &item{id: created}
		},
		func(it *item) { it.reset++ },
		size,
	)
	return p, &created
}

func TestNewPreallocatesInactive(t *testing.T) {
	p, created := newTestPool(4)

	assert.Equal(t, 4, *created)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 0, p.ActiveCount())
	assert.Empty(t, p.Active())
}

func TestAcquireReleaseRestoresActiveCount(t *testing.T) {
	p, _ := newTestPool(2)
	first := p.Acquire()
	before := p.ActiveCount()

	it := p.Acquire()
	require.True(t, p.Release(it))

	assert.Equal(t, before, p.ActiveCount())
	assert.Equal(t, 1, it.reset)
	assert.Equal(t, 0, first.reset)
}

func TestAcquireReusesReleased(t *testing.T) {
	p, created := newTestPool(1)
	it := p.Acquire()
	p.Release(it)

	again := p.Acquire()

	assert.Same(t, it, again)
	assert.Equal(t, 1, *created)
}

func TestAcquireGrowsPastInitialSize(t *testing.T) {
	const n = 3
	p, created := newTestPool(n)

	seen := map[*item]bool{}
	for i := 0; i < n+1; i++ {
		seen[p.Acquire()] = true
	}

	assert.Len(t, seen, n+1)
	assert.Equal(t, n+1, *created)
	assert.Equal(t, n+1, p.ActiveCount())
	assert.Equal(t, n+1, p.Len())
}

func TestReleaseUnknownIsNoop(t *testing.T) {
	p, _ := newTestPool(2)
	p.Acquire()

	stranger := &item{}
	assert.False(t, p.Release(stranger))
	assert.Equal(t, 0, stranger.reset)
	assert.Equal(t, 1, p.ActiveCount())
}

func TestForEachInsertionOrder(t *testing.T) {
	p, _ := newTestPool(0)
	a, b, c := p.Acquire(), p.Acquire(), p.Acquire()
	p.Release(b)

	var ids []int
	p.ForEach(func(it *item) { ids = append(ids, it.id) })

	assert.Equal(t, []int{a.id, c.id}, ids)
	assert.Equal(t, []*item{a, c}, p.Active())
}

func TestForEachAllowsRelease(t *testing.T) {
	p, _ := newTestPool(3)
	for i := 0; i < 3; i++ {
		p.Acquire()
	}

	visited := 0
	p.ForEach(func(it *item) {
		visited++
		p.Release(it)
	})

	assert.Equal(t, 3, visited)
	assert.Equal(t, 0, p.ActiveCount())
}

func TestNilResetAllowed(t *testing.T) {
	p := New(func() *item { return &item{} }, nil, 1)
	it := p.Acquire()

	assert.True(t, p.Release(it))
	assert.Equal(t, 0, p.ActiveCount())
}

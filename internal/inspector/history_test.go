package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-inspector/internal/imaging"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	a, b, c := imaging.New(1, 1, 1), imaging.New(1, 1, 3), imaging.New(1, 1, 4)

	h.Push(a)
	h.Push(b)
	h.Push(c)
	require.Equal(t, 2, h.Len())

	got, ok := h.Pop()
	require.True(t, ok)
	assert.Same(t, c, got)

	got, ok = h.Pop()
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = h.Pop()
	assert.False(t, ok)
}

func TestHistoryZeroDepth(t *testing.T) {
	h := NewHistory(-3)
	h.Push(imaging.New(1, 1, 1))
	assert.Equal(t, 0, h.Len())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(3)
	h.Push(imaging.New(1, 1, 1))
	h.Push(imaging.New(1, 1, 1))
	h.Clear()

	assert.Equal(t, 0, h.Len())
	_, ok := h.Pop()
	assert.False(t, ok)
}

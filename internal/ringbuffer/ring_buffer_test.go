package ringbuffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/ringbuffer"
)

func TestRingBuffer(t *testing.T) {
	rb := ringbuffer.New[int](3)
	assert.Empty(t, rb.Newest())
	_, ok := rb.Back()
	assert.False(t, ok)

	for i := range 3 {
		require.True(t, rb.Push(i+1))
	}
	assert.True(t, rb.IsFull())
	assert.False(t, rb.Push(4))
	assert.Equal(t, []int{3, 2, 1}, rb.Newest())

	oldest, ok := rb.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, oldest)
	require.True(t, rb.Push(4))
	assert.Equal(t, []int{4, 3, 2}, rb.Newest())

	back, ok := rb.Back()
	require.True(t, ok)
	assert.Equal(t, 4, back)

	rb.DropBack()
	rb.DropBack()
	assert.Equal(t, []int{2}, rb.Newest())
	require.True(t, rb.Push(5))
	require.True(t, rb.Push(6))
	assert.Equal(t, []int{6, 5, 2}, rb.Newest())
	assert.Equal(t, 3, rb.Size())

	rb.DropBack()
	rb.DropBack()
	rb.DropBack()
	rb.DropBack()
	assert.Zero(t, rb.Size())
	_, ok = rb.Pop()
	assert.False(t, ok)
}

func TestRingBufferZeroCapacity(t *testing.T) {
	rb := ringbuffer.New[string](0)
	require.True(t, rb.Push("a"))
	assert.True(t, rb.IsFull())
	assert.Equal(t, []string{"a"}, rb.Newest())
}

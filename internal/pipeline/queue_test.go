package pipeline_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bourse/internal/pipeline"
)

func TestQueue_TryPop_EmptyReturnsFalse(t *testing.T) {
	q := pipeline.NewQueue[int]()
	_, ok := q.TryPop()
	assert.False(t, ok)
}

func TestQueue_PushThenTryPop_FIFO(t *testing.T) {
	q := pipeline.NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	v, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = q.TryPop()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestQueue_Pop_BlocksUntilPush(t *testing.T) {
	q := pipeline.NewQueue[string]()

	var wg sync.WaitGroup
	var got string
	var ok bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		got, ok = q.Pop()
	}()

	// Give the goroutine a chance to block on an empty queue.
	time.Sleep(20 * time.Millisecond)
	q.Push("hello")
	wg.Wait()

	assert.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestQueue_Close_UnblocksPop(t *testing.T) {
	q := pipeline.NewQueue[int]()

	done := make(chan struct{})
	var ok bool
	go func() {
		_, ok = q.Pop()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pop did not unblock after Close")
	}
	assert.False(t, ok)
}

func TestQueue_Push_AfterCloseIsNoOp(t *testing.T) {
	q := pipeline.NewQueue[int]()
	q.Close()
	q.Push(1)

	_, ok := q.TryPop()
	assert.False(t, ok)
}

package feedback

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastResults(t *testing.T) {
	t.Run("push and last", func(t *testing.T) {
		h := NewLastResults(3)
		h.Push("first", Result{Classification: Clean, Sentiment: Neutral})
		h.Push("second", Result{Classification: Abusive})

		last := h.Last(10)
		assert.Len(t, last, 2)
		assert.Equal(t, "first", last[0].Text)
		assert.Equal(t, "second", last[1].Text)
	})

	t.Run("overflow keeps newest", func(t *testing.T) {
		h := NewLastResults(2)
		h.Push("one", Result{Classification: Clean})
		h.Push("two", Result{Classification: Clean})
		h.Push("three", Result{Classification: Clean})

		last := h.Last(10)
		assert.Len(t, last, 2)
		assert.Equal(t, "two", last[0].Text)
		assert.Equal(t, "three", last[1].Text)
	})

	t.Run("limit results", func(t *testing.T) {
		h := NewLastResults(5)
		for i := 0; i < 5; i++ {
			h.Push(fmt.Sprintf("msg-%d", i), Result{Classification: Clean})
		}
		last := h.Last(2)
		assert.Len(t, last, 2)
		assert.Equal(t, "msg-3", last[0].Text)
		assert.Equal(t, "msg-4", last[1].Text)
	})

	t.Run("zero and negative n", func(t *testing.T) {
		h := NewLastResults(2)
		h.Push("one", Result{Classification: Clean})
		assert.Empty(t, h.Last(0))
		assert.Empty(t, h.Last(-1))
	})

	t.Run("minimum size enforced", func(t *testing.T) {
		h := NewLastResults(0)
		assert.Equal(t, 1, h.Size())
	})
}

func TestLastResults_Concurrent(t *testing.T) {
	h := NewLastResults(100)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Push(fmt.Sprintf("w%d-%d", n, j), Result{Classification: Clean})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Last(10)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, h.Last(100), 100)
}

package textlens

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(id string) *AnalysisResult {
	return &AnalysisResult{ID: id}
}

func ids(results []*AnalysisResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestHistory(t *testing.T) {
	h := NewHistory(0)
	h.Add(result("a"))
	h.Add(result("b"))
	h.Add(result("c"))
	h.Add(nil)

	assert.Equal(t, []string{"c", "b", "a"}, ids(h.List()))
	assert.Equal(t, 3, h.Len())

	got, ok := h.Get("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)
	_, ok = h.Get("zzz")
	assert.False(t, ok)

	assert.True(t, h.Remove("b"))
	assert.False(t, h.Remove("b"))
	assert.Equal(t, []string{"c", "a"}, ids(h.List()))

	h.Clear()
	assert.Empty(t, h.List())
	assert.NotNil(t, h.List())
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	for _, id := range []string{"a", "b", "c"} {
		h.Add(result(id))
	}
	assert.Equal(t, []string{"c", "b"}, ids(h.List()))
}

func TestHistoryListIsSnapshot(t *testing.T) {
	h := NewHistory(0)
	h.Add(result("a"))

	list := h.List()
	list[0] = result("x")
	h.Add(result("b"))

	assert.Equal(t, []string{"b", "a"}, ids(h.List()))
	assert.Len(t, list, 1)
}

func TestHistoryConcurrent(t *testing.T) {
	h := NewHistory(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprint(i)
			h.Add(result(id))
			h.Get(id)
			h.List()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, h.Len())
}

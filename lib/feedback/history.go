package feedback

import (
	"container/ring"
	"sync"
)

// HistoryEntry is a single classified submission kept in the history.
type HistoryEntry struct {
	Text   string `json:"text"`
	Result Result `json:"result"`
}

// LastResults keeps track of last N classification results, thread-safe.
type LastResults struct {
	entries *ring.Ring
	size    int
	lock    sync.RWMutex
}

// NewLastResults creates new results tracker
func NewLastResults(size int) *LastResults {
	// minimum size is 1
	if size < 1 {
		size = 1
	}
	return &LastResults{
		entries: ring.New(size),
		size:    size,
	}
}

// Push adds new classified submission to the history
func (h *LastResults) Push(text string, res Result) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.entries.Value = HistoryEntry{Text: text, Result: res}
	h.entries = h.entries.Next()
}

// Last returns up to n last entries in chronological order (oldest to newest)
func (h *LastResults) Last(n int) []HistoryEntry {
	if n < 1 {
		return []HistoryEntry{}
	}

	h.lock.RLock()
	defer h.lock.RUnlock()

	if n > h.size {
		n = h.size
	}

	result := make([]HistoryEntry, 0, n)
	h.entries.Do(func(v interface{}) {
		if v != nil {
			if e, ok := v.(HistoryEntry); ok {
				result = append(result, e)
			}
		}
	})

	if len(result) > n {
		result = result[len(result)-n:]
	}
	return result
}

// Size returns the size of the history
func (h *LastResults) Size() int {
	return h.size
}

package cache

import (
	"sync"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
)

const DefaultHistorySize = 10

// Cache keeps the most recent question/answer pairs of each chat.
type Cache struct {
	mu      sync.Mutex
	size    int
	history map[int64][]models.QA
}

func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Cache{
		size:    size,
		history: make(map[int64][]models.QA),
	}
}

// AddQA appends qa to the chat's history and drops the oldest entries
// beyond the cache size.
func (c *Cache) AddQA(chatID int64, qa models.QA) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := append(c.history[chatID], qa)
	if len(h) > c.size {
		h = append([]models.QA(nil), h[len(h)-c.size:]...)
	}
	c.history[chatID] = h
}

// History returns up to limit of the chat's most recent entries, oldest
// first. A non-positive limit returns them all.
func (c *Cache) History(chatID int64, limit int) []models.QA {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.history[chatID]
	if limit > 0 && len(h) > limit {
		h = h[len(h)-limit:]
	}
	out := make([]models.QA, len(h))
	copy(out, h)
	return out
}

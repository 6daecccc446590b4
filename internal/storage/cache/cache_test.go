package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qa(i int) models.QA {
	return models.QA{Question: fmt.Sprintf("q%d", i), Answer: fmt.Sprintf("a%d", i)}
}

func TestCache_History(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		add   int
		limit int
		want  []models.QA
	}{
		{name: "empty", add: 0, limit: 5, want: []models.QA{}},
		{name: "under limit", add: 2, limit: 5, want: []models.QA{qa(1), qa(2)}},
		{name: "last five", add: 7, limit: 5, want: []models.QA{qa(3), qa(4), qa(5), qa(6), qa(7)}},
		{name: "all kept up to size", add: 12, limit: 0, want: []models.QA{qa(3), qa(4), qa(5), qa(6), qa(7), qa(8), qa(9), qa(10), qa(11), qa(12)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCache(DefaultHistorySize)
			for i := 1; i <= tt.add; i++ {
				c.AddQA(1, qa(i))
			}

			assert.Equal(t, tt.want, c.History(1, tt.limit))
			assert.Empty(t, c.History(2, 0), "chats are independent")
		})
	}
}

func TestCache_HistoryIsCopy(t *testing.T) {
	t.Parallel()

	c := NewCache(3)
	c.AddQA(1, qa(1))

	h := c.History(1, 0)
	h[0].Answer = "changed"

	assert.Equal(t, "a1", c.History(1, 0)[0].Answer)
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewCache(10)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.AddQA(1, qa(i))
			_ = c.History(1, 5)
		}(i)
	}
	wg.Wait()

	require.Len(t, c.History(1, 0), 10)
}

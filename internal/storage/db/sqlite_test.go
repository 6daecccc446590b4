package db

import (
	"context"
	"testing"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.DBConfig {
	return config.DBConfig{
		DSN: ":memory:",
		Cfg: config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	}
}

func TestInitDB(t *testing.T) {
	t.Parallel()

	db, err := InitDB(memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var tables []string
	err = db.SelectContext(context.Background(), &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"flashcards", "quiz_stats", "quiz_topics", "study_stats"}, tables)
}

func TestInitDB_Idempotent(t *testing.T) {
	t.Parallel()

	db, err := InitDB(memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)
}

func TestInitDB_CorrectNeverExceedsTotal(t *testing.T) {
	t.Parallel()

	db, err := InitDB(memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`INSERT INTO quiz_stats (user_id, correct, total) VALUES (1, 2, 1)`)
	require.Error(t, err)
}

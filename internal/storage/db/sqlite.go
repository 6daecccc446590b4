package db

import (
	"context"
	"fmt"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/config"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS quiz_stats (
	user_id INTEGER PRIMARY KEY,
	correct INTEGER NOT NULL DEFAULT 0,
	total   INTEGER NOT NULL DEFAULT 0,
	CHECK (correct <= total)
);

CREATE TABLE IF NOT EXISTS quiz_topics (
	user_id INTEGER NOT NULL,
	topic   TEXT    NOT NULL,
	hits    INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, topic)
);

CREATE TABLE IF NOT EXISTS study_stats (
	user_id   INTEGER PRIMARY KEY,
	quizzes   INTEGER NOT NULL DEFAULT 0,
	practice  INTEGER NOT NULL DEFAULT 0,
	pomodoros INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS flashcards (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id       INTEGER  NOT NULL,
	question      TEXT     NOT NULL,
	answer        TEXT     NOT NULL,
	topic         TEXT     NOT NULL,
	created       DATETIME NOT NULL,
	next_review   DATETIME NOT NULL,
	interval_days REAL     NOT NULL,
	ease_factor   REAL     NOT NULL,
	reviews       INTEGER  NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS flashcards_user_idx ON flashcards (user_id, id);
`

// InitDB opens the study database and creates its tables. With the
// default ":memory:" DSN the data lives only as long as the process.
func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db migrate: %w", err)
	}

	return db, nil
}

// Package persistence provides SQLite-based match history storage for
// the surrounding application. The rules engine itself never touches
// it; only cmd-level drivers record finished sessions here.
package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/phalanxdev/phalanx/internal/game"
)

// DB wraps a SQLite connection for match history persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		turns INTEGER NOT NULL,
		enemies_start INTEGER NOT NULL,
		enemies_defeated INTEGER NOT NULL,
		finished_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS match_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		turn INTEGER NOT NULL,
		type TEXT NOT NULL,
		unit INTEGER,
		target INTEGER,
		damage INTEGER,
		blocked INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_match_events_match ON match_events(match_id, seq);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// MatchRecord summarizes one finished (or abandoned) session.
type MatchRecord struct {
	ID              uuid.UUID `db:"id"`
	Seed            int64     `db:"seed"`
	Outcome         string    `db:"outcome"`
	Turns           int       `db:"turns"`
	EnemiesStart    int       `db:"enemies_start"`
	EnemiesDefeated int       `db:"enemies_defeated"`
	FinishedAt      string    `db:"finished_at"`
}

// SaveMatch writes a match record along with its full event log.
func (db *DB) SaveMatch(rec MatchRecord, events []game.Event) error {
	if rec.FinishedAt == "" {
		rec.FinishedAt = time.Now().UTC().Format(time.RFC3339)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO matches
		(id, seed, outcome, turns, enemies_start, enemies_defeated, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Seed, rec.Outcome, rec.Turns,
		rec.EnemiesStart, rec.EnemiesDefeated, rec.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", rec.ID, err)
	}

	if _, err := tx.Exec("DELETE FROM match_events WHERE match_id = ?", rec.ID.String()); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO match_events
		(match_id, seq, turn, type, unit, target, damage, blocked)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for seq, e := range events {
		blocked := 0
		if e.Blocked {
			blocked = 1
		}
		_, err := stmt.Exec(
			rec.ID.String(), seq, e.Turn, game.EventTypeName(e.Type),
			e.Unit, e.Target, e.Damage, blocked,
		)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", seq, err)
		}
	}

	return tx.Commit()
}

// RecentMatches returns the most recently finished matches.
func (db *DB) RecentMatches(limit int) ([]MatchRecord, error) {
	rows, err := db.conn.Queryx(
		`SELECT id, seed, outcome, turns, enemies_start, enemies_defeated, finished_at
		 FROM matches ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var idStr string
		var rec MatchRecord
		if err := rows.Scan(&idStr, &rec.Seed, &rec.Outcome, &rec.Turns,
			&rec.EnemiesStart, &rec.EnemiesDefeated, &rec.FinishedAt); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse match id %q: %w", idStr, err)
		}
		rec.ID = id
		records = append(records, rec)
	}
	return records, rows.Err()
}

// EventCount returns the number of stored events for a match.
func (db *DB) EventCount(matchID uuid.UUID) (int, error) {
	var count int
	err := db.conn.Get(&count,
		"SELECT COUNT(*) FROM match_events WHERE match_id = ?", matchID.String())
	return count, err
}

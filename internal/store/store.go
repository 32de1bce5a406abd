// Package store archives finished games in SQLite. The engine never reads
// from it; the web service writes a record when a game ends.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Acos2ver/AnimalGame/internal/game"
)

type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID         string      `json:"id"`
	Winner     game.Player `json:"winner"`
	MoveCount  int         `json:"moveCount"`
	FinalBoard string      `json:"finalBoard"`
	FinishedAt time.Time   `json:"finishedAt"`
}

// MoveRecord is one executed move of a finished game.
type MoveRecord struct {
	Seq     int         `json:"seq"`
	Player  game.Player `json:"player"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	Capture bool        `json:"capture"`
}

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	winner TEXT NOT NULL,
	move_count INTEGER NOT NULL,
	final_board TEXT NOT NULL,
	finished_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS moves (
	game_id TEXT NOT NULL REFERENCES games(id),
	seq INTEGER NOT NULL,
	player TEXT NOT NULL,
	from_square TEXT NOT NULL,
	to_square TEXT NOT NULL,
	capture INTEGER NOT NULL,
	PRIMARY KEY (game_id, seq)
);`

// Open opens (creating if needed) the archive database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create archive schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame records a finished game and its moves in one transaction.
func (s *Store) SaveGame(rec GameRecord, moves []MoveRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO games (id, winner, move_count, final_board, finished_at) VALUES (?, ?, ?, ?, ?)",
		rec.ID, string(rec.Winner), rec.MoveCount, rec.FinalBoard, rec.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game %s: %w", rec.ID, err)
	}

	for _, mv := range moves {
		_, err = tx.Exec(
			"INSERT INTO moves (game_id, seq, player, from_square, to_square, capture) VALUES (?, ?, ?, ?, ?, ?)",
			rec.ID, mv.Seq, string(mv.Player), mv.From, mv.To, mv.Capture,
		)
		if err != nil {
			return fmt.Errorf("failed to insert move %d of game %s: %w", mv.Seq, rec.ID, err)
		}
	}

	return tx.Commit()
}

// ListGames returns all archived games, most recently finished first.
func (s *Store) ListGames() ([]GameRecord, error) {
	rows, err := s.db.Query(
		"SELECT id, winner, move_count, final_board, finished_at FROM games ORDER BY finished_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var winner string
		if err := rows.Scan(&rec.ID, &winner, &rec.MoveCount, &rec.FinalBoard, &rec.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game record: %w", err)
		}
		rec.Winner = game.Player(winner)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetMoves returns the recorded moves of an archived game in order.
func (s *Store) GetMoves(gameID string) ([]MoveRecord, error) {
	rows, err := s.db.Query(
		"SELECT seq, player, from_square, to_square, capture FROM moves WHERE game_id = ? ORDER BY seq",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves of game %s: %w", gameID, err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var mv MoveRecord
		var player string
		if err := rows.Scan(&mv.Seq, &player, &mv.From, &mv.To, &mv.Capture); err != nil {
			return nil, fmt.Errorf("failed to scan move record: %w", err)
		}
		mv.Player = game.Player(player)
		moves = append(moves, mv)
	}
	return moves, rows.Err()
}

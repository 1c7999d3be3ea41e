package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// SQLiteChatRepository persists chat histories in a SQLite file.
type SQLiteChatRepository struct {
	db *sql.DB
}

// OpenSQLiteChatRepository opens or creates the database at path and
// migrates the schema.
func OpenSQLiteChatRepository(path string) (*SQLiteChatRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	r := &SQLiteChatRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return r, nil
}

func (r *SQLiteChatRepository) migrate() error {
	_, err := r.db.Exec(`
	CREATE TABLE IF NOT EXISTS chat_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		speaker TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id, id);
	`)
	return err
}

func (r *SQLiteChatRepository) Append(ctx context.Context, sessionID string, msgs ...entity.ChatMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chat_messages (session_id, speaker, text, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range msgs {
		if _, err := stmt.ExecContext(ctx, sessionID, string(m.Speaker), m.Text, m.At.UnixNano()); err != nil {
			return fmt.Errorf("failed to insert chat message: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteChatRepository) List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT speaker, text, created_at FROM chat_messages
		WHERE session_id = ? ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	history := []entity.ChatMessage{}
	for rows.Next() {
		var (
			m       entity.ChatMessage
			speaker string
			at      int64
		)
		if err := rows.Scan(&speaker, &m.Text, &at); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		m.Speaker = entity.Speaker(speaker)
		m.At = time.Unix(0, at).UTC()
		history = append(history, m)
	}
	return history, rows.Err()
}

func (r *SQLiteChatRepository) Clear(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *SQLiteChatRepository) Close() error {
	return r.db.Close()
}

var _ port.ChatRepository = (*SQLiteChatRepository)(nil)

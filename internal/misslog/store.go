package misslog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pillaihoc/phoccy/internal/db"
)

// Miss is one unanswered query record.
type Miss struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists misses to the database for the curation API.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new miss. If m.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, m Miss) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO missed_queries (id, query, session_id) VALUES (?, ?, ?)",
		m.ID, m.Query, m.SessionID,
	)
	if err != nil {
		return fmt.Errorf("inserting missed query: %w", err)
	}
	return nil
}

// List returns misses newest first. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Miss, error) {
	query := "SELECT id, query, session_id, created_at FROM missed_queries ORDER BY created_at DESC"
	if limit > 0 || offset > 0 {
		if limit <= 0 {
			limit = -1 // sqlite: no limit, but OFFSET needs a LIMIT clause
		}
		query += fmt.Sprintf(" LIMIT %d", limit)
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying missed queries: %w", err)
	}
	defer rows.Close()

	var misses []Miss
	for rows.Next() {
		var m Miss
		var ts string
		if err := rows.Scan(&m.ID, &m.Query, &m.SessionID, &ts); err != nil {
			return nil, err
		}
		if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
			m.CreatedAt = t
		}
		misses = append(misses, m)
	}
	return misses, rows.Err()
}

// Delete removes a miss once it has been triaged into the catalog.
// Returns the number of deleted rows.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM missed_queries WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting missed query: %w", err)
	}
	return res.RowsAffected()
}

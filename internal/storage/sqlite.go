package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mcp-nutriserve/internal/game"
	"mcp-nutriserve/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrResultNotFound  = errors.New("order result not found")
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writes serialized and makes ":memory:" usable.
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS sessions (
        id TEXT PRIMARY KEY,
        customer_index INTEGER NOT NULL,
        total_score INTEGER NOT NULL,
        is_post_order INTEGER NOT NULL,
        last_result_id TEXT,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS plate_items (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        session_id TEXT NOT NULL,
        position INTEGER NOT NULL,
        food_id TEXT NOT NULL,
        instance_id TEXT NOT NULL,
        grams REAL NOT NULL,
        volume_ml REAL NOT NULL,
        FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
    );

    CREATE TABLE IF NOT EXISTS order_results (
        id TEXT PRIMARY KEY,
        session_id TEXT NOT NULL,
        customer_index INTEGER NOT NULL,
        customer_id TEXT NOT NULL,
        score INTEGER NOT NULL,
        feedback TEXT NOT NULL,
        reaction TEXT NOT NULL,
        penalties TEXT NOT NULL,
        served_at TEXT NOT NULL,
        FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
    );

    CREATE INDEX IF NOT EXISTS idx_plate_items_session_id ON plate_items(session_id);
    CREATE INDEX IF NOT EXISTS idx_order_results_session_id ON order_results(session_id, served_at);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveSession upserts the session row and replaces its plate items.
func (s *SQLiteStorage) SaveSession(sess *game.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var lastResultID sql.NullString
	if sess.LastResult != nil {
		lastResultID = sql.NullString{String: sess.LastResult.ID, Valid: true}
	}

	sessionQuery := `
        INSERT INTO sessions (id, customer_index, total_score, is_post_order, last_result_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            customer_index = excluded.customer_index,
            total_score = excluded.total_score,
            is_post_order = excluded.is_post_order,
            last_result_id = excluded.last_result_id,
            updated_at = excluded.updated_at
    `
	_, err = tx.Exec(sessionQuery,
		sess.ID, sess.CustomerIndex, sess.TotalScore, boolToInt(sess.IsPostOrder),
		lastResultID, formatTime(sess.CreatedAt), formatTime(sess.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM plate_items WHERE session_id = ?`, sess.ID); err != nil {
		return fmt.Errorf("failed to clear plate items: %w", err)
	}

	itemQuery := `
        INSERT INTO plate_items (session_id, position, food_id, instance_id, grams, volume_ml)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	for i, item := range sess.Plate.Items {
		_, err = tx.Exec(itemQuery, sess.ID, i, item.ID, item.InstanceID, item.Grams, item.VolumeML)
		if err != nil {
			return fmt.Errorf("failed to insert plate item: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) GetSession(id string) (*game.Session, error) {
	query := `
        SELECT id, customer_index, total_score, is_post_order, last_result_id, created_at, updated_at
        FROM sessions
        WHERE id = ?
    `
	sess := &game.Session{}
	var postOrder int
	var lastResultID sql.NullString
	var createdAtStr, updatedAtStr string

	err := s.db.QueryRow(query, id).Scan(
		&sess.ID, &sess.CustomerIndex, &sess.TotalScore, &postOrder,
		&lastResultID, &createdAtStr, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	sess.IsPostOrder = postOrder != 0

	if sess.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if sess.UpdatedAt, err = parseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	if err := s.loadPlateItems(sess); err != nil {
		return nil, fmt.Errorf("failed to load plate for session %s: %w", sess.ID, err)
	}

	if lastResultID.Valid {
		result, err := s.GetOrderResult(lastResultID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to load last result for session %s: %w", sess.ID, err)
		}
		sess.LastResult = result
	}

	return sess, nil
}

func (s *SQLiteStorage) loadPlateItems(sess *game.Session) error {
	query := `
        SELECT food_id, instance_id, grams, volume_ml
        FROM plate_items
        WHERE session_id = ?
        ORDER BY position
    `

	rows, err := s.db.Query(query, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to query plate items: %w", err)
	}
	defer rows.Close()

	var items []models.PlateItem
	for rows.Next() {
		item := models.PlateItem{}
		if err := rows.Scan(&item.ID, &item.InstanceID, &item.Grams, &item.VolumeML); err != nil {
			return fmt.Errorf("failed to scan plate item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate plate items: %w", err)
	}

	sess.Plate.Items = items
	return nil
}

func (s *SQLiteStorage) SaveOrderResult(result *models.OrderResult) error {
	penalties, err := json.Marshal(result.Penalties)
	if err != nil {
		return fmt.Errorf("failed to marshal penalties: %w", err)
	}

	query := `
        INSERT INTO order_results (id, session_id, customer_index, customer_id, score, feedback, reaction, penalties, served_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err = s.db.Exec(query,
		result.ID, result.SessionID, result.CustomerIndex, result.CustomerID, result.Score,
		result.Feedback, string(result.Reaction), string(penalties), formatTime(result.ServedAt))
	if err != nil {
		return fmt.Errorf("failed to insert order result: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetOrderResult(id string) (*models.OrderResult, error) {
	query := `
        SELECT id, session_id, customer_index, customer_id, score, feedback, reaction, penalties, served_at
        FROM order_results
        WHERE id = ?
    `
	result, err := scanOrderResult(s.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, id)
	}
	return result, err
}

// GetOrderResults returns a session's served orders, newest first.
func (s *SQLiteStorage) GetOrderResults(sessionID string, limit int) ([]*models.OrderResult, error) {
	query := `
        SELECT id, session_id, customer_index, customer_id, score, feedback, reaction, penalties, served_at
        FROM order_results
        WHERE session_id = ?
        ORDER BY served_at DESC, rowid DESC
        LIMIT ?
    `

	rows, err := s.db.Query(query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query order results: %w", err)
	}
	defer rows.Close()

	var results []*models.OrderResult
	for rows.Next() {
		result, err := scanOrderResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order results: %w", err)
	}

	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderResult(row rowScanner) (*models.OrderResult, error) {
	result := &models.OrderResult{}
	var reactionStr, penaltiesStr, servedAtStr string

	err := row.Scan(
		&result.ID, &result.SessionID, &result.CustomerIndex, &result.CustomerID,
		&result.Score, &result.Feedback, &reactionStr, &penaltiesStr, &servedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan order result: %w", err)
	}

	result.Reaction = models.Reaction(reactionStr)
	if err := json.Unmarshal([]byte(penaltiesStr), &result.Penalties); err != nil {
		return nil, fmt.Errorf("failed to parse penalties: %w", err)
	}
	if result.ServedAt, err = parseTime(servedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse served_at: %w", err)
	}

	return result, nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

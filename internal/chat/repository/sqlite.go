package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"notesnap/internal/chat/models"
)

// ============================================================
// SQLite Repository
// ============================================================

// draftKeyPrefix matches the browser-side key the chat UI historically used
// for local-storage drafts.
const draftKeyPrefix = "notesnap_chat_draft_"

// DraftTTL is how long an unsent draft survives after its last save.
const DraftTTL = 24 * time.Hour

var ErrNotFound = errors.New("not found")

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Init applies migrations.
func (r *Repository) Init(ctx context.Context, migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// ============================================================
// Sessions
// ============================================================

func (r *Repository) CreateSession(ctx context.Context, s *models.Session) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO sessions (id, diagram_type, diagram, current_step, total_steps, language)
        VALUES (?, ?, ?, ?, ?, ?)
    `, s.ID, s.DiagramType, s.Diagram, s.CurrentStep, s.TotalSteps, s.Language)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, id string) (*models.Session, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, diagram_type, diagram, current_step, total_steps, language, created_at
        FROM sessions
        WHERE id = ?
    `, id)

	var s models.Session
	if err := row.Scan(&s.ID, &s.DiagramType, &s.Diagram, &s.CurrentStep, &s.TotalSteps, &s.Language, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repository) UpdateSessionStep(ctx context.Context, id string, currentStep int) error {
	result, err := r.db.ExecContext(ctx, `
        UPDATE sessions SET current_step = ? WHERE id = ?
    `, currentStep, id)
	if err != nil {
		return fmt.Errorf("update session step: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================
// Messages
// ============================================================

func (r *Repository) AppendMessage(ctx context.Context, m *models.Message) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO messages (id, session_id, role, body, step)
        VALUES (?, ?, ?, ?, ?)
    `, m.ID, m.SessionID, m.Role, m.Body, m.Step)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *Repository) ListMessages(ctx context.Context, sessionID string) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, session_id, role, body, step, created_at
        FROM messages
        WHERE session_id = ?
        ORDER BY created_at, id
    `, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Body, &m.Step, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ============================================================
// Drafts
// ============================================================

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

// SaveDraft upserts the draft and refreshes its expiry clock.
func (r *Repository) SaveDraft(ctx context.Context, sessionID, body string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO drafts (draft_key, body, saved_at)
        VALUES (?, ?, ?)
        ON CONFLICT(draft_key) DO UPDATE SET body = excluded.body, saved_at = excluded.saved_at
    `, draftKey(sessionID), body, r.now().Unix())
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// GetDraft returns the draft for a session. Expired drafts are purged
// lazily and reported as ErrNotFound.
func (r *Repository) GetDraft(ctx context.Context, sessionID string) (*models.Draft, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT body, saved_at FROM drafts WHERE draft_key = ?
    `, draftKey(sessionID))

	draft := models.Draft{SessionID: sessionID}
	if err := row.Scan(&draft.Body, &draft.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if r.now().Unix()-draft.SavedAt > int64(DraftTTL.Seconds()) {
		if err := r.DeleteDraft(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return &draft, nil
}

func (r *Repository) DeleteDraft(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE draft_key = ?`, draftKey(sessionID)); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// PurgeExpiredDrafts removes every draft past its TTL and returns the count.
func (r *Repository) PurgeExpiredDrafts(ctx context.Context) (int64, error) {
	cutoff := r.now().Add(-DraftTTL).Unix()
	result, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE saved_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge drafts: %w", err)
	}
	return result.RowsAffected()
}

// ============================================================
// DB bootstrap
// ============================================================

// OpenSQLite opens the chat database at the given path.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

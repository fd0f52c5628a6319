package service

import (
	"sync"

	"notesnap/internal/steps"

	"github.com/google/uuid"
)

// ============================================================
// Session Manager
// ============================================================

// Cursor is a session's step-reveal position.
type Cursor struct {
	Current int `json:"currentStep"`
	Total   int `json:"totalSteps"`
}

// SessionManager issues session IDs and keeps the hot step cursors in
// memory so step navigation does not round-trip the database. The
// repository stays the durable source of truth; writes go through here
// first and are persisted by the handler.
type SessionManager struct {
	mu      sync.Mutex
	cursors map[string]Cursor
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		cursors: make(map[string]Cursor),
	}
}

// Issue creates a new session ID with a cursor over totalSteps steps.
func (m *SessionManager) Issue(totalSteps, initialStep int) (string, Cursor) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	cursor := Cursor{Current: steps.Clamp(initialStep, totalSteps), Total: totalSteps}
	m.cursors[id] = cursor
	return id, cursor
}

// Track registers a cursor loaded from the repository (e.g. after restart).
func (m *SessionManager) Track(id string, cursor Cursor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursors[id] = cursor
}

// Resolve returns the cached cursor.
func (m *SessionManager) Resolve(id string) (Cursor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cursor, ok := m.cursors[id]
	return cursor, ok
}

// Advance moves the cursor by delta, clamped to the sequence bounds, and
// returns the new position.
func (m *SessionManager) Advance(id string, delta int) (Cursor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cursor, ok := m.cursors[id]
	if !ok {
		return Cursor{}, false
	}
	cursor.Current = steps.Clamp(cursor.Current+delta, cursor.Total)
	m.cursors[id] = cursor
	return cursor, true
}

// Seek jumps the cursor to an absolute position, clamped.
func (m *SessionManager) Seek(id string, step int) (Cursor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cursor, ok := m.cursors[id]
	if !ok {
		return Cursor{}, false
	}
	cursor.Current = steps.Clamp(step, cursor.Total)
	m.cursors[id] = cursor
	return cursor, true
}

package models

// ============================================================
// Chat Models
// ============================================================

// Session is one tutoring conversation bound to a diagram and its step
// cursor.
type Session struct {
	ID          string `json:"id"`
	DiagramType string `json:"diagramType"`
	Diagram     string `json:"diagram,omitempty"` // raw diagram-state JSON
	CurrentStep int    `json:"currentStep"`
	TotalSteps  int    `json:"totalSteps"`
	Language    string `json:"language"`
	CreatedAt   string `json:"created_at"`
}

// Message is one chat turn. Step snapshots the cursor position at the time
// the message was sent, so replaying the transcript replays the reveal.
type Message struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"` // student or tutor
	Body      string `json:"body"`
	Step      int    `json:"step"`
	CreatedAt string `json:"created_at"`
}

// Draft is unsent chat input, persisted so a reload does not lose it.
// Drafts expire 24 hours after the last save.
type Draft struct {
	SessionID string `json:"session_id"`
	Body      string `json:"body"`
	SavedAt   int64  `json:"saved_at"` // unix seconds
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"notesnap/internal/chat/models"
	"notesnap/internal/chat/repository"
	"notesnap/internal/chat/service"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Chat Handler
// ============================================================

type ChatHandler struct {
	repo        *repository.Repository
	sessions    *service.SessionManager
	diagramsURL string
}

func NewChatHandler(repo *repository.Repository, sessions *service.SessionManager, diagramsURL string) *ChatHandler {
	return &ChatHandler{
		repo:        repo,
		sessions:    sessions,
		diagramsURL: diagramsURL,
	}
}

// ============================================================
// Sessions
// ============================================================

type createSessionRequest struct {
	Diagram  json.RawMessage `json:"diagram"`
	Language string          `json:"language,omitempty"`
}

// renderEnvelope is the subset of the diagram service response the chat
// service cares about.
type renderEnvelope struct {
	TotalSteps  int    `json:"totalSteps"`
	CurrentStep int    `json:"currentStep"`
	Fallback    bool   `json:"fallback"`
	Error       string `json:"error"`
}

// CreateSession starts a tutoring conversation around one diagram. The
// diagram state is validated by the diagram service, which also reports how
// many reveal steps the figure has.
func (h *ChatHandler) CreateSession(c fiber.Ctx) error {
	var req createSessionRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || len(req.Diagram) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "diagram state required"})
	}

	var diagramType struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(req.Diagram, &diagramType); err != nil || diagramType.Type == "" {
		return c.Status(400).JSON(fiber.Map{"error": "diagram state has no type"})
	}

	envelope, err := h.renderRemote(req.Diagram)
	if err != nil {
		log.Printf("[CHAT] diagram service error: %v", err)
		return c.Status(502).JSON(fiber.Map{"error": "diagram service unavailable"})
	}
	if envelope.Fallback {
		return c.Status(422).JSON(fiber.Map{"error": envelope.Error})
	}

	id, cursor := h.sessions.Issue(envelope.TotalSteps, envelope.CurrentStep)

	session := &models.Session{
		ID:          id,
		DiagramType: diagramType.Type,
		Diagram:     string(req.Diagram),
		CurrentStep: cursor.Current,
		TotalSteps:  cursor.Total,
		Language:    req.Language,
	}
	if session.Language == "" {
		session.Language = "en"
	}

	if err := h.repo.CreateSession(c.Context(), session); err != nil {
		log.Printf("[CHAT] create session: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create session"})
	}

	return c.Status(201).JSON(session)
}

func (h *ChatHandler) GetSession(c fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(session)
}

// ============================================================
// Messages
// ============================================================

type postMessageRequest struct {
	Role        string `json:"role"`
	Body        string `json:"body"`
	AdvanceStep bool   `json:"advanceStep,omitempty"`
}

// PostMessage appends a chat turn. A tutor message may advance the reveal
// cursor, which is how the conversation drives the diagram.
func (h *ChatHandler) PostMessage(c fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	var req postMessageRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || req.Body == "" {
		return c.Status(400).JSON(fiber.Map{"error": "message body required"})
	}
	if req.Role != "student" && req.Role != "tutor" {
		return c.Status(400).JSON(fiber.Map{"error": "role must be student or tutor"})
	}

	cursor, _ := h.sessions.Resolve(session.ID)
	if req.AdvanceStep && req.Role == "tutor" {
		if next, ok := h.sessions.Advance(session.ID, 1); ok {
			cursor = next
			if err := h.repo.UpdateSessionStep(c.Context(), session.ID, cursor.Current); err != nil {
				log.Printf("[CHAT] persist step: %v", err)
			}
		}
	}

	message := &models.Message{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      req.Role,
		Body:      req.Body,
		Step:      cursor.Current,
	}
	if err := h.repo.AppendMessage(c.Context(), message); err != nil {
		log.Printf("[CHAT] append message: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to store message"})
	}

	// Sending a real message supersedes any saved draft.
	if err := h.repo.DeleteDraft(c.Context(), session.ID); err != nil {
		log.Printf("[CHAT] clear draft: %v", err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     message,
		"currentStep": cursor.Current,
		"totalSteps":  cursor.Total,
	})
}

func (h *ChatHandler) ListMessages(c fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	messages, err := h.repo.ListMessages(c.Context(), session.ID)
	if err != nil {
		log.Printf("[CHAT] list messages: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to list messages"})
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return c.JSON(messages)
}

// ============================================================
// Step Navigation
// ============================================================

func (h *ChatHandler) StepNext(c fiber.Ctx) error { return h.step(c, +1) }
func (h *ChatHandler) StepPrev(c fiber.Ctx) error { return h.step(c, -1) }

func (h *ChatHandler) step(c fiber.Ctx, delta int) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	cursor, ok := h.sessions.Advance(session.ID, delta)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "session not found"})
	}

	if err := h.repo.UpdateSessionStep(c.Context(), session.ID, cursor.Current); err != nil {
		log.Printf("[CHAT] persist step: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to persist step"})
	}

	return c.JSON(cursor)
}

type seekRequest struct {
	Step int `json:"step"`
}

func (h *ChatHandler) StepSeek(c fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	var req seekRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "step index required"})
	}

	cursor, ok := h.sessions.Seek(session.ID, req.Step)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "session not found"})
	}

	if err := h.repo.UpdateSessionStep(c.Context(), session.ID, cursor.Current); err != nil {
		log.Printf("[CHAT] persist step: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to persist step"})
	}

	return c.JSON(cursor)
}

// ============================================================
// Drafts
// ============================================================

type draftRequest struct {
	Body string `json:"body"`
}

func (h *ChatHandler) SaveDraft(c fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	var req draftRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "draft body required"})
	}

	if err := h.repo.SaveDraft(c.Context(), session.ID, req.Body); err != nil {
		log.Printf("[CHAT] save draft: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save draft"})
	}
	return c.SendStatus(204)
}

func (h *ChatHandler) GetDraft(c fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	draft, err := h.repo.GetDraft(c.Context(), session.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "no draft"})
		}
		log.Printf("[CHAT] get draft: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to load draft"})
	}
	return c.JSON(draft)
}

func (h *ChatHandler) DeleteDraft(c fiber.Ctx) error {
	session, err := h.loadSession(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	if err := h.repo.DeleteDraft(c.Context(), session.ID); err != nil {
		log.Printf("[CHAT] delete draft: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete draft"})
	}
	return c.SendStatus(204)
}

// ============================================================
// Helpers
// ============================================================

// loadSession resolves the :id session and warms the cursor cache after a
// restart.
func (h *ChatHandler) loadSession(c fiber.Ctx) (*models.Session, error) {
	session, err := h.repo.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return nil, err
	}

	if _, ok := h.sessions.Resolve(session.ID); !ok {
		h.sessions.Track(session.ID, service.Cursor{Current: session.CurrentStep, Total: session.TotalSteps})
	}
	return session, nil
}

func (h *ChatHandler) sessionError(c fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "session not found"})
	}
	log.Printf("[CHAT] session lookup: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "failed to load session"})
}

// renderRemote validates a diagram state against the diagram service.
func (h *ChatHandler) renderRemote(state json.RawMessage) (*renderEnvelope, error) {
	resp, err := http.Post(h.diagramsURL+"/render", "application/json", bytes.NewReader(state))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("diagram service returned %d: %s", resp.StatusCode, data)
	}

	var envelope renderEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode render envelope: %w", err)
	}
	return &envelope, nil
}

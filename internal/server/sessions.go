package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shreya-bani/AI-Intake-Assist/conversation"
	"github.com/shreya-bani/AI-Intake-Assist/extraction"
	"github.com/shreya-bani/AI-Intake-Assist/models"
	"github.com/shreya-bani/AI-Intake-Assist/session"
)

type SessionsHandler struct {
	Store        session.Store
	Conversation *conversation.Service
	Extraction   *extraction.Service
}

func (h *SessionsHandler) Register(g *echo.Group) {
	g.POST("", h.create)
	g.POST("/:id/messages", h.send)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.remove)
}

func (h *SessionsHandler) create(c echo.Context) error {
	sess := h.Store.Create()
	greeting, err := h.Conversation.Start(sess.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create session: "+err.Error())
	}
	sessionsCreated.Inc()
	return c.JSON(http.StatusCreated, SessionCreateResponse{
		SessionID:      sess.ID,
		InitialMessage: greeting,
	})
}

// send answers one user message: reply first, then a best-effort extraction
// pass whose failures are absorbed into an empty updated_fields.
func (h *SessionsHandler) send(c echo.Context) error {
	sessionID := c.Param("id")

	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message required")
	}

	reply, _, err := h.Conversation.ProcessUserMessage(c.Request().Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process message: "+err.Error())
	}

	turns, err := h.Conversation.ForExtraction(sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	delta := h.Extraction.Extract(c.Request().Context(), sessionID, turns)

	sess, err := h.Store.Get(sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}

	messagesProcessed.Inc()
	return c.JSON(http.StatusOK, MessageResponse{
		AssistantMessage: reply,
		UpdatedFields:    delta,
		IsComplete:       sess.Form.IsComplete(),
	})
}

func (h *SessionsHandler) get(c echo.Context) error {
	sess, err := h.Store.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, SessionStateResponse{
		SessionID:           sess.ID,
		ConversationHistory: sess.Turns,
		FormData:            sess.Form,
		IsComplete:          sess.Form.IsComplete(),
		CreatedAt:           sess.CreatedAt,
	})
}

func (h *SessionsHandler) remove(c echo.Context) error {
	if !h.Store.Delete(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	sessionsDeleted.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Session deleted successfully"})
}

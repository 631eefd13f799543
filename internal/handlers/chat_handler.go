// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/middleware"
	chatrepo "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/repository/chat"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services"
	chatservice "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/chat"
)

type ChatHandler struct {
	sessions *services.SessionService
	chats    *services.ChatService
	logger   services.Logger
}

func NewChatHandler(sessions *services.SessionService, chats *services.ChatService, logger services.Logger) (*ChatHandler, error) {
	if sessions == nil {
		return nil, errors.New("session service is required")
	}
	if chats == nil {
		return nil, errors.New("chat service is required")
	}
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &ChatHandler{sessions: sessions, chats: chats, logger: logger}, nil
}

// messageView is the wire shape of a message; HTML is pre-rendered server
// side so the chat page can inject it directly.
type messageView struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	HTML    string `json:"html"`
}

func toMessageViews(messages []domain.Message) []messageView {
	views := make([]messageView, 0, len(messages))
	for _, msg := range messages {
		views = append(views, messageView{
			Role:    msg.Role,
			Content: msg.Content,
			HTML:    renderMessageHTML(msg.Role, msg.Content),
		})
	}
	return views
}

func (h *ChatHandler) session(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		writeError(w, "No session", http.StatusInternalServerError)
		return nil, false
	}
	return h.sessions.GetOrCreate(id), true
}

// ListChats returns the insertion-ordered history listing.
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	chats, err := h.chats.ListChats(r.Context(), sess.Store)
	if err != nil {
		writeError(w, "Could not retrieve chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chats":          chats,
		"active_chat_id": sess.ActiveChatID,
	})
}

// NewChat clears the active chat reference; the next submission starts a
// fresh conversation.
func (h *ChatHandler) NewChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.ActiveChatID = ""
	writeJSON(w, http.StatusOK, map[string]string{"active_chat_id": ""})
}

// ActivateChat selects an existing chat for the chatbot view.
func (h *ChatHandler) ActivateChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	chatID := mux.Vars(r)["id"]
	record, err := h.chats.GetChat(r.Context(), sess.Store, chatID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not load chat", http.StatusInternalServerError)
		return
	}

	sess.ActiveChatID = record.ID
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active_chat_id": record.ID,
		"title":          record.Title,
	})
}

// GetChatMessages returns the full message history of one chat.
func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	chatID := mux.Vars(r)["id"]
	record, err := h.chats.GetChat(r.Context(), sess.Store, chatID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve messages", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       record.ID,
		"title":    record.Title,
		"messages": toMessageViews(record.Messages),
	})
}

// SubmitMessage routes one user message through the chat service. Empty
// submissions are acknowledged with 204 and change nothing.
func (h *ChatHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	chatID, reply, err := h.chats.Submit(r.Context(), sess.Store, sess.ActiveChatID, req.Message)
	if err != nil {
		if errors.Is(err, chatservice.ErrEmptyMessage) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.logger.Error("submit failed", "error", err.Error())
		writeError(w, "Error processing chat", http.StatusInternalServerError)
		return
	}
	sess.ActiveChatID = chatID

	title := ""
	if record, err := h.chats.GetChat(r.Context(), sess.Store, chatID); err == nil {
		title = record.Title
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chat_id":    chatID,
		"title":      title,
		"reply":      reply,
		"reply_html": renderMessageHTML(domain.RoleAssistant, reply),
	})
}

// RenameChat replaces a chat title. Blank titles and unknown ids are quiet
// no-ops, matching the history view's behavior.
func (h *ChatHandler) RenameChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	chatID := mux.Vars(r)["id"]
	if err := h.chats.RenameChat(r.Context(), sess.Store, chatID, req.Title); err != nil {
		writeError(w, "Could not rename chat", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteChat removes one chat; deleting the active chat resets the active
// reference so the next submission starts fresh.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	chatID := mux.Vars(r)["id"]
	if err := h.chats.DeleteChat(r.Context(), sess.Store, chatID); err != nil {
		writeError(w, "Could not delete chat", http.StatusInternalServerError)
		return
	}
	if sess.ActiveChatID == chatID {
		sess.ActiveChatID = ""
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearChats drops the session's entire history.
func (h *ChatHandler) ClearChats(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.chats.ClearChats(r.Context(), sess.Store); err != nil {
		writeError(w, "Could not clear history", http.StatusInternalServerError)
		return
	}
	sess.ActiveChatID = ""
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

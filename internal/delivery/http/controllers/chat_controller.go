package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"meetmatch/internal/delivery/http/helpers"
	"meetmatch/internal/delivery/http/middleware"
	"meetmatch/internal/domain"
)

// SendMessageRequest is the request body for POST /events/{eventID}/messages.
// The event id comes from the path and the sender is the acting user.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// Validate implements Validator.
func (s SendMessageRequest) Validate() []string {
	if s.Content == "" {
		return []string{"content is required"}
	}
	return nil
}

type ChatController struct {
	Logger  *slog.Logger
	Service domain.ChatService
}

func NewChatController(logger *slog.Logger, svc domain.ChatService) *ChatController {
	return &ChatController{
		Logger:  logger,
		Service: svc,
	}
}

// ListConversations godoc
// @Summary List the acting user's conversations
// @Description Returns a conversation for every event the user has liked, each with its event embedded, sorted by most recent activity. Conversations are created lazily here for likes that predate them.
// @Tags chat
// @Produce json
// @Success 200 {array} domain.UserConversation
// @Failure 500 {object} helpers.ErrorResponse
// @Router /conversations [get]
func (c *ChatController) ListConversations(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}
	conversations, err := c.Service.ListUserConversations(r.Context(), actorID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, conversations)
}

// ListMessages godoc
// @Summary List an event's messages
// @Description Returns the event's messages ordered by timestamp ascending. An event without messages yields an empty list.
// @Tags chat
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {array} domain.Message
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID}/messages [get]
func (c *ChatController) ListMessages(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(mux.Vars(r)["eventID"])
	if err != nil {
		helpers.WriteValidationError(w, "Invalid event id", []string{"eventID must be an integer"})
		return
	}
	messages, err := c.Service.ListMessages(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, messages)
}

// SendMessage godoc
// @Summary Send a message to an event's conversation
// @Description Stores the message and updates the conversation's last-activity bookkeeping when the conversation exists. A message can be sent before any like; it is stored without touching conversations.
// @Tags chat
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param message body SendMessageRequest true "Message data"
// @Success 201 {object} domain.Message
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{eventID}/messages [post]
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(mux.Vars(r)["eventID"])
	if err != nil {
		helpers.WriteValidationError(w, "Invalid message data", []string{"eventID must be an integer"})
		return
	}
	var req SendMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req, "Invalid message data") {
		return
	}
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}
	message, err := c.Service.SendMessage(r.Context(), actorID, eventID, req.Content)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, message)
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"meetmatch/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	swipeController *controllers.SwipeController,
	userController *controllers.UserController,
	chatController *controllers.ChatController,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Events. The category route is registered before the messages routes:
	// gorilla matches in order, and "category" would otherwise parse as an
	// eventID segment.
	r.HandleFunc("/events", eventController.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/events", eventController.CreateEvent).Methods(http.MethodPost)
	r.HandleFunc("/events/category/{category}", eventController.ListEventsByCategory).Methods(http.MethodGet)
	r.HandleFunc("/events/{eventID}/messages", chatController.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/events/{eventID}/messages", chatController.SendMessage).Methods(http.MethodPost)

	// Swipes
	r.HandleFunc("/swipes", swipeController.CreateSwipe).Methods(http.MethodPost)

	// Acting user
	r.HandleFunc("/user/swipes", swipeController.ListUserSwipes).Methods(http.MethodGet)
	r.HandleFunc("/user/profile", userController.GetProfile).Methods(http.MethodGet)

	// Chat
	r.HandleFunc("/conversations", chatController.ListConversations).Methods(http.MethodGet)

	// Swagger
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"golang.org/x/crypto/bcrypt"

	"meetmatch/config"
	_ "meetmatch/docs"
	"meetmatch/internal/adapters/auth"
	httpdelivery "meetmatch/internal/delivery/http"
	"meetmatch/internal/delivery/http/controllers"
	"meetmatch/internal/delivery/http/middleware"
	"meetmatch/internal/repository/memory"
	"meetmatch/internal/seed"
	"meetmatch/internal/services"
)

// @title MeetMatch API
// @version 1.0
// @description Swipe-based social event discovery: browse events, like to join, chat per event.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := config.NewLogger(cfg.Environment)

	// The store is the whole persistence story: constructed once here,
	// injected everywhere, gone on restart.
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	eventRepo := memory.NewEventRepository(store)
	swipeRepo := memory.NewSwipeRepository(store)
	messageRepo := memory.NewMessageRepository(store)
	conversationRepo := memory.NewConversationRepository(store)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	ctx := context.Background()
	if cfg.SeedDemoData {
		if err := seed.Run(ctx, logger, userRepo, eventRepo, hasher); err != nil {
			logger.Error("seeding failed", "err", err)
			os.Exit(1)
		}
	}

	// Every request runs as the seeded demo identity.
	actorID := 1
	if demoUser, err := userRepo.GetByUsername(ctx, seed.DemoUsername); err == nil {
		actorID = demoUser.ID
	}

	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo)
	swipeService := services.NewSwipeService(swipeRepo, eventRepo, conversationRepo)
	chatService := services.NewChatService(messageRepo, conversationRepo, swipeRepo, eventRepo)

	eventController := controllers.NewEventController(logger, eventService)
	swipeController := controllers.NewSwipeController(logger, swipeService)
	userController := controllers.NewUserController(logger, userService)
	chatController := controllers.NewChatController(logger, chatService)

	router := httpdelivery.NewRouter(eventController, swipeController, userController, chatController)

	var handler http.Handler = router
	handler = middleware.DemoActor(actorID)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "environment", cfg.Environment)
	log.Fatal(http.ListenAndServe(addr, handler))
}

// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/config"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/handlers"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/middleware"
	chatrepo "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/repository/chat"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/ai"
	chatservice "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/chat"
)

func main() {
	cfg := config.Load()
	logger := services.NewLogger("medical_chatbot")

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.GoogleAPIKey
	aiConfig.BaseURL = cfg.GeminiBaseURL
	aiConfig.Model = cfg.GeminiModel
	aiConfig.Timeout = time.Duration(cfg.ChatTimeoutSeconds) * time.Second

	aiService, err := services.NewAIService(aiConfig, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI Service: %v", err)
	}

	chatConfig := chatservice.DefaultConfig()
	chatConfig.Timeout = time.Duration(cfg.ChatTimeoutSeconds) * time.Second

	chatService, err := services.NewChatService(aiService, chatConfig, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Service: %v", err)
	}

	storeFactory, err := buildStoreFactory(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize chat store backend: %v", err)
	}

	sessionService := services.NewSessionService(
		storeFactory,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		logger,
	)
	defer sessionService.Close()

	// --- Handlers ---
	chatHandler, err := handlers.NewChatHandler(sessionService, chatService, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Handler: %v", err)
	}
	pageHandler := handlers.NewPageHandler()

	// --- Router Setup ---
	r := mux.NewRouter()
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.SessionSecretKey)

	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	// --- Pages ---
	r.Handle("/", sessionMiddleware(http.HandlerFunc(pageHandler.ShowIndexPage))).Methods("GET")
	r.Handle("/chat", sessionMiddleware(http.HandlerFunc(pageHandler.ShowChatPage))).Methods("GET")
	r.Handle("/history", sessionMiddleware(http.HandlerFunc(pageHandler.ShowHistoryPage))).Methods("GET")

	// --- Session-scoped API ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(sessionMiddleware)
	api.HandleFunc("/chats", chatHandler.ListChats).Methods("GET")
	api.HandleFunc("/chats", chatHandler.ClearChats).Methods("DELETE")
	api.HandleFunc("/chats/new", chatHandler.NewChat).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}/activate", chatHandler.ActivateChat).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}/messages", chatHandler.GetChatMessages).Methods("GET")
	api.HandleFunc("/chats/{id:[0-9]+}", chatHandler.RenameChat).Methods("PUT")
	api.HandleFunc("/chats/{id:[0-9]+}", chatHandler.DeleteChat).Methods("DELETE")
	api.HandleFunc("/messages", chatHandler.SubmitMessage).Methods("POST")

	// --- Custom Error Handlers ---
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pageHandler.ShowErrorPage(w, "404", "Page Not Found", "The page you are looking for does not exist.")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pageHandler.ShowErrorPage(w, "405", "Method Not Allowed", "The method is not allowed for this resource.")
	})

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("AI Medical Chatbot starting on port %s", port)
	log.Printf("Chat interface: http://localhost%s/chat", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// buildStoreFactory wires the configured chat store backend. Both backends
// are process-local; "sqlite" keeps session state in an in-memory SQLite
// database instead of plain maps.
func buildStoreFactory(cfg *config.Config) (services.StoreFactory, error) {
	switch cfg.ChatStoreBackend {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := chatrepo.AutoMigrate(db); err != nil {
			return nil, err
		}
		return func(sessionID string) chatrepo.ChatStore {
			return chatrepo.NewGormChatStore(db, sessionID)
		}, nil
	default:
		return func(string) chatrepo.ChatStore {
			return chatrepo.NewMemoryChatStore()
		}, nil
	}
}

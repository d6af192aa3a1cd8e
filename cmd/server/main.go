package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkravets/bankassist/internal/api/handlers"
	"github.com/mkravets/bankassist/internal/api/middleware"
	"github.com/mkravets/bankassist/internal/config"
	"github.com/mkravets/bankassist/internal/llm"
	"github.com/mkravets/bankassist/internal/logger"
	"github.com/mkravets/bankassist/internal/mail"
	"github.com/mkravets/bankassist/internal/session"
	"github.com/mkravets/bankassist/internal/store"
	"github.com/mkravets/bankassist/web"
)

func main() {
	var (
		port          = flag.String("port", "8080", "HTTP server port")
		dbPath        = flag.String("db", "customer_data.db", "Path to the SQLite database file")
		resetFixtures = flag.Bool("reset-fixtures", os.Getenv("RESET_FIXTURES") != "false", "Wipe and reseed the demo fixtures on startup")
	)
	flag.Parse()

	log := logger.New()
	cfg := config.Load()

	// Storage
	repo, err := store.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}

	ctx := context.Background()

	if *resetFixtures {
		if err := repo.Reset(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset fixtures")
		}
		log.Info().Str("db", *dbPath).Msg("Fixture data reset")
	}

	// Completion API
	var completer llm.Completer
	switch cfg.LLMProvider {
	case "groq":
		if cfg.GroqAPIKey == "" {
			log.Fatal().Msg("GROQ_API_KEY is required with the groq provider")
		}
		completer = llm.NewGroqClient(cfg.GroqAPIKey)
	case "gemini":
		completer, err = llm.NewGeminiClient(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create gemini client")
		}
	default:
		log.Fatal().Str("provider", cfg.LLMProvider).Msg("Unknown LLM provider")
	}
	log.Info().Str("provider", cfg.LLMProvider).Msg("Completion API configured")

	// Mail transport
	if cfg.SMTP.Username == "" {
		log.Warn().Msg("No SMTP credentials configured - statement emails will fail")
	}
	sender := mail.NewSMTPSender(cfg.SMTP)

	// Sessions and handlers
	sessions := session.NewManager()
	authHandler := handlers.NewAuthHandler(repo, log)
	transactionsHandler := handlers.NewTransactionsHandler(repo, log)
	chatHandler := handlers.NewChatHandler(repo, completer, log)
	statementHandler := handlers.NewStatementHandler(repo, sender, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			authHandler.Login(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/customer", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			authHandler.Customer(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			transactionsHandler.List(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			transactionsHandler.Summary(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			chatHandler.Ask(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/conversation", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			chatHandler.Conversation(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/statement/email", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			statementHandler.Email(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		page, err := web.Content.ReadFile("index.html")
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, "Failed to load page")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(
					middleware.WithSession(sessions)(mux),
				),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // completion calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", *port).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"atelier/internal/config"
	"atelier/internal/handler"
	"atelier/internal/kvstore"
	"atelier/internal/llm"
	"atelier/internal/middleware"
	"atelier/internal/service/archive"
	"atelier/internal/service/finance"
	"atelier/internal/service/resume"
	"atelier/internal/service/studio"
	"atelier/internal/service/styles"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"db_path", cfg.DBPath,
	)

	// Open the durable store. The app stays usable without it: fall back
	// to an in-memory store and warn, rather than refusing to start.
	var store kvstore.Store
	sqliteStore, err := kvstore.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Warn("failed to open database, running in-memory only", "path", cfg.DBPath, "error", err)
		store = kvstore.NewMemory()
	} else {
		store = sqliteStore
		logger.Info("database opened", "path", cfg.DBPath)
	}
	defer store.Close()

	// Generative-text client: remote when a key is configured, canned
	// values otherwise so every assist feature works offline.
	var llmClient llm.Client
	if cfg.AnthropicAPIKey != "" {
		llmClient = llm.NewAnthropic(cfg.AnthropicAPIKey, cfg.LLMModel)
		logger.Info("llm client configured", "model", cfg.LLMModel)
	} else {
		llmClient = llm.NewStatic()
		logger.Warn("no API key configured, assist features use static fallbacks")
	}

	// Style catalog ships embedded; a parse failure is a build defect.
	styleLibrary, err := styles.NewLibrary()
	if err != nil {
		log.Fatalf("Failed to load style catalog: %v", err)
	}

	// Create services
	archiveService := archive.NewService(store, logger)
	financeService := finance.NewService(store, logger)
	resumeService := resume.NewService(store, logger)
	studioService := studio.NewService(store, llmClient, logger)

	// Create handlers
	folderHandler := handler.NewFolderHandler(archiveService, logger)
	fileHandler := handler.NewFileHandler(archiveService, llmClient, logger)
	noteHandler := handler.NewNoteHandler(archiveService, logger)
	taskHandler := handler.NewTaskHandler(archiveService, logger)
	linkHandler := handler.NewLinkHandler(archiveService, logger)
	moodboardHandler := handler.NewMoodboardHandler(archiveService, logger)
	briefHandler := handler.NewBriefHandler(archiveService, logger)
	stateHandler := handler.NewStateHandler(archiveService, logger)
	gateHandler := handler.NewGateHandler(archiveService, logger)
	styleHandler := handler.NewStyleHandler(styleLibrary, logger)
	financeHandler := handler.NewFinanceHandler(financeService, logger)
	resumeHandler := handler.NewResumeHandler(resumeService, logger)
	studioHandler := handler.NewStudioHandler(studioService, logger)
	assistHandler := handler.NewAssistHandler(llmClient, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)
	mux.HandleFunc("GET /api/folders/{id}/breadcrumbs", folderHandler.GetBreadcrumbs)

	// Navigation state and history
	mux.HandleFunc("GET /api/archive/state", stateHandler.GetState)
	mux.HandleFunc("PATCH /api/archive/state", stateHandler.UpdateState)
	mux.HandleFunc("GET /api/archive/history", stateHandler.GetHistory)

	// Delete confirmation gate
	mux.HandleFunc("POST /api/archive/delete-requests", gateHandler.RequestDelete)
	mux.HandleFunc("POST /api/archive/delete-requests/{token}/confirm", gateHandler.ConfirmDelete)
	mux.HandleFunc("DELETE /api/archive/delete-requests/{token}", gateHandler.CancelDelete)

	// File routes
	mux.HandleFunc("POST /api/files", fileHandler.CreateFile)
	mux.HandleFunc("GET /api/files", fileHandler.ListFiles)
	mux.HandleFunc("GET /api/files/{id}", fileHandler.GetFile)
	mux.HandleFunc("PATCH /api/files/{id}", fileHandler.UpdateFile)
	mux.HandleFunc("DELETE /api/files/{id}", fileHandler.DeleteFile)

	// Note routes
	mux.HandleFunc("POST /api/notes", noteHandler.CreateNote)
	mux.HandleFunc("GET /api/notes", noteHandler.ListNotes)
	mux.HandleFunc("PATCH /api/notes/{id}", noteHandler.UpdateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", noteHandler.DeleteNote)

	// Task routes
	mux.HandleFunc("POST /api/tasks", taskHandler.CreateTask)
	mux.HandleFunc("GET /api/tasks", taskHandler.ListTasks)
	mux.HandleFunc("PATCH /api/tasks/{id}", taskHandler.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", taskHandler.DeleteTask)

	// Link routes
	mux.HandleFunc("POST /api/links", linkHandler.CreateLink)
	mux.HandleFunc("GET /api/links", linkHandler.ListLinks)
	mux.HandleFunc("PATCH /api/links/{id}", linkHandler.UpdateLink)
	mux.HandleFunc("DELETE /api/links/{id}", linkHandler.DeleteLink)

	// Moodboard routes
	mux.HandleFunc("POST /api/moodboards", moodboardHandler.CreateMoodboard)
	mux.HandleFunc("GET /api/moodboards", moodboardHandler.ListMoodboards)
	mux.HandleFunc("PATCH /api/moodboards/{id}", moodboardHandler.UpdateMoodboard)
	mux.HandleFunc("DELETE /api/moodboards/{id}", moodboardHandler.DeleteMoodboard)

	// Brief routes
	mux.HandleFunc("POST /api/briefs", briefHandler.CreateBrief)
	mux.HandleFunc("GET /api/briefs", briefHandler.ListBriefs)
	mux.HandleFunc("GET /api/briefs/{id}", briefHandler.GetBrief)
	mux.HandleFunc("PATCH /api/briefs/{id}", briefHandler.UpdateBrief)
	mux.HandleFunc("DELETE /api/briefs/{id}", briefHandler.DeleteBrief)
	mux.HandleFunc("POST /api/briefs/{id}/pin", briefHandler.TogglePin)

	// Style library routes
	mux.HandleFunc("GET /api/styles", styleHandler.ListStyles)
	mux.HandleFunc("GET /api/styles/categories", styleHandler.ListCategories) // Must come before {id} route
	mux.HandleFunc("GET /api/styles/{id}", styleHandler.GetStyle)

	// Finance routes
	mux.HandleFunc("POST /api/finance/transactions", financeHandler.CreateTransaction)
	mux.HandleFunc("GET /api/finance/transactions", financeHandler.ListTransactions)
	mux.HandleFunc("PUT /api/finance/transactions/{id}", financeHandler.UpdateTransaction)
	mux.HandleFunc("DELETE /api/finance/transactions/{id}", financeHandler.DeleteTransaction)
	mux.HandleFunc("GET /api/finance/summary", financeHandler.GetSummary)
	mux.HandleFunc("GET /api/finance/overview", financeHandler.GetOverview)

	// Resume routes
	mux.HandleFunc("GET /api/resume", resumeHandler.GetResume)
	mux.HandleFunc("PUT /api/resume", resumeHandler.ReplaceResume)
	mux.HandleFunc("DELETE /api/resume", resumeHandler.ResetResume)

	// Character studio routes
	mux.HandleFunc("POST /api/characters", studioHandler.CreateCharacter)
	mux.HandleFunc("GET /api/characters", studioHandler.ListCharacters)
	mux.HandleFunc("GET /api/characters/{id}", studioHandler.GetCharacter)
	mux.HandleFunc("PUT /api/characters/{id}", studioHandler.UpdateCharacter)
	mux.HandleFunc("DELETE /api/characters/{id}", studioHandler.DeleteCharacter)
	mux.HandleFunc("GET /api/characters/{id}/messages", studioHandler.GetMessages)
	mux.HandleFunc("POST /api/characters/{id}/messages", studioHandler.SendMessage)

	// Assist routes
	mux.HandleFunc("POST /api/assist/tags", assistHandler.GenerateTags)
	mux.HandleFunc("POST /api/assist/brief", assistHandler.DraftBrief)

	// Build middleware chain
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	// CORS - must wrap everything to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // Covers a slow generative-text call
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

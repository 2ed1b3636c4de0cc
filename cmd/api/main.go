package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"company-export/internal/config"
	"company-export/internal/database"
	"company-export/internal/handler"
	"company-export/internal/repository"
	"company-export/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := database.NewSQLiteDatabase().Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer func(conn *sql.DB) {
		err := conn.Close()
		if err != nil {
			log.Fatal(err)
		}
	}(conn)
	log.Println("Connected to Database")

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		log.Fatal("Export directory error: ", err)
	}

	r := setupRouter(conn, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Println("Starting server on:", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Println("Server shutdown encountered an error", "error", err)
		return
	}

	log.Println("Server stopped")
}

func setupRouter(conn *sql.DB, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	companyRepository := repository.NewCompanyRepository(conn)
	exportService := service.NewExportService(companyRepository, cfg.Export.Dir)
	exportHandler := handler.NewExportHandler(exportService, cfg.Export.Dir, cfg.Database.Name, cfg.Database.CompaniesTable)

	r.Get("/", exportHandler.Export)
	r.Get("/download/{filename}", exportHandler.Download)
	r.Get("/health", exportHandler.Health)
	r.Post("/ingest", exportHandler.Ingest)

	return r
}

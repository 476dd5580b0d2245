package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estatedesk/leadbook/internal/config"
	"github.com/estatedesk/leadbook/internal/infra/database"
	"github.com/estatedesk/leadbook/internal/infra/http/handlers"
	"github.com/estatedesk/leadbook/internal/infra/http/middleware"
	"github.com/estatedesk/leadbook/internal/usecase"
)

func main() {
	cfg, err := config.NewLoadedConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// Repositories
	buyerRepo := database.NewBuyerRepository(db)

	// UseCases
	createUC := usecase.NewCreateLeadUseCase(buyerRepo)
	updateUC := usecase.NewUpdateLeadUseCase(buyerRepo)
	deleteUC := usecase.NewDeleteLeadUseCase(buyerRepo)
	getUC := usecase.NewGetLeadUseCase(buyerRepo)
	listUC := usecase.NewListLeadsUseCase(buyerRepo)
	importUC := usecase.NewImportLeadsUseCase(buyerRepo)
	exportUC := usecase.NewExportLeadsUseCase(buyerRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(createUC, updateUC, deleteUC, getUC, listUC)
	importHandler := handlers.NewImportHandler(importUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	healthHandler := handlers.NewHealthHandler(db)

	importLimiter := middleware.NewRateLimiter(10, time.Minute) // 10 imports/min per IP

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Get("/", leadHandler.List)
		r.Post("/", leadHandler.Create)
		r.Get("/export", exportHandler.Handle)
		r.With(importLimiter.Limit).Post("/import", importHandler.Handle)
		r.Get("/{id}", leadHandler.Get)
		r.Put("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
	})

	addr := ":" + cfg.Port
	log.Printf("leadbook API listening on %s", addr)
	http.ListenAndServe(addr, r)
}

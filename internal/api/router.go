package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Harshitk-cp/galois/internal/api/handlers"
	mw "github.com/Harshitk-cp/galois/internal/api/middleware"
	"github.com/Harshitk-cp/galois/internal/buildconfig"
	"github.com/Harshitk-cp/galois/internal/config"
	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/fca"
	"github.com/Harshitk-cp/galois/internal/service"
	"github.com/Harshitk-cp/galois/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the router and request counters.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	contextStore := store.NewContextStore(db)
	conceptStore := store.NewConceptStore(db)

	// Services
	contextSvc := service.NewContextService(contextStore, service.Limits{
		MaxObjects:    config.MaxObjects(),
		MaxAttributes: config.MaxAttributes(),
	}, logger)
	miningSvc := service.NewMiningService(conceptStore, fca.Options{
		Workers: config.MiningWorkers(),
		Verify:  config.VerifyInvariants(),
	}, logger)

	// Handlers
	contextHandler := handlers.NewContextHandler(contextSvc)
	miningHandler := handlers.NewMiningHandler(contextHandler, miningSvc)

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		startTime: time.Now(),
	}
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger, config.SlowRequestThreshold()))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())
	r.Handle("/metrics/prom", promhttp.Handler())
	r.Get("/version", versionHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.APIKey()))

		r.Route("/contexts", func(r chi.Router) {
			r.Post("/", contextHandler.Create)
			r.Get("/", contextHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", contextHandler.GetByID)
				r.Delete("/", contextHandler.Delete)
				r.Post("/concepts", miningHandler.Concepts)
				r.Post("/implications", miningHandler.Implications)
				r.Post("/descriptions", miningHandler.Descriptions)
				r.Post("/infer", miningHandler.Infer)
				r.Post("/snapshot", miningHandler.Snapshot)
				r.Get("/nearest", miningHandler.Nearest)
			})
		})

		// Ad-hoc mining over contexts sent inline
		r.Route("/mine", func(r chi.Router) {
			r.Post("/concepts", miningHandler.MineConcepts)
			r.Post("/implications", miningHandler.MineImplications)
		})
	})

	return app
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(buildconfig.VersionInfo())
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)
		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var (
	_ domain.ContextStore = (*store.ContextStore)(nil)
	_ domain.ConceptStore = (*store.ConceptStore)(nil)
)

package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/opsdesk/internal/api/handlers"
	mw "github.com/opsdesk/opsdesk/internal/api/middleware"
	"github.com/opsdesk/opsdesk/internal/buildconfig"
	"github.com/opsdesk/opsdesk/internal/config"
	"github.com/opsdesk/opsdesk/internal/domain"
	"github.com/opsdesk/opsdesk/internal/service"
	"github.com/opsdesk/opsdesk/internal/store"
	"go.uber.org/zap"
)

// App holds the router and request counters. Every endpoint is a stateless
// request/response cycle; the only shared state across requests is the
// injected connection pool and these counters.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	agentStore := store.NewAgentStore(db)
	itemStore := store.NewItemStore(db)
	eventStore := store.NewEventStore(db)
	customerStore := store.NewCustomerStore(db)

	// Services
	agentSvc := service.NewAgentService(agentStore)
	itemSvc := service.NewItemService(itemStore)
	eventSvc := service.NewEventService(eventStore)
	customerSvc := service.NewCustomerService(customerStore)

	// One parametrized handler per record kind; the kind name feeds the
	// "<Kind> not found" error bodies.
	agentHandler := handlers.NewResourceHandler[domain.Agent, service.CreateAgentRequest]("Agent", agentSvc)
	itemHandler := handlers.NewResourceHandler[domain.Item, service.CreateItemRequest]("Item", itemSvc)
	eventHandler := handlers.NewResourceHandler[domain.Event, service.CreateEventRequest]("Event", eventSvc)
	customerHandler := handlers.NewResourceHandler[domain.Customer, service.CreateCustomerRequest]("Customer", customerSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)                                                 // Generate/extract request ID first
	r.Use(middleware.RealIP)                                            // Extract real IP
	r.Use(metricsCollector.Middleware)                                  // Collect metrics
	r.Use(mw.Logging(logger))                                           // Log all requests
	r.Use(mw.Recover(logger))                                           // Convert panics into JSON 500s
	r.Use(middleware.Timeout(config.RequestTimeout()))                  // Bound every store round trip
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst())) // Rate limiting

	// Health
	r.Get("/health", healthHandler(db))

	// Metrics
	r.Get("/metrics", app.metricsHandler())

	// Resource endpoints
	r.Route("/api", func(r chi.Router) {
		r.Mount("/agents", agentHandler.Routes())
		r.Mount("/items", itemHandler.Routes())
		r.Mount("/events", eventHandler.Routes())
		r.Mount("/customers", customerHandler.Routes())
	})

	return app
}

// NewRouter returns just the chi.Mux for callers that only need a handler.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
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
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"build":      buildconfig.VersionInfo(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and services satisfy their contracts at compile time.
var (
	_ domain.AgentStore    = (*store.AgentStore)(nil)
	_ domain.ItemStore     = (*store.ItemStore)(nil)
	_ domain.EventStore    = (*store.EventStore)(nil)
	_ domain.CustomerStore = (*store.CustomerStore)(nil)

	_ handlers.ResourceService[domain.Agent, service.CreateAgentRequest]       = (*service.AgentService)(nil)
	_ handlers.ResourceService[domain.Item, service.CreateItemRequest]         = (*service.ItemService)(nil)
	_ handlers.ResourceService[domain.Event, service.CreateEventRequest]       = (*service.EventService)(nil)
	_ handlers.ResourceService[domain.Customer, service.CreateCustomerRequest] = (*service.CustomerService)(nil)
)

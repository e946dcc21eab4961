package handlers

import (
	"net/http"

	"smartwaste-backend/internal/store"
	"smartwaste-backend/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires every endpoint onto a chi router with the standard
// middleware stack.
func NewRouter(s *store.Store, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	// Welcome page and health check
	r.Get("/", Index())
	r.Get("/health", HealthCheck())

	// WebSocket endpoint for live dashboard updates
	r.Get("/ws", websocket.HandleWebSocket(hub))

	// Bins endpoints
	r.Get("/bins", GetBins(s))
	r.Post("/bins", CreateBins(s, hub))
	r.Post("/bins/collect-sensor-data", CollectSensorData(s, hub))
	r.Get("/bins/{id}", GetBin(s))
	r.Put("/bins/{id}", UpdateBin(s, hub))
	r.Delete("/bins/{id}", DeleteBin(s, hub))

	// Derived reads
	r.Get("/optimize-route", OptimizeRoute(s))
	r.Get("/dashboard/stats", GetDashboardStats(s))

	// Admin endpoints
	r.Post("/admin/load-data", LoadData(s, hub))
	r.Post("/admin/save-data", SaveData(s))

	return r
}

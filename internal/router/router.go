package router

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/TheGeniusEditor/Sultan/internal/database"
	"github.com/TheGeniusEditor/Sultan/internal/handler"
	"github.com/TheGeniusEditor/Sultan/internal/service"
	"github.com/TheGeniusEditor/Sultan/internal/ws"
	"github.com/TheGeniusEditor/Sultan/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// New creates a Chi router with all application routes wired up.
func New(queries *database.Queries, pool *pgxpool.Pool, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration. The pages are served from this process, but the
	// kitchen display is sometimes opened from a tablet pointed at a LAN
	// address, so cross-origin API reads stay open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Pages
	pageHandler, err := handler.NewPageHandler(web.Templates)
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}
	pageHandler.RegisterRoutes(r)

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatalf("static assets: %v", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// WebSocket route for live kitchen updates
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	// Checkout
	checkoutService := service.NewCheckoutService(pool, func(db database.DBTX) service.CheckoutStore {
		return database.New(db)
	})
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, hub)
	checkoutHandler.RegisterRoutes(r)

	// Orders (kitchen display poll)
	orderHandler := handler.NewOrderHandler(queries)
	orderHandler.RegisterRoutes(r)

	// Earnings ledger
	earningsHandler := handler.NewEarningsHandler(queries)
	earningsHandler.RegisterRoutes(r)

	log.Println("Router initialized with all handlers")
	return r
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/frontend"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
)

// UseCases groups the use cases served over HTTP
type UseCases struct {
	employeeForm  interfaces.EmployeeForm
	notifications interfaces.Notifications
}

// NewUseCases creates a new UseCases
func NewUseCases(employeeForm interfaces.EmployeeForm, notifications interfaces.Notifications) *UseCases {
	return &UseCases{
		employeeForm:  employeeForm,
		notifications: notifications,
	}
}

// Config holds HTTP controller settings
type Config struct {
	addr         string
	messages     *model.Messages
	secureCookie bool
}

// NewConfig creates a new Config. A nil messages catalog selects the defaults.
func NewConfig(addr string, messages *model.Messages, secureCookie bool) *Config {
	if messages == nil {
		messages = model.DefaultMessages()
	}
	return &Config{
		addr:         addr,
		messages:     messages,
		secureCookie: secureCookie,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg *Config, useCases *UseCases) (*Server, error) {
	pages, err := frontend.ParsePages()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page templates")
	}
	staticFS, err := frontend.GetStaticFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded static files")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)
	router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(staticFS)))

	employeeHandler := NewEmployeeHandler(useCases.employeeForm, useCases.notifications, cfg.messages, pages)

	router.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(cfg.secureCookie))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, model.EmployeeListRoute, http.StatusFound)
		})
		r.Route(model.EmployeeListRoute, func(r chi.Router) {
			r.Get("/", employeeHandler.HandleList)
			r.Get("/{employeeID}", employeeHandler.HandleShowForm)
			r.Post("/{employeeID}", employeeHandler.HandleSubmitForm)
		})
	})

	ctxlog.From(ctx).Info("HTTP routes configured", "addr", cfg.addr)

	return &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "roster",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

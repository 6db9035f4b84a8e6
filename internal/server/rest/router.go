// Package rest exposes the HTTP and websocket API of the clipboard sync
// server.
package rest

import (
	"net/http"

	"github.com/dmitrijs2005/clipsync/internal/logging"
	"github.com/dmitrijs2005/clipsync/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
)

// Handler holds the services the HTTP layer dispatches into.
type Handler struct {
	auth      *services.AuthService
	users     *services.UserService
	devices   *services.DeviceService
	clipboard *services.ClipboardService
	logger    logging.Logger
	upgrader  websocket.Upgrader
}

func NewHandler(auth *services.AuthService, users *services.UserService, devices *services.DeviceService, clipboard *services.ClipboardService, logger logging.Logger) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		devices:   devices,
		clipboard: clipboard,
		logger:    logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router assembles the chi router with middleware and all API routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(h.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/refresh", h.refresh)
			r.Post("/logout", h.logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authenticator)

			r.Get("/users/me", h.me)

			r.Route("/clipboard", func(r chi.Router) {
				r.Post("/", h.saveClipboard)
				r.Get("/", h.listClipboard)
				r.Delete("/", h.deleteAllClipboard)
				r.Get("/latest", h.latestClipboard)
				r.Get("/{id}", h.getClipboard)
				r.Delete("/{id}", h.deleteClipboard)
			})

			r.Route("/devices", func(r chi.Router) {
				r.Post("/", h.registerDevice)
				r.Get("/", h.listDevices)
				r.Get("/{id}", h.getDevice)
				r.Delete("/{id}", h.removeDevice)
				r.Get("/{id}/clipboard", h.listDeviceClipboard)
			})
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(h.authenticator)
		r.Get("/ws", h.watch)
	})

	return r
}

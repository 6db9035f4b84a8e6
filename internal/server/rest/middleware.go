package rest

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/logging"
	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// userIDFromContext returns the authenticated user id placed there by the
// auth middleware.
func userIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// requireUser fetches the authenticated user id, writing an auth error when
// the middleware did not run.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrInvalidToken)
	}
	return id, ok
}

// bearerToken extracts the access token from the Authorization header, or
// from the access_token query parameter as a fallback for websocket clients
// that cannot set headers.
func bearerToken(r *http.Request) string {
	header := r.Header.Get(common.AuthorizationHeaderName)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get(common.AccessTokenQueryParam)
}

// RequestLogger logs method, path, status and duration of every request.
func RequestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrade reach the underlying connection.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	conn, rw, err := hj.Hijack()
	if err == nil {
		r.status = http.StatusSwitchingProtocols
	}
	return conn, rw, err
}

// authenticator verifies the request's access token and stores the subject
// user id in the request context.
func (h *Handler) authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, common.ErrInvalidToken)
			return
		}
		userID, err := h.auth.VerifyAccess(token)
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

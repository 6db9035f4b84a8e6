package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/clipsync/internal/broadcast"
)

// watch upgrades the connection and streams clipboard entries owned by the
// authenticated user as they are saved. The stream is lossy: a client that
// falls behind misses the oldest entries and should re-sync over the list
// endpoints.
func (h *Handler) watch(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	// subscribe before the handshake completes, so entries saved right
	// after the client connects are not missed
	sub := h.clipboard.Subscribe()
	defer sub.Close()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn(r.Context(), "websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// drain the read side so close frames are processed
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		entry, err := sub.Recv(ctx)
		if err != nil {
			var lagged *broadcast.LaggedError
			if errors.As(err, &lagged) {
				h.logger.Warn(ctx, "watcher lagged", "user_id", userID.String(), "missed", lagged.Missed)
				continue
			}
			return
		}

		if entry.UserID != userID {
			continue
		}

		if err := conn.WriteJSON(entry); err != nil {
			h.logger.Debug(ctx, "watcher write failed", "user_id", userID.String(), "error", err.Error())
			return
		}
	}
}

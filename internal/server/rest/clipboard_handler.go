package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) saveClipboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req saveClipboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.DeviceID == uuid.Nil {
		writeBadRequest(w, "device_id is required")
		return
	}

	stored, err := h.clipboard.Save(r.Context(), &models.Clipboard{
		ID:       req.ID,
		Content:  req.Content,
		DeviceID: req.DeviceID,
		UserID:   userID,
		SentAt:   req.SentAt,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) getClipboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid clipboard id")
		return
	}

	entry, err := h.clipboard.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if entry.UserID != userID {
		writeError(w, common.ErrForbidden)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) listClipboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.clipboard.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) latestClipboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entry, err := h.clipboard.LatestForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) deleteClipboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid clipboard id")
		return
	}

	if err := h.clipboard.Delete(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAllClipboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	deleted, err := h.clipboard.DeleteForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}

func (h *Handler) listDeviceClipboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	deviceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid device id")
		return
	}

	// ownership check goes through the device registry
	if _, err := h.devices.Get(r.Context(), deviceID, userID); err != nil {
		writeError(w, err)
		return
	}

	list, err := h.clipboard.ListForDevice(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

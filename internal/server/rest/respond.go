package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/clipsync/internal/common"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps a service error to an HTTP status and a stable machine
// code. Unrecognized errors come out as a bare internal_error so nothing
// about the failure leaks to the client.
func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	message := "internal server error"

	switch {
	case errors.Is(err, common.ErrTokenExpired):
		status, code, message = http.StatusUnauthorized, "token_expired", "token expired"
	case errors.Is(err, common.ErrInvalidToken):
		status, code, message = http.StatusUnauthorized, "invalid_token", "invalid token"
	case errors.Is(err, common.ErrInvalidCredentials):
		status, code, message = http.StatusUnauthorized, "invalid_credentials", "invalid credentials"
	case errors.Is(err, common.ErrForbidden):
		status, code, message = http.StatusForbidden, "forbidden", "forbidden"
	case errors.Is(err, common.ErrUserNotFound):
		status, code, message = http.StatusNotFound, "user_not_found", "user not found"
	case errors.Is(err, common.ErrDeviceNotFound):
		status, code, message = http.StatusNotFound, "device_not_found", "device not found"
	case errors.Is(err, common.ErrClipboardNotFound):
		status, code, message = http.StatusNotFound, "clipboard_not_found", "clipboard entry not found"
	case errors.Is(err, common.ErrorNotFound):
		status, code, message = http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, common.ErrContentTooLarge):
		status, code, message = http.StatusRequestEntityTooLarge, "content_too_large", "content too large"
	case errors.Is(err, common.ErrPasswordTooShort):
		status, code, message = http.StatusBadRequest, "password_too_short", "password too short"
	case errors.Is(err, common.ErrUsernameTaken):
		status, code, message = http.StatusConflict, "username_taken", "username already taken"
	case errors.Is(err, common.ErrBroadcast):
		status, code, message = http.StatusInternalServerError, "broadcast_error", "broadcast error"
	}

	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Code: "bad_request", Message: message})
}

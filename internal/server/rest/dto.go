package rest

import (
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type authResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type saveClipboardRequest struct {
	ID       uuid.UUID `json:"id,omitempty"`
	Content  string    `json:"content"`
	DeviceID uuid.UUID `json:"device_id"`
	SentAt   int64     `json:"sent_at,omitempty"`
}

type deletedResponse struct {
	Deleted int `json:"deleted"`
}

type registerDeviceRequest struct {
	Name string `json:"name"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

// Package api implements the HTTP and websocket client for the clipboard
// sync server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a thin wrapper over the server's REST API. It keeps the current
// token pair and re-sends the access token on every authenticated call; the
// caller is responsible for refreshing after a token_expired failure.
type Client struct {
	baseURL      string
	http         *http.Client
	accessToken  string
	refreshToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Session wire types shared with the server.

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type Session struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// toSentinel converts a machine code from the server into the matching
// local error so callers can use errors.Is.
func (e *apiError) toSentinel() error {
	switch e.Code {
	case "invalid_token":
		return common.ErrInvalidToken
	case "token_expired":
		return common.ErrTokenExpired
	case "invalid_credentials":
		return common.ErrInvalidCredentials
	case "forbidden":
		return common.ErrForbidden
	case "user_not_found":
		return common.ErrUserNotFound
	case "device_not_found":
		return common.ErrDeviceNotFound
	case "clipboard_not_found":
		return common.ErrClipboardNotFound
	case "content_too_large":
		return common.ErrContentTooLarge
	case "password_too_short":
		return common.ErrPasswordTooShort
	case "username_taken":
		return common.ErrUsernameTaken
	}
	return e
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Code == "" {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return apiErr.toSentinel()
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Register creates an account and stores the returned token pair.
func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/register", Credentials{Username: username, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	c.accessToken = session.AccessToken
	c.refreshToken = session.RefreshToken
	return &session.User, nil
}

// Login authenticates and stores the returned token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", Credentials{Username: username, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	c.accessToken = session.AccessToken
	c.refreshToken = session.RefreshToken
	return &session.User, nil
}

// Refresh trades the stored refresh token for a fresh access token.
func (c *Client) Refresh(ctx context.Context) error {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/refresh", map[string]string{"refresh_token": c.refreshToken}, &out)
	if err != nil {
		return err
	}
	c.accessToken = out.AccessToken
	return nil
}

// Logout revokes the stored token pair and forgets it locally.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", map[string]string{"refresh_token": c.refreshToken}, nil)
	c.accessToken = ""
	c.refreshToken = ""
	return err
}

// LoggedIn reports whether the client holds an access token.
func (c *Client) LoggedIn() bool {
	return c.accessToken != ""
}

// RegisterDevice records this machine in the server's device registry.
func (c *Client) RegisterDevice(ctx context.Context, name string) (*models.Device, error) {
	var device models.Device
	err := c.do(ctx, http.MethodPost, "/api/devices/", map[string]string{"name": name}, &device)
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// Devices lists devices registered by the current user.
func (c *Client) Devices(ctx context.Context) ([]models.Device, error) {
	var list []models.Device
	if err := c.do(ctx, http.MethodGet, "/api/devices/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Send uploads clipboard content from the given device.
func (c *Client) Send(ctx context.Context, deviceID uuid.UUID, content string) (*models.Clipboard, error) {
	var stored models.Clipboard
	body := map[string]any{"content": content, "device_id": deviceID}
	if err := c.do(ctx, http.MethodPost, "/api/clipboard/", body, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// History lists the user's clipboard entries, newest first.
func (c *Client) History(ctx context.Context) ([]models.Clipboard, error) {
	var list []models.Clipboard
	if err := c.do(ctx, http.MethodGet, "/api/clipboard/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Latest fetches the most recent clipboard entry.
func (c *Client) Latest(ctx context.Context) (*models.Clipboard, error) {
	var entry models.Clipboard
	if err := c.do(ctx, http.MethodGet, "/api/clipboard/latest", nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Watch opens the websocket stream and invokes fn for every entry until ctx
// is cancelled or the connection drops. The stream is lossy; History is the
// authoritative source.
func (c *Client) Watch(ctx context.Context, fn func(models.Clipboard)) error {
	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http")
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL+"/ws?"+common.AccessTokenQueryParam+"="+c.accessToken, nil)
	if err != nil {
		return err
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		conn.Close()
	}()

	for {
		var entry models.Clipboard
		if err := conn.ReadJSON(&entry); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		fn(entry)
	}
}

// Package cli implements the interactive clipboard sync client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/clipsync/internal/client/api"
	"github.com/dmitrijs2005/clipsync/internal/client/config"
	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	deviceID uuid.UUID
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	if c.ServerEndpointAddr == "" {
		return nil, errors.New("server endpoint address is not configured")
	}

	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// ensureDevice registers this machine once per session so clipboard entries
// carry a device id the server knows about.
func (a *App) ensureDevice(ctx context.Context) error {
	if a.deviceID != uuid.Nil {
		return nil
	}
	device, err := a.api.RegisterDevice(ctx, a.config.DeviceName)
	if err != nil {
		return err
	}
	a.deviceID = device.ID
	return nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			fmt.Println("Username is already taken")
			return err
		}
		if errors.Is(err, common.ErrPasswordTooShort) {
			fmt.Println("Password is too short")
			return err
		}
		fmt.Println("Registration failed:", err)
		return err
	}

	a.userName = user.Username
	fmt.Println("Registered as", user.Username)
	return a.ensureDevice(ctx)
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid username or password")
			return err
		}
		fmt.Println("Login failed:", err)
		return err
	}

	a.userName = user.Username
	fmt.Println("Logged in as", user.Username)
	return a.ensureDevice(ctx)
}

func (a *App) Send(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Enter clipboard content", os.Stdout)
	if err != nil {
		return err
	}

	stored, err := a.api.Send(ctx, a.deviceID, content)
	if err != nil {
		if errors.Is(err, common.ErrContentTooLarge) {
			fmt.Println("Content exceeds the server's size limit")
			return err
		}
		fmt.Println("Send failed:", err)
		return err
	}

	fmt.Println("Sent entry", stored.ID)
	return nil
}

func (a *App) Latest(ctx context.Context) error {
	entry, err := a.api.Latest(ctx)
	if err != nil {
		if errors.Is(err, common.ErrClipboardNotFound) {
			fmt.Println("The clipboard is empty")
			return err
		}
		fmt.Println("Fetch failed:", err)
		return err
	}

	fmt.Println(entry.Content)
	return nil
}

func (a *App) History(ctx context.Context) error {
	list, err := a.api.History(ctx)
	if err != nil {
		fmt.Println("Fetch failed:", err)
		return err
	}
	if len(list) == 0 {
		fmt.Println("No entries")
		return nil
	}
	for _, entry := range list {
		fmt.Printf("%s  %s\n", entry.ID, entry.Content)
	}
	return nil
}

func (a *App) Devices(ctx context.Context) error {
	list, err := a.api.Devices(ctx)
	if err != nil {
		fmt.Println("Fetch failed:", err)
		return err
	}
	for _, device := range list {
		fmt.Printf("%s  %s\n", device.ID, device.Name)
	}
	return nil
}

// Watch streams clipboard updates until the user interrupts with Enter.
func (a *App) Watch(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		_, _ = a.reader.ReadString('\n')
		cancel()
	}()

	fmt.Println("Watching for clipboard updates (press Enter to stop)")
	err := a.api.Watch(watchCtx, func(entry models.Clipboard) {
		fmt.Printf("[%s] %s\n", entry.DeviceID, entry.Content)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("Watch ended:", err)
		return err
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	a.userName = ""
	a.deviceID = uuid.Nil
	fmt.Println("Logged out")
	return nil
}

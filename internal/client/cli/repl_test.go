package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Send(ctx context.Context) error     { return s.record("send") }
func (s *stubExec) Latest(ctx context.Context) error   { return s.record("latest") }
func (s *stubExec) History(ctx context.Context) error  { return s.record("history") }
func (s *stubExec) Devices(ctx context.Context) error  { return s.record("devices") }
func (s *stubExec) Watch(ctx context.Context) error    { return s.record("watch") }
func (s *stubExec) Logout(ctx context.Context) error   { return s.record("logout") }

func runWithInput(t *testing.T, a execIface, input string) []string {
	t.Helper()

	var printed []string
	orig := printlnFn
	defer func() { printlnFn = orig }()
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			printed = append(printed, strings.TrimSpace(anyToString(arg)))
		}
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
	return printed
}

func anyToString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{loggedIn: true}

	runWithInput(t, stub, "send\nlatest\nhistory\ndevices\nwatch\nlogout\nexit\n")

	assert.Equal(t, []string{"send", "latest", "history", "devices", "watch", "logout"}, stub.calls)
}

func TestREPL_ShortAliases(t *testing.T) {
	stub := &stubExec{loggedIn: true}

	runWithInput(t, stub, "h\nquit\n")

	assert.Equal(t, []string{"history"}, stub.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	stub := &stubExec{}
	printed := runWithInput(t, stub, "help\nexit\n")
	assert.Contains(t, printed, "Available commands: register, login, exit")

	stub = &stubExec{loggedIn: true}
	printed = runWithInput(t, stub, "help\nexit\n")
	assert.Contains(t, printed, "Available commands: send, latest, (h)istory, devices, watch, logout, exit")
}

func TestREPL_UnknownCommand(t *testing.T) {
	stub := &stubExec{}
	printed := runWithInput(t, stub, "frobnicate\nexit\n")

	assert.Contains(t, printed, "Unknown command:")
	assert.Empty(t, stub.calls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	runWithInput(t, stub, "")
	assert.Empty(t, stub.calls)
}

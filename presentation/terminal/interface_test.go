package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"webdrill/application/webdriver"
	"webdrill/domain/entities"
	"webdrill/infrastructure/config"
	"webdrill/infrastructure/security"
	"webdrill/infrastructure/storage"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	cmds      []entities.Command
	responses map[entities.Command]interface{}
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd entities.Command, params entities.Params) (interface{}, error) {
	f.cmds = append(f.cmds, cmd)
	if resp, ok := f.responses[cmd]; ok {
		return resp, nil
	}
	return map[string]interface{}{"value": nil}, nil
}

func newFake() *fakeExecutor {
	return &fakeExecutor{responses: map[entities.Command]interface{}{
		entities.NewSession:     map[string]interface{}{"sessionId": "fresh-1"},
		entities.FindElement:    map[string]interface{}{"value": map[string]interface{}{"ELEMENT": "e1"}},
		entities.GetElementText: map[string]interface{}{"value": "Hello"},
		entities.GetTitle:       map[string]interface{}{"value": "Front page"},
	}}
}

func newTestTerminal(t *testing.T, exec *fakeExecutor, input string) (*TerminalInterface, *bytes.Buffer) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	store, err := storage.NewSessionState(t.TempDir())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	session := webdriver.AttachSession(exec, "abc123", logger)
	term := New(session, store, security.NewSecurityLayer(logger), logger, strings.NewReader(input), out)
	return term, out
}

func TestTerminal_RunSession(t *testing.T) {
	exec := newFake()
	term, out := newTestTerminal(t, exec, strings.Join([]string{
		"get https://www.pixiv.net",
		"find tag name form",
		"text",
		"raw getTitle",
		"quit",
		"y",
	}, "\n")+"\n")

	require.NoError(t, term.Run())

	assert.Equal(t, []entities.Command{
		entities.Get,
		entities.FindElement,
		entities.GetElementText,
		entities.GetTitle,
		entities.Quit,
	}, exec.cmds)
	assert.Contains(t, out.String(), "element e1")
	assert.Contains(t, out.String(), "Hello")
	assert.Contains(t, out.String(), `"value": "Front page"`)
	assert.Contains(t, out.String(), "quit is high risk")
}

func TestTerminal_QuitDeclined(t *testing.T) {
	exec := newFake()
	term, out := newTestTerminal(t, exec, "quit\nn\nexit\n")

	require.NoError(t, term.Run())
	assert.Empty(t, exec.cmds)
	assert.Contains(t, out.String(), "Leaving session abc123 running")
}

func TestTerminal_Errors(t *testing.T) {
	exec := newFake()
	term, _ := newTestTerminal(t, exec, "")
	ctx := context.Background()

	_, err := term.Handle(ctx, "text")
	assert.ErrorContains(t, err, "no element selected")

	_, err = term.Handle(ctx, "find sideways x")
	assert.ErrorContains(t, err, "unknown locator strategy")

	_, err = term.Handle(ctx, "raw teleport")
	assert.ErrorIs(t, err, entities.ErrUnsupportedCommand)

	_, err = term.Handle(ctx, "raw get [1,2]")
	assert.ErrorContains(t, err, "JSON object")

	_, err = term.Handle(ctx, "dance")
	assert.ErrorContains(t, err, "unknown command")

	assert.Empty(t, exec.cmds)
}

func TestSplitLocator(t *testing.T) {
	strategy, value, ok := splitLocator("css selector div.item > a")
	require.True(t, ok)
	assert.Equal(t, "css selector", strategy)
	assert.Equal(t, "div.item > a", value)

	strategy, value, ok = splitLocator("xpath //a[@href]")
	require.True(t, ok)
	assert.Equal(t, "xpath", strategy)
	assert.Equal(t, "//a[@href]", value)

	_, _, ok = splitLocator("id")
	assert.False(t, ok)
}

func TestOpenSession(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	store, err := storage.NewSessionState(t.TempDir())
	require.NoError(t, err)
	cfg := &config.Config{ServerURL: "http://grid:4444/wd/hub", BrowserName: "firefox"}

	exec := newFake()
	session, err := openSession(context.Background(), exec, store, cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, "fresh-1", session.ID())
	assert.Equal(t, []entities.Command{entities.NewSession}, exec.cmds)

	// second start re-attaches without creating a session
	exec = newFake()
	session, err = openSession(context.Background(), exec, store, cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, "fresh-1", session.ID())
	assert.Empty(t, exec.cmds)
}

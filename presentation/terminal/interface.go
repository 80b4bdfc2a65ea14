package terminal

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"webdrill/application/webdriver"
	"webdrill/domain/entities"
	"webdrill/domain/interfaces"
	"webdrill/infrastructure/config"
	"webdrill/infrastructure/remote"
	"webdrill/infrastructure/security"
	"webdrill/infrastructure/storage"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"go.uber.org/multierr"
)

type TerminalInterface struct {
	session       webdriver.Session
	element       *webdriver.Element
	store         interfaces.SessionStore
	guard         interfaces.CommandGuard
	logger        *logrus.Logger
	reader        *bufio.Reader
	out           io.Writer
	metricsServer *http.Server
	serverURL     string
}

func NewTerminalInterface() (*TerminalInterface, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger := cfg.NewLogger()

	store, err := storage.NewSessionState(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize state storage: %w", err)
	}

	conn := remote.NewConnection(cfg.ServerURL, logger,
		remote.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))

	session, err := openSession(context.Background(), conn, store, cfg, logger)
	if err != nil {
		return nil, err
	}

	t := New(session, store, security.NewSecurityLayer(logger), logger, os.Stdin, os.Stdout)
	t.serverURL = cfg.ServerURL
	if cfg.MetricsAddr != "" {
		t.metricsServer = serveMetrics(cfg.MetricsAddr, logger)
	}
	return t, nil
}

// New - wires a terminal around an existing session
func New(session webdriver.Session, store interfaces.SessionStore, guard interfaces.CommandGuard, logger *logrus.Logger, in io.Reader, out io.Writer) *TerminalInterface {
	return &TerminalInterface{
		session: session,
		store:   store,
		guard:   guard,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// openSession - re-attaches to the saved session for this server, or opens a new one
func openSession(ctx context.Context, conn interfaces.CommandExecutor, store interfaces.SessionStore, cfg *config.Config, logger *logrus.Logger) (webdriver.Session, error) {
	state, err := store.LoadSession()
	if err != nil {
		logger.Warnf("Ignoring saved session: %v", err)
	}
	if state.Matches(cfg.ServerURL) {
		logger.Infof("Re-attaching to session %s", state.SessionID)
		return webdriver.AttachSession(conn, state.SessionID, logger), nil
	}

	caps := selenium.Capabilities{"browserName": cfg.BrowserName}
	session, err := webdriver.NewSessionWithExecutor(ctx, conn, logger, caps)
	if err != nil {
		return webdriver.Session{}, fmt.Errorf("failed to start session on %s: %w", cfg.ServerURL, err)
	}

	if err := store.SaveSession(entities.SessionState{
		ServerURL: cfg.ServerURL,
		SessionID: session.ID(),
	}); err != nil {
		logger.Warnf("Failed to save session state: %v", err)
	}
	return session, nil
}

func serveMetrics(addr string, logger *logrus.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Metrics server stopped: %v", err)
		}
	}()
	logger.Infof("Serving metrics on %s/metrics", addr)
	return srv
}

func (t *TerminalInterface) Run() error {
	fmt.Fprintln(t.out, "webdrill")
	fmt.Fprintln(t.out, "========")
	fmt.Fprintf(t.out, "Session %s. Type 'help' for commands, 'exit' to leave the session running, 'quit' to end it\n\n", t.session.ID())

	ctx := context.Background()
	for {
		fmt.Fprint(t.out, "> ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		done, err := t.Handle(ctx, input)
		if err != nil {
			fmt.Fprintf(t.out, "Error: %v\n", err)
			var serverErr *entities.ServerError
			if errors.As(err, &serverErr) {
				t.logger.Debugf("Server response body: %v", serverErr.Body)
			}
		}
		if done {
			return nil
		}
	}
}

// Handle - runs one terminal line; done reports whether the loop should stop
func (t *TerminalInterface) Handle(ctx context.Context, line string) (done bool, err error) {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "help":
		t.printHelp()
	case "exit", "q":
		fmt.Fprintf(t.out, "Leaving session %s running\n", t.session.ID())
		return true, nil
	case "quit":
		if !t.approve(entities.Quit) {
			return false, nil
		}
		if err := t.session.Quit(ctx); err != nil {
			return false, err
		}
		t.session = webdriver.Session{}
		if err := t.store.ClearSession(); err != nil {
			t.logger.Warnf("Failed to clear session state: %v", err)
		}
		return true, nil
	case "get":
		if rest == "" {
			return false, fmt.Errorf("usage: get <url>")
		}
		_, err := t.session.Navigate(ctx, rest)
		return false, err
	case "url":
		return false, t.printString(t.session.CurrentURL(ctx))
	case "title":
		return false, t.printString(t.session.Title(ctx))
	case "find", "child":
		return false, t.find(ctx, verb == "child", rest)
	case "text":
		el, err := t.current()
		if err != nil {
			return false, err
		}
		return false, t.printString(el.Text(ctx))
	case "click":
		el, err := t.current()
		if err != nil {
			return false, err
		}
		return false, el.Click(ctx)
	case "clear":
		el, err := t.current()
		if err != nil {
			return false, err
		}
		return false, el.Clear(ctx)
	case "type":
		el, err := t.current()
		if err != nil {
			return false, err
		}
		return false, el.SendKeys(ctx, rest)
	case "attr":
		el, err := t.current()
		if err != nil {
			return false, err
		}
		return false, t.printString(el.Attribute(ctx, rest))
	case "raw":
		return false, t.raw(ctx, rest)
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", verb)
	}
	return false, nil
}

func (t *TerminalInterface) find(ctx context.Context, child bool, args string) error {
	strategy, value, ok := splitLocator(args)
	if !ok {
		return fmt.Errorf("usage: find|child <strategy> <value>")
	}
	by, ok := entities.ParseBy(strategy)
	if !ok {
		return fmt.Errorf("unknown locator strategy %q", strategy)
	}

	var (
		el  webdriver.Element
		err error
	)
	if child {
		parent, cerr := t.current()
		if cerr != nil {
			return cerr
		}
		el, err = parent.FindElement(ctx, by, value)
	} else {
		el, err = t.session.FindElement(ctx, by, value)
	}
	if err != nil {
		return err
	}
	t.element = &el
	fmt.Fprintf(t.out, "element %s\n", el.ID())
	return nil
}

// splitLocator accepts both "css selector div" and "css_selector div".
func splitLocator(args string) (strategy, value string, ok bool) {
	for _, by := range entities.AllStrategies {
		prefix := string(by) + " "
		if strings.HasPrefix(args, prefix) {
			return string(by), strings.TrimSpace(args[len(prefix):]), true
		}
	}
	strategy, value, ok = strings.Cut(args, " ")
	return strategy, strings.TrimSpace(value), ok && value != ""
}

// raw - executes any registered command; the JSON object after the name becomes the parameter set
func (t *TerminalInterface) raw(ctx context.Context, args string) error {
	name, body, _ := strings.Cut(args, " ")
	cmd, ok := entities.ParseCommand(name)
	if !ok {
		return fmt.Errorf("%w: %q", entities.ErrUnsupportedCommand, name)
	}

	params := entities.Params{}
	if body = strings.TrimSpace(body); body != "" {
		if err := json.Unmarshal([]byte(body), &params); err != nil {
			return fmt.Errorf("parameters must be a JSON object: %w", err)
		}
	}

	if !t.approve(cmd) {
		return nil
	}

	var (
		resp interface{}
		err  error
	)
	if _, template, _ := remote.Resolve(cmd); t.element != nil && strings.Contains(template, "$id") {
		resp, err = t.element.Execute(ctx, cmd, params)
	} else {
		resp, err = t.session.Execute(ctx, cmd, params)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(t.out, string(out))
	return nil
}

func (t *TerminalInterface) approve(cmd entities.Command) bool {
	if t.guard == nil || !t.guard.RequiresApproval(cmd) {
		return true
	}
	fmt.Fprintf(t.out, "%s is %s risk. Continue? (y/n): ", cmd, t.guard.GetCommandRiskLevel(cmd))
	answer, err := t.reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (t *TerminalInterface) current() (webdriver.Element, error) {
	if t.element == nil {
		return webdriver.Element{}, fmt.Errorf("no element selected, use 'find' first")
	}
	return *t.element, nil
}

func (t *TerminalInterface) printString(s string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(t.out, s)
	return nil
}

func (t *TerminalInterface) printHelp() {
	fmt.Fprintln(t.out, `  get <url>                 navigate
  url | title               current page info
  find <strategy> <value>   locate an element in the page
  child <strategy> <value>  locate inside the selected element
  text | click | clear      act on the selected element
  type <text>               send keys to the selected element
  attr <name>               read an attribute of the selected element
  raw <command> [json]      send any protocol command, e.g. raw getTitle
  exit                      leave, keeping the remote session
  quit                      end the remote session and leave`)
}

func (t *TerminalInterface) Close() error {
	var err error
	if t.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = multierr.Append(err, t.metricsServer.Shutdown(ctx))
		t.metricsServer = nil
	}
	// Refresh the saved state so the next run re-attaches to a live session
	if t.serverURL != "" && t.session.ID() != "" {
		err = multierr.Append(err, t.store.SaveSession(entities.SessionState{
			ServerURL: t.serverURL,
			SessionID: t.session.ID(),
		}))
	}
	return err
}

package webdriver

import (
	"context"
	"fmt"
	"io"

	"webdrill/domain/entities"
	"webdrill/domain/interfaces"
	"webdrill/infrastructure/remote"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// DefaultCapabilities are sent when a session is opened by address alone.
func DefaultCapabilities() selenium.Capabilities {
	return selenium.Capabilities{"browserName": "chrome"}
}

// Session is a handle on one remote browsing session. It is immutable and
// cheap to copy; copies address the same remote session.
type Session struct {
	executor interfaces.CommandExecutor
	id       string
	logger   *logrus.Logger
}

// NewSession - opens a chrome session on the server at serverAddr
func NewSession(ctx context.Context, serverAddr string, logger *logrus.Logger, opts ...remote.Option) (Session, error) {
	conn := remote.NewConnection(serverAddr, logger, opts...)
	return NewSessionWithExecutor(ctx, conn, logger, DefaultCapabilities())
}

// NewSessionWithExecutor - opens a session through exec with the given desired capabilities
func NewSessionWithExecutor(ctx context.Context, exec interfaces.CommandExecutor, logger *logrus.Logger, caps selenium.Capabilities) (Session, error) {
	if caps == nil {
		caps = DefaultCapabilities()
	}
	resp, err := exec.Execute(ctx, entities.NewSession, entities.Params{
		"desiredCapabilities": map[string]interface{}(caps),
	})
	if err != nil {
		return Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	id, ok := sessionID(resp)
	if !ok {
		return Session{}, entities.NewProtocolViolation(entities.NewSession, "sessionId")
	}

	s := AttachSession(exec, id, logger)
	s.logger.WithField("session_id", id).Info("Session created")
	return s, nil
}

// AttachSession - wraps an already running remote session
func AttachSession(exec interfaces.CommandExecutor, id string, logger *logrus.Logger) Session {
	return Session{
		executor: exec,
		id:       id,
		logger:   orDiscard(logger),
	}
}

// sessionID reads the legacy top-level sessionId, then the W3C value.sessionId.
func sessionID(resp interface{}) (string, bool) {
	if id, ok := field(resp, "sessionId").(string); ok && id != "" {
		return id, true
	}
	if id, ok := field(field(resp, "value"), "sessionId").(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// ID returns the server-assigned session identifier.
func (s Session) ID() string {
	return s.id
}

// Execute - sends cmd with this session's id injected into a copy of params
func (s Session) Execute(ctx context.Context, cmd entities.Command, params entities.Params) (interface{}, error) {
	return s.executor.Execute(ctx, cmd, params.With(entities.ParamSessionID, s.id))
}

// Navigate - loads url in the current window
func (s Session) Navigate(ctx context.Context, url string) (interface{}, error) {
	s.logger.WithField("session_id", s.id).Infof("Navigating to: %s", url)
	return s.Execute(ctx, entities.Get, entities.Params{"url": url})
}

// FindElement - locates the first element matching by/value in the document
func (s Session) FindElement(ctx context.Context, by entities.By, value string) (Element, error) {
	resp, err := s.Execute(ctx, entities.FindElement, locatorParams(by, value))
	if err != nil {
		return Element{}, err
	}
	id, ok := elementID(resp)
	if !ok {
		return Element{}, entities.NewProtocolViolation(entities.FindElement, "value.ELEMENT")
	}
	return newElement(s, id), nil
}

// CurrentURL - returns the URL of the current page
func (s Session) CurrentURL(ctx context.Context) (string, error) {
	return stringResult(entities.GetCurrentURL)(s.Execute(ctx, entities.GetCurrentURL, nil))
}

// Title - returns the current page title
func (s Session) Title(ctx context.Context) (string, error) {
	return stringResult(entities.GetTitle)(s.Execute(ctx, entities.GetTitle, nil))
}

// Quit - ends the remote session
func (s Session) Quit(ctx context.Context) error {
	if _, err := s.Execute(ctx, entities.Quit, nil); err != nil {
		return err
	}
	s.logger.WithField("session_id", s.id).Info("Session closed")
	return nil
}

func orDiscard(logger *logrus.Logger) *logrus.Logger {
	if logger != nil {
		return logger
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

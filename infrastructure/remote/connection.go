package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"webdrill/domain/entities"
	"webdrill/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultUserAgent = "webdrill/1.0"

// Connection sends protocol commands to one remote automation server.
// It is a plain value: copies share nothing mutable except the http.Client,
// which is safe for concurrent use.
type Connection struct {
	baseURL   string
	client    *http.Client
	logger    *logrus.Logger
	userAgent string
}

// Option customizes a Connection.
type Option func(*Connection)

// WithHTTPClient - sets the transport; timeouts and TLS belong here
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connection) {
		if client != nil {
			c.client = client
		}
	}
}

// WithUserAgent - overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Connection) {
		c.userAgent = ua
	}
}

// NewConnection - creates a connection to the server at baseURL (e.g. http://localhost:4444/wd/hub)
func NewConnection(baseURL string, logger *logrus.Logger, opts ...Option) Connection {
	c := Connection{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    http.DefaultClient,
		logger:    orDiscard(logger),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// BaseURL returns the server endpoint this connection targets.
func (c Connection) BaseURL() string {
	return c.baseURL
}

// Execute - resolves cmd, expands its path from params, strips sessionId from the
// body and performs one HTTP round trip. The caller's params are never modified.
func (c Connection) Execute(ctx context.Context, cmd entities.Command, params entities.Params) (interface{}, error) {
	params = params.Clone()

	method, template, err := Resolve(cmd)
	if err != nil {
		return nil, err
	}

	path := ExpandPath(template, params)
	delete(params, entities.ParamSessionID)

	target := c.baseURL + path
	if err := validateURL(target); err != nil {
		return nil, err
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s parameters: %w", cmd, err)
	}

	return c.request(ctx, cmd, method, target, body)
}

func (c Connection) request(ctx context.Context, cmd entities.Command, method, target string, body []byte) (interface{}, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %s for %s", entities.ErrUnsupportedVerb, method, cmd)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrMalformedURL, target, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	log := c.logger.WithFields(logrus.Fields{
		"command":    string(cmd),
		"method":     method,
		"url":        target,
		"request_id": requestID,
	})
	log.Debug("Sending command")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		recordCommand(cmd, 0, time.Since(start))
		log.WithError(err).Warn("Command transport failed")
		return nil, fmt.Errorf("%w: %s %s: %w", entities.ErrTransport, method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	recordCommand(cmd, resp.StatusCode, elapsed)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %w", entities.ErrTransport, cmd, err)
	}

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": elapsed,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := &entities.ServerError{
			Command:    cmd,
			StatusCode: resp.StatusCode,
			Body:       decodeLenient(raw),
		}
		log.WithField("message", serverErr.Message()).Warn("Server rejected command")
		return nil, serverErr
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		log.WithError(err).Warn("Response is not valid JSON")
		return nil, fmt.Errorf("%w: %s response: %w", entities.ErrDecode, cmd, err)
	}
	log.Debug("Command completed")
	return value, nil
}

func validateURL(target string) error {
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", entities.ErrMalformedURL, target, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s: need an http(s) URL with a host", entities.ErrMalformedURL, target)
	}
	return nil
}

// decodeLenient returns the parsed JSON body, or the trimmed text when it does not parse.
func decodeLenient(raw []byte) interface{} {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return value
}

func orDiscard(logger *logrus.Logger) *logrus.Logger {
	if logger != nil {
		return logger
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

var _ interfaces.CommandExecutor = Connection{}

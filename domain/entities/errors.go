package entities

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the protocol core. Every failure is returned to the
// caller wrapped around one of these; none of them terminate the process.
var (
	ErrTransport          = errors.New("transport error")
	ErrMalformedURL       = errors.New("malformed url")
	ErrDecode             = errors.New("decode error")
	ErrServer             = errors.New("server error")
	ErrProtocolViolation  = errors.New("protocol violation")
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrUnsupportedVerb    = errors.New("unsupported verb")
)

// ServerError is returned when the remote end answers with a non-2xx status.
// Body holds the decoded JSON when the payload parsed, otherwise the raw text.
type ServerError struct {
	Command    Command
	StatusCode int
	Body       interface{}
}

func (e *ServerError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("server error [%d] on %s: %s", e.StatusCode, e.Command, msg)
	}
	return fmt.Sprintf("server error [%d] on %s", e.StatusCode, e.Command)
}

// Is lets errors.Is(err, ErrServer) match any ServerError.
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// Message - extracts value.message from the protocol error envelope, if present
func (e *ServerError) Message() string {
	body, ok := e.Body.(map[string]interface{})
	if !ok {
		if s, ok := e.Body.(string); ok {
			return s
		}
		return ""
	}
	value, ok := body["value"].(map[string]interface{})
	if !ok {
		return ""
	}
	msg, _ := value["message"].(string)
	return msg
}

// NewProtocolViolation reports a successful response that lacks an expected field.
func NewProtocolViolation(cmd Command, field string) error {
	return fmt.Errorf("%w: %s response has no %s", ErrProtocolViolation, cmd, field)
}

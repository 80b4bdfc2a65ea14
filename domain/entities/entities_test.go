package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCommands_Unique(t *testing.T) {
	seen := make(map[Command]bool, len(AllCommands))
	for _, c := range AllCommands {
		assert.False(t, seen[c], "duplicate command %s", c)
		seen[c] = true
	}
}

func TestParseCommand(t *testing.T) {
	c, ok := ParseCommand("findChildElement")
	require.True(t, ok)
	assert.Equal(t, FindChildElement, c)

	_, ok = ParseCommand("teleport")
	assert.False(t, ok)
}

func TestParseBy(t *testing.T) {
	tests := map[string]By{
		"id":                ByID,
		"css selector":      ByCSSSelector,
		"css_selector":      ByCSSSelector,
		"Link-Text":         ByLinkText,
		"partial_link_text": ByPartialLinkText,
		" tag name ":        ByTagName,
	}
	for in, want := range tests {
		got, ok := ParseBy(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseBy("accessibility id")
	assert.False(t, ok)
}

func TestBy_WireStrings(t *testing.T) {
	assert.Equal(t, "css selector", ByCSSSelector.String())
	assert.Equal(t, "partial link text", ByPartialLinkText.String())
	assert.Len(t, AllStrategies, 8)
}

func TestParams_CloneIsIndependent(t *testing.T) {
	orig := Params{"sessionId": "abc", "url": "http://example.com"}
	clone := orig.Clone()
	delete(clone, "sessionId")
	clone["extra"] = true

	assert.Equal(t, Params{"sessionId": "abc", "url": "http://example.com"}, orig)

	var nilParams Params
	assert.NotNil(t, nilParams.Clone())
	assert.Empty(t, nilParams.Clone())
}

func TestParams_With(t *testing.T) {
	base := Params{"using": "xpath"}
	out := base.With(ParamID, "e1")

	assert.Equal(t, "e1", out[ParamID])
	assert.NotContains(t, base, ParamID)
}

func TestServerError(t *testing.T) {
	err := fmt.Errorf("find failed: %w", &ServerError{
		Command:    FindElement,
		StatusCode: 404,
		Body: map[string]interface{}{
			"value": map[string]interface{}{"message": "no such element"},
		},
	})

	assert.True(t, errors.Is(err, ErrServer))
	assert.False(t, errors.Is(err, ErrTransport))

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, 404, serverErr.StatusCode)
	assert.Equal(t, "no such element", serverErr.Message())
	assert.Contains(t, err.Error(), "[404]")

	plain := &ServerError{Command: Get, StatusCode: 500, Body: "boom"}
	assert.Equal(t, "boom", plain.Message())
}

func TestNewProtocolViolation(t *testing.T) {
	err := NewProtocolViolation(NewSession, "sessionId")
	assert.True(t, errors.Is(err, ErrProtocolViolation))
	assert.Contains(t, err.Error(), "sessionId")
}

func TestSessionState_Matches(t *testing.T) {
	var nilState *SessionState
	assert.False(t, nilState.Matches("http://x"))

	s := &SessionState{ServerURL: "http://x", SessionID: "abc"}
	assert.True(t, s.Matches("http://x"))
	assert.False(t, s.Matches("http://y"))
	assert.False(t, (&SessionState{ServerURL: "http://x"}).Matches("http://x"))
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"webdrill/domain/entities"
	"webdrill/domain/interfaces"
)

const sessionStateFile = "session.json"

type sessionState struct {
	statePath string
}

// NewSessionState - creates session state storage under dir
func NewSessionState(dir string) (interfaces.SessionStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &sessionState{
		statePath: filepath.Join(dir, sessionStateFile),
	}, nil
}

// SaveSession - saves session state to file
func (s *sessionState) SaveSession(state entities.SessionState) error {
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now().UTC()
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.statePath, data, 0644)
}

// LoadSession - loads session state from file
func (s *sessionState) LoadSession() (*entities.SessionState, error) {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state entities.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("corrupt session state %s: %w", s.statePath, err)
	}

	return &state, nil
}

// ClearSession - removes the saved session state
func (s *sessionState) ClearSession() error {
	if err := os.Remove(s.statePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

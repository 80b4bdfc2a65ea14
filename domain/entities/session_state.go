package entities

import "time"

// SessionState is what the terminal persists to re-attach to a running remote session.
type SessionState struct {
	ServerURL string    `json:"server_url"`
	SessionID string    `json:"session_id"`
	SavedAt   time.Time `json:"saved_at"`
}

// Matches reports whether the state belongs to serverURL and carries a session.
func (s *SessionState) Matches(serverURL string) bool {
	return s != nil && s.SessionID != "" && s.ServerURL == serverURL
}

package interfaces

import "webdrill/domain/entities"

// SessionStore persists the last remote session so it can be re-attached
type SessionStore interface {
	// SaveSession stores the session state
	SaveSession(state entities.SessionState) error

	// LoadSession returns the stored state, or nil when nothing was saved
	LoadSession() (*entities.SessionState, error)

	// ClearSession forgets the stored state
	ClearSession() error
}

package interfaces

import (
	"context"

	"webdrill/domain/entities"
)

// CommandExecutor defines the boundary every protocol request goes through
type CommandExecutor interface {
	// Execute resolves cmd, fills its path from params and returns the decoded JSON response
	Execute(ctx context.Context, cmd entities.Command, params entities.Params) (interface{}, error)
}

package interfaces

import "webdrill/domain/entities"

// CommandGuard defines the approval policy for commands issued interactively
type CommandGuard interface {
	// RequiresApproval checks if a command must be confirmed before it is sent
	RequiresApproval(cmd entities.Command) bool

	// GetCommandRiskLevel returns "low", "medium" or "high"
	GetCommandRiskLevel(cmd entities.Command) string
}

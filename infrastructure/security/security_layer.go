package security

import (
	"net/http"

	"webdrill/domain/entities"
	"webdrill/domain/interfaces"
	"webdrill/infrastructure/remote"

	"github.com/sirupsen/logrus"
)

type SecurityLayer struct {
	logger *logrus.Logger
}

func NewSecurityLayer(logger *logrus.Logger) *SecurityLayer {
	return &SecurityLayer{
		logger: logger,
	}
}

// destructiveCommands end the session or discard browser state without using DELETE.
var destructiveCommands = map[entities.Command]bool{
	entities.Quit:            true,
	entities.Close:           true,
	entities.SubmitElement:   true,
	entities.ExecuteSQL:      true,
	entities.UploadFile:      true,
	entities.W3CClearActions: true,
}

func (s *SecurityLayer) RequiresApproval(cmd entities.Command) bool {
	if s.GetCommandRiskLevel(cmd) == "high" {
		s.logger.Debugf("Command %s requires approval", cmd)
		return true
	}
	return false
}

func (s *SecurityLayer) IsDestructiveCommand(cmd entities.Command) bool {
	if destructiveCommands[cmd] {
		return true
	}

	// Anything routed through DELETE removes state on the server
	method, _, err := remote.Resolve(cmd)
	if err != nil {
		return false
	}
	return method == http.MethodDelete
}

func (s *SecurityLayer) GetCommandRiskLevel(cmd entities.Command) string {
	if s.IsDestructiveCommand(cmd) {
		return "high"
	}

	method, _, err := remote.Resolve(cmd)
	if err != nil {
		// Unknown commands never reach the server
		return "low"
	}

	if method == http.MethodGet {
		// Reads are low risk
		return "low"
	}

	return "medium"
}

var _ interfaces.CommandGuard = (*SecurityLayer)(nil)

package security

import (
	"testing"

	"webdrill/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSecurityLayer_RiskLevels(t *testing.T) {
	s := NewSecurityLayer(logrus.New())

	tests := map[entities.Command]string{
		entities.Quit:                "high",
		entities.Close:               "high",
		entities.DeleteAllCookies:    "high",
		entities.ClearLocalStorage:   "high",
		entities.SubmitElement:       "high",
		entities.GetTitle:            "low",
		entities.GetElementText:      "low",
		entities.Get:                 "medium",
		entities.ClickElement:        "medium",
		entities.Command("teleport"): "low",
	}
	for cmd, want := range tests {
		assert.Equal(t, want, s.GetCommandRiskLevel(cmd), cmd)
	}
}

func TestSecurityLayer_RequiresApproval(t *testing.T) {
	s := NewSecurityLayer(logrus.New())

	assert.True(t, s.RequiresApproval(entities.Quit))
	assert.True(t, s.RequiresApproval(entities.RemoveSessionStorageItem))
	assert.False(t, s.RequiresApproval(entities.FindElement))
	assert.False(t, s.RequiresApproval(entities.GetPageSource))
}

package entities

import (
	"strings"

	"github.com/tebeka/selenium"
)

// By is a locator strategy as spelled on the wire.
type By string

const (
	ByID              By = selenium.ByID
	ByXPath           By = selenium.ByXPATH
	ByLinkText        By = selenium.ByLinkText
	ByPartialLinkText By = selenium.ByPartialLinkText
	ByName            By = selenium.ByName
	ByTagName         By = selenium.ByTagName
	ByClassName       By = selenium.ByClassName
	ByCSSSelector     By = selenium.ByCSSSelector
)

// AllStrategies lists every supported locator strategy.
var AllStrategies = []By{
	ByID, ByXPath, ByLinkText, ByPartialLinkText,
	ByName, ByTagName, ByClassName, ByCSSSelector,
}

func (b By) String() string {
	return string(b)
}

// ParseBy - resolves a strategy from its wire spelling or an underscore/hyphen alias ("link_text", "css-selector")
func ParseBy(s string) (By, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	for _, b := range AllStrategies {
		if string(b) == normalized {
			return b, true
		}
	}
	return "", false
}

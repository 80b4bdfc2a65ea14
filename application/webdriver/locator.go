package webdriver

import (
	"fmt"

	"webdrill/domain/entities"
)

// Translate - rewrites id, name, class name and tag name lookups onto css selector.
// Other strategies pass through unchanged.
func Translate(by entities.By, value string) (entities.By, string) {
	switch by {
	case entities.ByID:
		return entities.ByCSSSelector, fmt.Sprintf(`[id="%s"]`, value)
	case entities.ByTagName:
		return entities.ByCSSSelector, value
	case entities.ByClassName:
		return entities.ByCSSSelector, "." + value
	case entities.ByName:
		return entities.ByCSSSelector, fmt.Sprintf(`[name="%s"]`, value)
	default:
		return by, value
	}
}

func locatorParams(by entities.By, value string) entities.Params {
	using, translated := Translate(by, value)
	return entities.Params{
		"using": string(using),
		"value": translated,
	}
}

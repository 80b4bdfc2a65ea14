package remote

import (
	"regexp"

	"webdrill/domain/entities"
)

// placeholderPattern matches ${name} and $name in a single left-to-right scan.
var placeholderPattern = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)

// ExpandPath - substitutes every placeholder in template with the matching string
// value from params. Missing keys and non-string values become the empty string.
func ExpandPath(template string, params entities.Params) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		key := groups[1]
		if key == "" {
			key = groups[2]
		}
		value, _ := params[key].(string)
		return value
	})
}

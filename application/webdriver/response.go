package webdriver

import "webdrill/domain/entities"

// w3cElementKey is the element reference key used by W3C-compliant servers.
const w3cElementKey = "element-6066-11e4-a52e-4f735466cecf"

// elementID pulls value.ELEMENT, falling back to the W3C key, out of a find response.
func elementID(resp interface{}) (string, bool) {
	value, ok := field(resp, "value").(map[string]interface{})
	if !ok {
		return "", false
	}
	for _, key := range []string{"ELEMENT", w3cElementKey} {
		if id, ok := value[key].(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

func field(v interface{}, key string) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return m[key]
}

// stringResult adapts an Execute call whose response carries a string under "value".
func stringResult(cmd entities.Command) func(interface{}, error) (string, error) {
	return func(resp interface{}, err error) (string, error) {
		if err != nil {
			return "", err
		}
		value, ok := field(resp, "value").(string)
		if !ok {
			return "", entities.NewProtocolViolation(cmd, "string value")
		}
		return value, nil
	}
}

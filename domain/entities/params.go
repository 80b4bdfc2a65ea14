package entities

import "golang.org/x/exp/maps"

// Params carries both path placeholders (sessionId, id, name, ...) and the JSON request body.
type Params map[string]interface{}

// Well-known path parameter keys.
const (
	ParamSessionID = "sessionId"
	ParamID        = "id"
)

// Clone - returns an owned copy; a nil receiver yields an empty set
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

// With - returns a copy of p with key set to value, leaving p untouched
func (p Params) With(key string, value interface{}) Params {
	out := p.Clone()
	out[key] = value
	return out
}

package display

import (
	"encoding/json"
)

// MarshalJSON marshals v with pretty formatting for human-readable
// terminal output.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

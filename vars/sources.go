package vars

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/teranos/promptforge/errors"
)

// ParseAssignments converts CLI-supplied KEY=VALUE strings into a value
// map. Later assignments override earlier ones for the same key. A
// token without '=' is rejected with the offending token.
func ParseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.NewInvalidAssignmentError(pair)
		}
		values[key] = value
	}
	return values, nil
}

// LoadFile reads a JSON variables file. The top level must be an object
// whose keys are variable names; scalar values are coerced to their
// string form.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read variables file %s", path)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewMalformedFileError(err, path)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		values[key] = valueToString(value)
	}
	return values, nil
}

// valueToString converts a decoded JSON scalar to its string form.
// Integral numbers render without a decimal point.
func valueToString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		// Nested objects and arrays are outside the contract; keep
		// their JSON form rather than failing.
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts decoded JSON values to string.
// nil (JSON null) becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseID parses a non-negative numeric identifier such as a dump id.
func ParseID(s string) (uint, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a non-negative integer", s)
	}
	return uint(n), nil
}

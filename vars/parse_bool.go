package vars

import "strings"

// ParseBool reports ok=false for words it does not recognize.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "1", "on":
		return true, true
	case "false", "f", "no", "n", "0", "off":
		return false, true
	}
	return false, false
}

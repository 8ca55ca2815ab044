package dice

import (
	"strconv"
	"strings"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// ParseCount reads a whole-number roll argument. Anything that is not a base
// 10 integer is rejected as invalid_argument; range problems are left to the
// pool floor.
func ParseCount(name, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, herr.InvalidArgumentf("%s is required", name).WithMeta("argument", name)
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, herr.InvalidArgumentf("%s must be a whole number, got %q", name, raw).
			WithMeta("argument", name)
	}

	return value, nil
}

// ParseFlag reads a boolean roll argument such as the desperation switch
func ParseFlag(name, raw string) (bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(trimmed)
	if err != nil {
		return false, herr.InvalidArgumentf("%s must be true or false, got %q", name, raw).
			WithMeta("argument", name)
	}

	return value, nil
}

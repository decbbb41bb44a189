package rolespec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor reports a color token that is not a six-digit hex value.
var ErrInvalidColor = errors.New("invalid color")

// Color is a 24-bit RGB embed color.
type Color int

// ParseColor reads a hex color token such as "#1EEB0C". The leading '#' is
// optional. The empty string is rejected; callers substitute their default
// before parsing.
func ParseColor(s string) (Color, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 {
		return 0, fmt.Errorf("color %q: %w", s, ErrInvalidColor)
	}

	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, ErrInvalidColor)
	}

	return Color(v), nil
}

package imglab

import (
	"fmt"
	"strings"
)

var (
	horizontalPositions = map[string]bool{"left": true, "center": true, "right": true}
	verticalPositions   = map[string]bool{"top": true, "middle": true, "bottom": true}
)

// Position returns a crop or gravity position: one keyword, or a horizontal
// and a vertical keyword in either order.
func Position(keywords ...string) (Value, error) {
	switch len(keywords) {
	case 1:
		k := keywords[0]
		if !horizontalPositions[k] && !verticalPositions[k] {
			return Value{}, fmt.Errorf("%w: unknown keyword %q", ErrInvalidPosition, k)
		}
		return String(k), nil
	case 2:
		a, b := keywords[0], keywords[1]
		if (horizontalPositions[a] && verticalPositions[b]) || (verticalPositions[a] && horizontalPositions[b]) {
			return String(a + "," + b), nil
		}
		return Value{}, fmt.Errorf("%w: %q and %q", ErrInvalidPosition, a, b)
	default:
		return Value{}, fmt.Errorf("%w: expected 1 or 2 keywords, got %d", ErrInvalidPosition, len(keywords))
	}
}

// ParsePosition parses "left" or "left,bottom" style text.
func ParsePosition(text string) (Value, error) {
	return Position(strings.Split(text, ",")...)
}

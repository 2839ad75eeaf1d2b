package imglab

import (
	"fmt"
	"strconv"
	"strings"
)

// colorNames holds the accepted named colors. Matching is exact and lowercase.
var colorNames = map[string]bool{
	"aliceblue": true, "antiquewhite": true, "aqua": true, "aquamarine": true, "azure": true,
	"beige": true, "bisque": true, "black": true, "blanchedalmond": true, "blue": true,
	"blueviolet": true, "brown": true, "burlywood": true, "cadetblue": true, "chartreuse": true,
	"chocolate": true, "coral": true, "cornflowerblue": true, "cornsilk": true, "crimson": true,
	"cyan": true, "darkblue": true, "darkcyan": true, "darkgoldenrod": true, "darkgray": true,
	"darkgreen": true, "darkgrey": true, "darkkhaki": true, "darkmagenta": true,
	"darkolivegreen": true, "darkorange": true, "darkorchid": true, "darkred": true,
	"darksalmon": true, "darkseagreen": true, "darkslateblue": true, "darkslategray": true,
	"darkslategrey": true, "darkturquoise": true, "darkviolet": true, "deeppink": true,
	"deepskyblue": true, "dimgray": true, "dimgrey": true, "dodgerblue": true, "firebrick": true,
	"floralwhite": true, "forestgreen": true, "fuchsia": true, "gainsboro": true, "ghostwhite": true,
	"gold": true, "goldenrod": true, "gray": true, "green": true, "greenyellow": true, "grey": true,
	"honeydew": true, "hotpink": true, "indianred": true, "indigo": true, "ivory": true,
	"khaki": true, "lavender": true, "lavenderblush": true, "lawngreen": true, "lemonchiffon": true,
	"lightblue": true, "lightcoral": true, "lightcyan": true, "lightgoldenrodyellow": true,
	"lightgray": true, "lightgreen": true, "lightgrey": true, "lightpink": true, "lightsalmon": true,
	"lightseagreen": true, "lightskyblue": true, "lightslategray": true, "lightslategrey": true,
	"lightsteelblue": true, "lightyellow": true, "lime": true, "limegreen": true, "linen": true,
	"magenta": true, "maroon": true, "mediumaquamarine": true, "mediumblue": true,
	"mediumorchid": true, "mediumpurple": true, "mediumseagreen": true, "mediumslateblue": true,
	"mediumspringgreen": true, "mediumturquoise": true, "mediumvioletred": true, "midnightblue": true,
	"mintcream": true, "mistyrose": true, "moccasin": true, "navajowhite": true, "navy": true,
	"oldlace": true, "olive": true, "olivedrab": true, "orange": true, "orangered": true,
	"orchid": true, "palegoldenrod": true, "palegreen": true, "paleturquoise": true,
	"palevioletred": true, "papayawhip": true, "peachpuff": true, "peru": true, "pink": true,
	"plum": true, "powderblue": true, "purple": true, "rebeccapurple": true, "red": true,
	"rosybrown": true, "royalblue": true, "saddlebrown": true, "salmon": true, "sandybrown": true,
	"seagreen": true, "seashell": true, "sienna": true, "silver": true, "skyblue": true,
	"slateblue": true, "slategray": true, "slategrey": true, "snow": true, "springgreen": true,
	"steelblue": true, "tan": true, "teal": true, "thistle": true, "tomato": true, "turquoise": true,
	"violet": true, "wheat": true, "white": true, "whitesmoke": true, "yellow": true,
	"yellowgreen": true,
}

// Color returns an rgb or rgba color rendered as comma-joined components.
// Every component must be within [0,255].
func Color(components ...int) (Value, error) {
	if len(components) != 3 && len(components) != 4 {
		return Value{}, fmt.Errorf("%w: expected 3 or 4 components, got %d", ErrInvalidColor, len(components))
	}
	parts := make([]string, len(components))
	for i, c := range components {
		if c < 0 || c > 255 {
			return Value{}, fmt.Errorf("%w: component %d out of range", ErrInvalidColor, c)
		}
		parts[i] = strconv.Itoa(c)
	}
	return String(strings.Join(parts, ",")), nil
}

// NamedColor validates name against the named color table.
func NamedColor(name string) (Value, error) {
	if !colorNames[name] {
		return Value{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, name)
	}
	return String(name), nil
}

// ParseColor accepts "r,g,b", "r,g,b,a" or a color name.
func ParseColor(text string) (Value, error) {
	if !strings.Contains(text, ",") {
		return NamedColor(text)
	}
	fields := strings.Split(text, ",")
	components := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Value{}, fmt.Errorf("%w: component %q is not an integer", ErrInvalidColor, f)
		}
		components[i] = n
	}
	return Color(components...)
}

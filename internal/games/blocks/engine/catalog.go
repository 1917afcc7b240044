package engine

// Template is a catalog entry: a matrix and the color every shape drawn from
// it receives.
type Template struct {
	Name   string
	Matrix [][]uint8
	Color  Color
}

// templates is the fixed shape library. Order matters: generators index into
// it with the random source, so reordering changes seeded games.
var templates = []Template{
	// Dot
	{Name: "dot", Matrix: [][]uint8{{1}}, Color: ColorBlue},

	// Lines
	{Name: "h2", Matrix: [][]uint8{{1, 1}}, Color: ColorCyan},
	{Name: "h3", Matrix: [][]uint8{{1, 1, 1}}, Color: ColorCyan},
	{Name: "h4", Matrix: [][]uint8{{1, 1, 1, 1}}, Color: ColorCyan},
	{Name: "h5", Matrix: [][]uint8{{1, 1, 1, 1, 1}}, Color: ColorCyan},
	{Name: "v2", Matrix: [][]uint8{{1}, {1}}, Color: ColorCyan},
	{Name: "v3", Matrix: [][]uint8{{1}, {1}, {1}}, Color: ColorCyan},
	{Name: "v4", Matrix: [][]uint8{{1}, {1}, {1}, {1}}, Color: ColorCyan},

	// Squares
	{Name: "square2", Matrix: [][]uint8{{1, 1}, {1, 1}}, Color: ColorYellow},
	{Name: "square3", Matrix: [][]uint8{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, Color: ColorYellow},

	// L
	{Name: "l-down-right", Matrix: [][]uint8{{1, 0}, {1, 0}, {1, 1}}, Color: ColorOrange},
	{Name: "l-down-left", Matrix: [][]uint8{{0, 1}, {0, 1}, {1, 1}}, Color: ColorOrange},
	{Name: "l-up-right", Matrix: [][]uint8{{1, 1}, {1, 0}, {1, 0}}, Color: ColorOrange},
	{Name: "l-up-left", Matrix: [][]uint8{{1, 1}, {0, 1}, {0, 1}}, Color: ColorOrange},

	// T
	{Name: "t-down", Matrix: [][]uint8{{1, 1, 1}, {0, 1, 0}}, Color: ColorPurple},
	{Name: "t-up", Matrix: [][]uint8{{0, 1, 0}, {1, 1, 1}}, Color: ColorPurple},
	{Name: "t-right", Matrix: [][]uint8{{1, 0}, {1, 1}, {1, 0}}, Color: ColorPurple},
	{Name: "t-left", Matrix: [][]uint8{{0, 1}, {1, 1}, {0, 1}}, Color: ColorPurple},

	// Z
	{Name: "z", Matrix: [][]uint8{{1, 1, 0}, {0, 1, 1}}, Color: ColorRed},
	{Name: "s", Matrix: [][]uint8{{0, 1, 1}, {1, 1, 0}}, Color: ColorRed},
	{Name: "z-vertical", Matrix: [][]uint8{{1, 0}, {1, 1}, {0, 1}}, Color: ColorRed},
	{Name: "s-vertical", Matrix: [][]uint8{{0, 1}, {1, 1}, {1, 0}}, Color: ColorRed},
}

// Catalog returns a copy of the built-in templates.
func Catalog() []Template {
	out := make([]Template, len(templates))
	for i, t := range templates {
		t.Matrix = cloneMatrix(t.Matrix)
		out[i] = t
	}
	return out
}

// TemplateByName looks up a built-in template.
func TemplateByName(name string) (Template, bool) {
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// cloneMatrix copies a template matrix so shapes never alias catalog storage.
func cloneMatrix(m [][]uint8) [][]uint8 {
	out := make([][]uint8, len(m))
	for i, row := range m {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

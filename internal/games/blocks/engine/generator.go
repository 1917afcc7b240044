package engine

// Generator draws shapes from a catalog using an injected random Source.
type Generator struct {
	src     Source
	catalog []Template
	rules   Rules
	nextID  uint64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCatalog replaces the built-in templates.
func WithCatalog(ts []Template) GeneratorOption {
	return func(g *Generator) {
		if len(ts) > 0 {
			g.catalog = ts
		}
	}
}

// WithRules sets the special-block chance and retry limits.
func WithRules(r Rules) GeneratorOption {
	return func(g *Generator) {
		g.rules = r.withDefaults()
	}
}

// WithSpecialChance overrides the probability of attaching a special block.
func WithSpecialChance(p float64) GeneratorOption {
	return func(g *Generator) {
		g.rules.SpecialChance = p
	}
}

// WithMaxRetries overrides how many times GenerateSet may redraw a set.
func WithMaxRetries(n int) GeneratorOption {
	return func(g *Generator) {
		if n < 0 {
			n = 0
		}
		g.rules.MaxSetRetries = n
	}
}

// NewGenerator creates a generator over the built-in catalog.
func NewGenerator(src Source, opts ...GeneratorOption) *Generator {
	g := &Generator{
		src:     src,
		catalog: templates,
		rules:   DefaultRules(),
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, t := range g.catalog {
		MustShape(&Shape{Matrix: t.Matrix, Color: t.Color})
	}
	return g
}

// Generate draws one template uniformly, gives it a fresh ID and, with the
// configured probability, marks one uniformly chosen occupied cell with a
// uniformly chosen special kind.
func (g *Generator) Generate() *Shape {
	t := g.catalog[g.src.Intn(len(g.catalog))]
	g.nextID++

	shape := &Shape{
		ID:     g.nextID,
		Matrix: cloneMatrix(t.Matrix),
		Color:  t.Color,
	}

	if g.src.Float64() < g.rules.SpecialChance {
		cells := shape.OccupiedCells()
		target := cells[g.src.Intn(len(cells))]
		kind := SpecialKinds[g.src.Intn(len(SpecialKinds))]
		shape.Specials = []SpecialMark{{Row: target.Row, Col: target.Col, Kind: kind}}
	}

	return shape
}

func (g *Generator) triple() Slots {
	return Slots{g.Generate(), g.Generate(), g.Generate()}
}

// GenerateSet returns three shapes, redrawing the whole set up to
// MaxSetRetries times while none of them fits anywhere on grid. After the
// last retry the set is returned even if it cannot be placed.
func (g *Generator) GenerateSet(grid *Grid) Slots {
	set, _ := g.GenerateSetAttempts(grid)
	return set
}

// GenerateSetAttempts is GenerateSet that also reports how many sets were drawn.
// The count is always between 1 and MaxSetRetries+1.
func (g *Generator) GenerateSetAttempts(grid *Grid) (Slots, int) {
	return g.generateBounded(grid, g.rules.MaxSetRetries)
}

// GenerateOpeningSet draws the first set of a session. It retries up to
// OpeningRetries times so a fresh board does not start stuck.
func (g *Generator) GenerateOpeningSet(grid *Grid) Slots {
	set, _ := g.generateBounded(grid, g.rules.OpeningRetries)
	return set
}

func (g *Generator) generateBounded(grid *Grid, retries int) (Slots, int) {
	set := g.triple()
	attempts := 1
	for attempt := 0; attempt < retries && !AnyPlaceable(grid, set.List()); attempt++ {
		set = g.triple()
		attempts++
	}
	return set, attempts
}

// Rules returns the rules the generator was configured with.
func (g *Generator) Rules() Rules {
	return g.rules
}

// Configure applies options to an existing generator, e.g. to change the
// special chance between sets as a session ramps up.
func (g *Generator) Configure(opts ...GeneratorOption) {
	for _, opt := range opts {
		opt(g)
	}
}

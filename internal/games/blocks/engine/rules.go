package engine

// Default rule values.
const (
	DefaultSpecialChance = 0.10
	DefaultMaxSetRetries = 10
	DefaultFrozenLife    = 2
	DefaultLevelXPFactor = 200
	// DefaultOpeningRetries bounds the opening-set loop; on a fresh grid it is
	// never reached in practice.
	DefaultOpeningRetries = 1000
)

// Rules holds the tunable constants of the engine. The package-level
// functions use DefaultRules; sessions built from config use their own copy.
type Rules struct {
	SpecialChance  float64 // probability that a generated shape carries a special block
	MaxSetRetries  int     // regenerations allowed while no shape of a set fits
	OpeningRetries int     // regenerations allowed for the first set of a session
	FrozenLife     int     // life given to a freshly placed frozen block
	LevelXPFactor  int     // XP needed for level L is L * LevelXPFactor
	LineBonuses    []int   // bonus for 0, 1, 2, 3 and 4+ cleared lines
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		SpecialChance:  DefaultSpecialChance,
		MaxSetRetries:  DefaultMaxSetRetries,
		OpeningRetries: DefaultOpeningRetries,
		FrozenLife:     DefaultFrozenLife,
		LevelXPFactor:  DefaultLevelXPFactor,
		LineBonuses:    []int{0, 10, 25, 45, 70},
	}
}

// withDefaults fills zero values so a partially specified Rules still works.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.MaxSetRetries < 0 {
		r.MaxSetRetries = 0
	}
	if r.OpeningRetries <= 0 {
		r.OpeningRetries = d.OpeningRetries
	}
	if r.FrozenLife <= 0 {
		r.FrozenLife = d.FrozenLife
	}
	if r.LevelXPFactor <= 0 {
		r.LevelXPFactor = d.LevelXPFactor
	}
	if len(r.LineBonuses) == 0 {
		r.LineBonuses = d.LineBonuses
	}
	return r
}

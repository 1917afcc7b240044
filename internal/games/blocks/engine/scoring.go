package engine

// LineBonus returns the flat bonus for clearing the given number of lines
// under the default rules.
func LineBonus(lines int) int {
	return DefaultRules().LineBonus(lines)
}

// LineBonus returns the flat bonus for clearing the given number of lines.
// Counts beyond the end of the table use the last entry.
func (r Rules) LineBonus(lines int) int {
	table := r.withDefaults().LineBonuses
	if lines <= 0 {
		return table[0]
	}
	if lines >= len(table) {
		return table[len(table)-1]
	}
	return table[lines]
}

// NextCombo returns the combo after a placement: one higher if it cleared
// anything, back to 1 otherwise.
func NextCombo(prev, lines int) int {
	if lines <= 0 {
		return 1
	}
	if prev < 1 {
		prev = 1
	}
	return prev + 1
}

// Award returns the points for placing s and clearing lines, where combo is
// the value after this placement's combo update.
func Award(s *Shape, lines, combo int) int {
	return DefaultRules().Award(s, lines, combo)
}

// Award returns the points for placing s and clearing lines under r.
func (r Rules) Award(s *Shape, lines, combo int) int {
	points := s.CellCount() + r.LineBonus(lines)
	if combo > 1 {
		points *= combo
	}
	return points
}

// Progress is the level and the experience accumulated toward the next one.
type Progress struct {
	Level int
	XP    int
}

// RequiredXP returns the experience needed to leave level under the default rules.
func RequiredXP(level int) int {
	return DefaultRules().RequiredXP(level)
}

// RequiredXP returns the experience needed to leave level.
func (r Rules) RequiredXP(level int) int {
	return level * r.withDefaults().LevelXPFactor
}

// Gain adds points of experience under the default rules.
func (p Progress) Gain(points int) (Progress, int) {
	return DefaultRules().Gain(p, points)
}

// Gain adds points to p's experience and applies every level-up it pays for,
// carrying the remainder over. It returns the new progress and the number of
// levels gained.
func (r Rules) Gain(p Progress, points int) (Progress, int) {
	if p.Level < 1 {
		p.Level = 1
	}
	if points > 0 {
		p.XP += points
	}
	gained := 0
	for need := r.RequiredXP(p.Level); p.XP >= need; need = r.RequiredXP(p.Level) {
		p.XP -= need
		p.Level++
		gained++
	}
	return p, gained
}

// Score is the running score state of one session.
type Score struct {
	Current  int
	Best     int
	Combo    int
	Progress Progress
	TimeLeft int // seconds, timed mode only
}

// NewScore starts a session score from persisted best, level and experience.
func NewScore(best int, p Progress) Score {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XP < 0 {
		p.XP = 0
	}
	return Score{Best: best, Combo: 1, Progress: p}
}

// Turn summarises the scoring of one placement.
type Turn struct {
	Points       int
	Combo        int
	LevelsGained int
	NewBest      bool
}

// Apply scores a placement of s that cleared lines: combo first, then points
// with the new combo, then best and experience.
func (r Rules) Apply(sc *Score, s *Shape, lines int) Turn {
	sc.Combo = NextCombo(sc.Combo, lines)
	points := r.Award(s, lines, sc.Combo)
	sc.Current += points

	newBest := false
	if sc.Current > sc.Best {
		sc.Best = sc.Current
		newBest = true
	}

	var gained int
	sc.Progress, gained = r.Gain(sc.Progress, points)

	return Turn{
		Points:       points,
		Combo:        sc.Combo,
		LevelsGained: gained,
		NewBest:      newBest,
	}
}

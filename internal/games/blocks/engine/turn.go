package engine

// TurnResult is everything that happened during one committed placement.
type TurnResult struct {
	Grid  *Grid
	Place PlaceResult
	Clear ClearResult
	Score Turn
}

// PlayTurn validates, places, resolves and scores one placement under the
// default rules.
func PlayTurn(g *Grid, s *Shape, row, col int, sc *Score) (TurnResult, error) {
	return DefaultRules().PlayTurn(g, s, row, col, sc)
}

// PlayTurn runs the placement protocol: CanPlace, Place, Resolve, then
// scoring. The input grid is not modified; the result carries the new one.
func (r Rules) PlayTurn(g *Grid, s *Shape, row, col int, sc *Score) (TurnResult, error) {
	if s == nil || !CanPlace(g, s, row, col) {
		return TurnResult{Grid: g}, ErrIllegalPlacement
	}

	placed := r.Place(g, s, row, col)
	cleared := Resolve(placed.Grid)
	turn := r.Apply(sc, s, cleared.LinesCleared)

	return TurnResult{
		Grid:  cleared.Grid,
		Place: placed,
		Clear: cleared,
		Score: turn,
	}, nil
}

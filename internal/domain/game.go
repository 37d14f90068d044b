package domain

// Phase represents the lifecycle stage of a game as seen by the transport.
type Phase string

const (
	// PhaseBidding indicates the current round is collecting bids.
	PhaseBidding Phase = "bidding"
	// PhasePlaying indicates tricks are being played.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates a team has reached the winning score.
	PhaseEnded Phase = "ended"
)

// Game is the cross-round state of one table. The round is replaced
// wholesale at every round boundary; everything else survives until a team
// reaches the winning score.
type Game struct {
	Scores       [2]int
	Starting     Seat // leads the first trick of the current round
	BiddingTeam  Team // partnership expected to act while bidding
	WinningScore int
	Round        *Round
}

// NewGame starts a game from a dealt deck. The opening round is led by
// team1/player0 with team0 bidding first.
func NewGame(deck []Card, winningScore int) *Game {
	g := &Game{
		Starting:     Seat{Team: 1, Player: 0},
		BiddingTeam:  0,
		WinningScore: winningScore,
	}
	g.Round = NewRound(deck, g.Starting)
	return g
}

// NextRound advances the lead seat one position, deals a fresh round and
// hands the opening bid to the new lead seat's partnership.
func (g *Game) NextRound(deck []Card) {
	g.Starting = NextSeat(g.Starting)
	g.Round = NewRound(deck, g.Starting)
	g.BiddingTeam = g.Starting.Team
}

// Over reports whether either team has reached the winning score. Scores
// only move at round boundaries, so this never flips mid-round.
func (g *Game) Over() bool {
	return g.Scores[0] >= g.WinningScore || g.Scores[1] >= g.WinningScore
}

// Winner returns the higher-scoring team.
func (g *Game) Winner() Team {
	if g.Scores[1] > g.Scores[0] {
		return 1
	}
	return 0
}

// Phase derives the lifecycle stage from the current state.
func (g *Game) Phase() Phase {
	switch {
	case g.Over():
		return PhaseEnded
	case !g.Round.BidsComplete():
		return PhaseBidding
	default:
		return PhasePlaying
	}
}

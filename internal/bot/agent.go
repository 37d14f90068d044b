package bot

import "spades/internal/domain"

// Agent represents an autonomous bot occupying a seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Bid asks the agent for its partnership's bidding action.
func (a *Agent) Bid(game *domain.Game, team domain.Team) domain.BidType {
	return a.Strategy.ChooseBid(game, team)
}

// Play asks the agent for a card at the given seat.
func (a *Agent) Play(game *domain.Game, seat domain.Seat) domain.Card {
	return a.Strategy.ChooseCard(game, seat)
}

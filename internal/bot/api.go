package bot

import "spades/internal/domain"

// Brain is the interface all bot strategies implement. Both methods must
// return legal actions for the given state.
type Brain interface {
	// ChooseBid picks a bidding action for the partnership.
	ChooseBid(game *domain.Game, team domain.Team) domain.BidType
	// ChooseCard picks a card from the seat's legal plays.
	ChooseCard(game *domain.Game, seat domain.Seat) domain.Card
}

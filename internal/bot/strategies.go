package bot

import "spades/internal/domain"

// steadyBrain is a rule-respecting baseline strategy: peek before bidding,
// bid what the partnership's high cards suggest, win tricks as cheaply as
// possible.
type steadyBrain struct{}

func (b *steadyBrain) ChooseBid(game *domain.Game, team domain.Team) domain.BidType {
	bid := game.Round.Bid(team)
	if bid.Blind {
		// Blind contracts double the stake either way; the baseline bot
		// always looks first.
		return domain.BidShowCards
	}
	return bidForValue(b.estimateBooks(game.Round, team))
}

// estimateBooks counts sure winners across the partnership: top trumps,
// off-suit aces, and a share of the remaining trump length.
func (b *steadyBrain) estimateBooks(round *domain.Round, team domain.Team) int {
	est := 0
	trumps := 0
	for player := 0; player < 2; player++ {
		for _, c := range round.Hand(domain.Seat{Team: team, Player: player}) {
			switch {
			case c >= 48: // J of spades and everything above it
				est++
			case c.Suit() == domain.Spades:
				trumps++
			case c.Rank() == "A":
				est++
			}
		}
	}
	est += trumps / 3
	if est < 4 {
		est = 4
	}
	if est > 13 {
		est = 13
	}
	return est
}

func bidForValue(value int) domain.BidType {
	switch value {
	case 4:
		return domain.BidBoard
	case 5:
		return domain.BidFive
	case 6:
		return domain.BidSix
	case 7:
		return domain.BidSeven
	case 8:
		return domain.BidEight
	case 9:
		return domain.BidNine
	case 10:
		return domain.BidTwoForTen
	case 11:
		return domain.BidEleven
	case 12:
		return domain.BidTwelve
	default:
		return domain.BidBoston
	}
}

func (b *steadyBrain) ChooseCard(game *domain.Game, seat domain.Seat) domain.Card {
	round := game.Round
	playable := round.PlayableCards(seat)

	if len(round.Trick) > 0 {
		taking := currentWinningCard(round.Trick)
		lead := round.Trick[0].Card.Suit()
		cheapestWinner := domain.Card(-1)
		for _, c := range playable {
			if c.Suit() != lead && c.Suit() != domain.Spades {
				continue
			}
			if c > taking && (cheapestWinner < 0 || c < cheapestWinner) {
				cheapestWinner = c
			}
		}
		if cheapestWinner >= 0 {
			return cheapestWinner
		}
	}

	low := playable[0]
	for _, c := range playable[1:] {
		if c < low {
			low = c
		}
	}
	return low
}

func currentWinningCard(trick []domain.TrickPlay) domain.Card {
	lead := trick[0].Card.Suit()
	winning := trick[0].Card
	for _, play := range trick[1:] {
		suit := play.Card.Suit()
		if suit != lead && suit != domain.Spades {
			continue
		}
		if play.Card > winning {
			winning = play.Card
		}
	}
	return winning
}

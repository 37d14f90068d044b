package domain

import "fmt"

// TrickPlay is one card laid into the current trick.
type TrickPlay struct {
	Seat Seat
	Card Card
}

// TeamRound holds one partnership's per-round data: both players' hands, the
// books captured so far and the team's bid.
type TeamRound struct {
	Hands [2][]Card
	Books int
	Bid   Bid
}

// Round is the mutable state of a single 13-trick round.
type Round struct {
	Turn         int // 1..13, trick-in-progress counter
	Trick        []TrickPlay
	SpadesBroken bool
	Teams        [2]*TeamRound
	Current      Seat // seat whose play is expected once bidding is done
}

// NewRound deals the given deck order round-robin across the four seats and
// sets the lead seat. The deck must hold 52 cards.
func NewRound(deck []Card, lead Seat) *Round {
	r := &Round{
		Turn:    1,
		Teams:   [2]*TeamRound{{Bid: NewBid()}, {Bid: NewBid()}},
		Current: lead,
	}
	for i, c := range deck {
		s := SeatAt(i % 4)
		team := r.Teams[s.Team]
		team.Hands[s.Player] = append(team.Hands[s.Player], c)
	}
	return r
}

// Hand returns a copy of the seat's remaining cards.
func (r *Round) Hand(s Seat) []Card {
	return append([]Card(nil), r.Teams[s.Team].Hands[s.Player]...)
}

// Bid returns the team's bid for in-place updates.
func (r *Round) Bid(t Team) *Bid {
	return &r.Teams[t].Bid
}

// BidsComplete reports whether both partnerships have committed a bid.
func (r *Round) BidsComplete() bool {
	return r.Teams[0].Bid.Complete() && r.Teams[1].Bid.Complete()
}

// HasCard reports whether the seat still holds the card.
func (r *Round) HasCard(s Seat, c Card) bool {
	for _, held := range r.Teams[s.Team].Hands[s.Player] {
		if held == c {
			return true
		}
	}
	return false
}

// RemoveCard takes the card out of the seat's hand, reporting whether it was
// present.
func (r *Round) RemoveCard(s Seat, c Card) bool {
	hand := r.Teams[s.Team].Hands[s.Player]
	for i, held := range hand {
		if held == c {
			r.Teams[s.Team].Hands[s.Player] = append(hand[:i], hand[i+1:]...)
			return true
		}
	}
	return false
}

// PlayableCards computes the cards the seat may legally play right now.
// Leading: spades are barred until broken, unless the hand holds nothing
// else. Following: must match the lead suit, or play anything when void.
func (r *Round) PlayableCards(s Seat) []Card {
	hand := r.Hand(s)
	if len(r.Trick) == 0 {
		if r.SpadesBroken {
			return hand
		}
		playable := make([]Card, 0, len(hand))
		for _, c := range hand {
			if c.Suit() != Spades {
				playable = append(playable, c)
			}
		}
		if len(playable) == 0 {
			return hand
		}
		return playable
	}

	lead := r.Trick[0].Card.Suit()
	playable := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.Suit() == lead {
			playable = append(playable, c)
		}
	}
	if len(playable) == 0 {
		return hand
	}
	return playable
}

// TrickComplete reports whether all four seats have played into the trick.
func (r *Round) TrickComplete() bool {
	return len(r.Trick) == 4
}

// TrickWinner resolves the completed current trick. A play beats the running
// winner when its suit matches the lead suit or is spades, and its id is
// strictly higher. Spade ids sit above every other suit, so the id check
// alone orders qualifying cards.
func (r *Round) TrickWinner() (TrickPlay, error) {
	if len(r.Trick) != 4 {
		return TrickPlay{}, fmt.Errorf("trick has %d plays, want 4", len(r.Trick))
	}
	lead := r.Trick[0].Card.Suit()
	winner := r.Trick[0]
	for _, play := range r.Trick[1:] {
		suit := play.Card.Suit()
		if suit != lead && suit != Spades {
			continue
		}
		if play.Card > winner.Card {
			winner = play
		}
	}
	return winner, nil
}

// Over reports whether all 13 tricks have been played.
func (r *Round) Over() bool {
	return r.Turn > 13
}

// Points returns the team's score delta for the finished round. Failing the
// contract or overshooting it by three or more books both forfeit the stake.
func (r *Round) Points(t Team) (int, error) {
	team := r.Teams[t]
	if !team.Bid.Complete() {
		return 0, fmt.Errorf("team %d bid incomplete", t)
	}
	points := team.Bid.Points()
	if team.Books < team.Bid.Val || team.Books >= team.Bid.Val+3 {
		points = -points
	}
	return points, nil
}

package domain

import "strconv"

// Suit of a card. The promoted deuce and both jokers report spades.
type Suit string

const (
	Hearts   Suit = "heart"
	Clubs    Suit = "club"
	Diamonds Suit = "diamond"
	Spades   Suit = "spade"
)

// Card is a single playing card identified by an integer id in [0,54].
// Ids 0-51 are the standard deck in suit-major order (hearts, clubs,
// diamonds, spades; 2 low, ace high within each band). Id 52 is the deuce of
// spades promoted above the ace, 53 the little joker and 54 the big joker.
// Trick comparison is raw id order, which is why the promoted trumps sit at
// the top of the range. Two cards are equal iff their ids are equal.
type Card int

const (
	DeuceOfSpades Card = 52
	LittleJoker   Card = 53
	BigJoker      Card = 54
)

// Valid reports whether the id falls inside the deck range.
func (c Card) Valid() bool {
	return c >= 0 && c <= BigJoker
}

// Suit derives the card's suit from its id band.
func (c Card) Suit() Suit {
	switch {
	case c < 13:
		return Hearts
	case c < 26:
		return Clubs
	case c < 39:
		return Diamonds
	default:
		return Spades
	}
}

// Rank returns the display rank: "2".."10", "J", "Q", "K", "A", or "L"/"B"
// for the jokers.
func (c Card) Rank() string {
	switch c {
	case DeuceOfSpades:
		return "2"
	case LittleJoker:
		return "L"
	case BigJoker:
		return "B"
	}
	switch r := int(c) % 13; {
	case r < 9:
		return strconv.Itoa(r + 2)
	case r == 9:
		return "J"
	case r == 10:
		return "Q"
	case r == 11:
		return "K"
	default:
		return "A"
	}
}

func (c Card) String() string {
	switch c {
	case DeuceOfSpades:
		return "deuce of spades"
	case LittleJoker:
		return "little joker"
	case BigJoker:
		return "big joker"
	}
	return c.Rank() + " of " + string(c.Suit()) + "s"
}

package domain

// BidType names an entry of the closed bid catalog.
type BidType string

const (
	// BidShowCards is not a scoring bid: it asks to peek at the hand,
	// dropping the partnership's blind status.
	BidShowCards BidType = "show-cards"

	BidBoard     BidType = "board"
	BidFive      BidType = "5"
	BidSix       BidType = "6"
	BidSeven     BidType = "7"
	BidEight     BidType = "8"
	BidNine      BidType = "9"
	BidTwoForTen BidType = "2-for-10"
	BidEleven    BidType = "11"
	BidTwelve    BidType = "12"
	BidBoston    BidType = "boston"
)

// bidCatalog maps scoring bids to their book target and points multiplier.
// BidShowCards is deliberately absent.
var bidCatalog = map[BidType]struct{ Val, Mult int }{
	BidBoard:     {4, 1},
	BidFive:      {5, 1},
	BidSix:       {6, 1},
	BidSeven:     {7, 1},
	BidEight:     {8, 1},
	BidNine:      {9, 1},
	BidTwoForTen: {10, 2},
	BidEleven:    {11, 1},
	BidTwelve:    {12, 1},
	BidBoston:    {13, 1},
}

// LookupBid resolves a scoring bid from the catalog.
func LookupBid(t BidType) (val, mult int, ok bool) {
	entry, ok := bidCatalog[t]
	return entry.Val, entry.Mult, ok
}

// KnownBid reports whether t is any catalog entry, including show-cards.
func KnownBid(t BidType) bool {
	if t == BidShowCards {
		return true
	}
	_, _, ok := LookupBid(t)
	return ok
}

// Bid is one partnership's commitment for a round. Blind starts true and
// stays true unless the team asks to see its cards before committing.
type Bid struct {
	Blind bool
	Val   int
	Mult  int
}

// NewBid returns the pre-round bid: blind, value and multiplier unset.
func NewBid() Bid {
	return Bid{Blind: true}
}

// Complete reports whether both value and multiplier have been set.
func (b Bid) Complete() bool {
	return b.Val != 0 && b.Mult != 0
}

// Points returns the contract's stake: 10 per bid book times the multiplier,
// doubled while the bid is blind.
func (b Bid) Points() int {
	points := 10 * b.Val * b.Mult
	if b.Blind {
		points *= 2
	}
	return points
}

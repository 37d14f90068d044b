package domain

// NewDeck returns an ordered 52-card deck. With the joker variant enabled
// ("Roosevelt rules") the three plain deuces of hearts, diamonds and spades
// are replaced by the deuce of spades and the two jokers, so the deck stays
// at 52 unique cards and still deals 13 to each seat.
func NewDeck(jokerVariant bool) []Card {
	deck := make([]Card, 0, 52)
	for id := Card(0); id < 52; id++ {
		if jokerVariant && (id == 0 || id == 26 || id == 39) {
			continue
		}
		deck = append(deck, id)
	}
	if jokerVariant {
		deck = append(deck, DeuceOfSpades, LittleJoker, BigJoker)
	}
	return deck
}

package domain

import "testing"

func TestNewDeckStandard(t *testing.T) {
	deck := NewDeck(false)
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %d", c)
		}
		seen[c] = true
		if c < 0 || c > 51 {
			t.Fatalf("card %d outside standard range", c)
		}
	}
}

func TestNewDeckJokerVariant(t *testing.T) {
	deck := NewDeck(true)
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %d", c)
		}
		seen[c] = true
	}
	// The plain deuces of hearts, diamonds and spades make way for the
	// promoted trumps.
	for _, dropped := range []Card{0, 26, 39} {
		if seen[dropped] {
			t.Errorf("card %d should not be in the joker-variant deck", dropped)
		}
	}
	for _, added := range []Card{DeuceOfSpades, LittleJoker, BigJoker} {
		if !seen[added] {
			t.Errorf("card %v missing from the joker-variant deck", added)
		}
	}
}

func TestNewRoundDealsCompleteHands(t *testing.T) {
	deck := NewDeck(true)
	round := NewRound(deck, Seat{Team: 1, Player: 0})

	seen := make(map[Card]bool)
	for pos := 0; pos < 4; pos++ {
		hand := round.Hand(SeatAt(pos))
		if len(hand) != 13 {
			t.Fatalf("seat %d hand size = %d, want 13", pos, len(hand))
		}
		for _, c := range hand {
			if seen[c] {
				t.Fatalf("card %d dealt twice", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != len(deck) {
		t.Fatalf("dealt %d distinct cards, want %d", len(seen), len(deck))
	}
}

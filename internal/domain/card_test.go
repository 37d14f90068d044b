package domain

import (
	"testing"
)

func TestCardSuitBands(t *testing.T) {
	for id := Card(0); id <= BigJoker; id++ {
		want := Spades
		switch {
		case id < 13:
			want = Hearts
		case id < 26:
			want = Clubs
		case id < 39:
			want = Diamonds
		}
		if got := id.Suit(); got != want {
			t.Errorf("Card(%d).Suit() = %s, want %s", id, got, want)
		}
	}
}

func TestCardRank(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{0, "2"},
		{7, "9"},
		{8, "10"},
		{9, "J"},
		{10, "Q"},
		{11, "K"},
		{12, "A"},
		{13, "2"},
		{25, "A"},
		{39, "2"},
		{51, "A"},
		{DeuceOfSpades, "2"},
		{LittleJoker, "L"},
		{BigJoker, "B"},
	}
	for _, tt := range tests {
		if got := tt.card.Rank(); got != tt.want {
			t.Errorf("Card(%d).Rank() = %s, want %s", tt.card, got, tt.want)
		}
	}
}

func TestCardValid(t *testing.T) {
	if Card(-1).Valid() {
		t.Error("Card(-1) should be invalid")
	}
	if Card(55).Valid() {
		t.Error("Card(55) should be invalid")
	}
	if !BigJoker.Valid() || !Card(0).Valid() {
		t.Error("deck range cards should be valid")
	}
}

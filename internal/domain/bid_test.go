package domain

import "testing"

func TestBidCatalog(t *testing.T) {
	tests := []struct {
		bid  BidType
		val  int
		mult int
	}{
		{BidBoard, 4, 1},
		{BidFive, 5, 1},
		{BidNine, 9, 1},
		{BidTwoForTen, 10, 2},
		{BidEleven, 11, 1},
		{BidTwelve, 12, 1},
		{BidBoston, 13, 1},
	}
	for _, tt := range tests {
		val, mult, ok := LookupBid(tt.bid)
		if !ok {
			t.Fatalf("LookupBid(%q) not found", tt.bid)
		}
		if val != tt.val || mult != tt.mult {
			t.Errorf("LookupBid(%q) = (%d,%d), want (%d,%d)", tt.bid, val, mult, tt.val, tt.mult)
		}
	}

	if _, _, ok := LookupBid(BidShowCards); ok {
		t.Error("show-cards must not be a scoring bid")
	}
	if !KnownBid(BidShowCards) {
		t.Error("show-cards should be a known bid action")
	}
	if KnownBid(BidType("14")) {
		t.Error("unknown bid type accepted")
	}
}

func TestBidPoints(t *testing.T) {
	tests := []struct {
		name string
		bid  Bid
		want int
	}{
		{"board seen", Bid{Val: 4, Mult: 1}, 40},
		{"two-for-ten seen", Bid{Val: 10, Mult: 2}, 200},
		{"two-for-ten blind", Bid{Blind: true, Val: 10, Mult: 2}, 400},
		{"boston blind", Bid{Blind: true, Val: 13, Mult: 1}, 260},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bid.Points(); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBidComplete(t *testing.T) {
	b := NewBid()
	if !b.Blind {
		t.Error("new bid should start blind")
	}
	if b.Complete() {
		t.Error("new bid should be incomplete")
	}
	b.Val, b.Mult = 4, 1
	if !b.Complete() {
		t.Error("bid with value and multiplier should be complete")
	}
}

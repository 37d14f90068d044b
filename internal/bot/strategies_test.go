package bot

import (
	"testing"

	"spades/internal/domain"
)

func testGame() *domain.Game {
	game := &domain.Game{
		Starting:     domain.Seat{Team: 0, Player: 0},
		WinningScore: 800,
	}
	round := &domain.Round{
		Turn:    1,
		Teams:   [2]*domain.TeamRound{{Bid: domain.NewBid()}, {Bid: domain.NewBid()}},
		Current: game.Starting,
	}
	for id := domain.Card(0); id < 52; id++ {
		seat := domain.SeatAt(int(id) / 13)
		round.Teams[seat.Team].Hands[seat.Player] = append(round.Teams[seat.Team].Hands[seat.Player], id)
	}
	game.Round = round
	return game
}

func TestChooseBidPeeksWhileBlind(t *testing.T) {
	brain := &steadyBrain{}
	game := testGame()

	if got := brain.ChooseBid(game, 0); got != domain.BidShowCards {
		t.Fatalf("blind bid = %q, want show-cards", got)
	}

	game.Round.Bid(0).Blind = false
	got := brain.ChooseBid(game, 0)
	if got == domain.BidShowCards {
		t.Fatal("bot must commit a scoring bid after peeking")
	}
	if _, _, ok := domain.LookupBid(got); !ok {
		t.Fatalf("bid %q is not in the catalog", got)
	}
}

func TestChooseCardIsAlwaysLegal(t *testing.T) {
	brain := &steadyBrain{}
	game := testGame()
	game.Round.Teams[0].Bid = domain.Bid{Val: 4, Mult: 1}
	game.Round.Teams[1].Bid = domain.Bid{Val: 7, Mult: 1}

	for trick := 0; trick < 13; trick++ {
		for play := 0; play < 4; play++ {
			seat := game.Round.Current
			card := brain.ChooseCard(game, seat)

			legal := false
			for _, c := range game.Round.PlayableCards(seat) {
				if c == card {
					legal = true
					break
				}
			}
			if !legal {
				t.Fatalf("trick %d: bot chose illegal card %v for %+v", trick+1, card, seat)
			}

			game.Round.RemoveCard(seat, card)
			if card.Suit() == domain.Spades {
				game.Round.SpadesBroken = true
			}
			game.Round.Trick = append(game.Round.Trick, domain.TrickPlay{Seat: seat, Card: card})
			if game.Round.TrickComplete() {
				winner, err := game.Round.TrickWinner()
				if err != nil {
					t.Fatalf("trick winner error: %v", err)
				}
				game.Round.Trick = nil
				game.Round.Turn++
				game.Round.Current = winner.Seat
			} else {
				game.Round.Current = domain.NextSeat(game.Round.Current)
			}
		}
	}
}

func TestIdentitiesFallback(t *testing.T) {
	identity := GetIdentity(2)
	if identity.UserID == "" || identity.DisplayName == "" {
		t.Fatalf("fallback identity incomplete: %+v", identity)
	}
	if !IsBot(identity.UserID) {
		t.Fatalf("generated identity %q not recognized as bot", identity.UserID)
	}
	if IsBot("4f2e7c-real-user") {
		t.Fatal("human user id flagged as bot")
	}
}

func TestNewAgentRejectsHumans(t *testing.T) {
	if _, err := NewAgent("human-user"); err == nil {
		t.Fatal("expected error for non-bot user id")
	}
	agent, err := NewAgent(GetIdentity(0).UserID)
	if err != nil {
		t.Fatalf("NewAgent error: %v", err)
	}
	if agent.Strategy == nil {
		t.Fatal("agent missing strategy")
	}
}

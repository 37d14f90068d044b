package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"spades/internal/domain"
)

// Service contains the Spades rules engine use-cases operating on domain
// state. Methods are atomic: every validation runs before the first
// mutation, so a rejected action leaves the game untouched.
type Service struct {
	rng          *rand.Rand
	winningScore int
	jokerVariant bool
}

// NewService constructs a Service with the provided rng or a time-seeded
// default. Games use the joker-variant deck and the default winning score
// unless SetRules overrides them.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		rng:          rng,
		winningScore: DefaultWinningScore,
		jokerVariant: true,
	}
}

// SetRules overrides the winning score and deck variant, typically from
// configuration.
func (s *Service) SetRules(winningScore int, jokerVariant bool) {
	if winningScore > 0 {
		s.winningScore = winningScore
	}
	s.jokerVariant = jokerVariant
}

var (
	// ErrOutOfTurn rejects an action from a seat or team that is not the
	// one currently expected.
	ErrOutOfTurn = errors.New("action is not this seat's turn")
	// ErrIllegalBid rejects a bid outside the catalog or after the team's
	// bid is already complete.
	ErrIllegalBid = errors.New("bid not allowed")
	// ErrIllegalPlay rejects a card the seat does not hold or that the
	// follow-suit rules forbid.
	ErrIllegalPlay = errors.New("card cannot be played")
	// ErrGameOver rejects any action once a team has reached the winning
	// score.
	ErrGameOver = errors.New("game is over")
	// ErrRoundInconsistency flags internal state that should be
	// unreachable, such as resolving a short trick.
	ErrRoundInconsistency = errors.New("round state inconsistent")
)

// Reset starts a new game: zeroed scores, a fresh deal and a bid prompt for
// the opening partnership.
func (s *Service) Reset() (*domain.Game, []Event, error) {
	game := domain.NewGame(s.deal(), s.winningScore)
	return game, []Event{promptBid(game.BiddingTeam)}, nil
}

// Bid applies one partnership's bidding action. The first action while the
// team is still blind reveals both of its hands; show-cards then clears the
// blind flag and re-prompts the same team, while a scoring bid commits the
// contract and moves bidding (or play) along.
func (s *Service) Bid(game *domain.Game, team domain.Team, bidType domain.BidType) ([]Event, error) {
	if game.Over() {
		return nil, ErrGameOver
	}
	round := game.Round
	bid := round.Bid(team)
	// A team re-bidding a settled contract is an illegal bid, not a turn
	// violation.
	if bid.Complete() {
		return nil, ErrIllegalBid
	}
	if team != game.BiddingTeam {
		return nil, ErrOutOfTurn
	}
	if !domain.KnownBid(bidType) {
		return nil, ErrIllegalBid
	}

	var events []Event
	if bid.Blind {
		// The partnership sees its cards the moment it first acts, not
		// at deal time.
		for player := 0; player < 2; player++ {
			seat := domain.Seat{Team: team, Player: player}
			events = append(events, Event{
				Kind:       EventHandRevealed,
				Payload:    HandRevealedPayload{Seat: seat, Hand: round.Hand(seat)},
				Recipients: []domain.Seat{seat},
			})
		}
	}

	if bidType == domain.BidShowCards {
		// Peeking forfeits the blind doubling but does not consume the
		// team's bidding turn.
		bid.Blind = false
		return append(events, promptBid(team)), nil
	}

	val, mult, _ := domain.LookupBid(bidType)
	bid.Val, bid.Mult = val, mult

	if !round.BidsComplete() {
		game.BiddingTeam = team.Other()
		return append(events, promptBid(game.BiddingTeam)), nil
	}
	return append(events, promptPlay(round)), nil
}

// Play applies one seat's card to the current trick, resolving the trick,
// the round and the game as they complete.
func (s *Service) Play(game *domain.Game, seat domain.Seat, card domain.Card) ([]Event, error) {
	if game.Over() {
		return nil, ErrGameOver
	}
	round := game.Round
	if !round.BidsComplete() || seat != round.Current {
		return nil, ErrOutOfTurn
	}
	if !round.HasCard(seat, card) {
		return nil, ErrIllegalPlay
	}
	if !containsCard(round.PlayableCards(seat), card) {
		return nil, ErrIllegalPlay
	}

	// Validation done; everything below must commit.
	round.RemoveCard(seat, card)
	if card.Suit() == domain.Spades {
		round.SpadesBroken = true
	}
	round.Trick = append(round.Trick, domain.TrickPlay{Seat: seat, Card: card})

	if !round.TrickComplete() {
		round.Current = domain.NextSeat(round.Current)
		return []Event{promptPlay(round)}, nil
	}

	winner, err := round.TrickWinner()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoundInconsistency, err)
	}
	winningTeam := round.Teams[winner.Seat.Team]
	winningTeam.Books++
	events := []Event{{
		Kind:    EventBookWon,
		Payload: BookWonPayload{Seat: winner.Seat, Books: winningTeam.Books},
	}}
	round.Trick = nil
	round.Turn++
	round.Current = winner.Seat

	if !round.Over() {
		return append(events, promptPlay(round)), nil
	}

	for team := domain.Team(0); team < 2; team++ {
		points, err := round.Points(team)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRoundInconsistency, err)
		}
		game.Scores[team] += points
	}
	events = append(events, Event{
		Kind:    EventScores,
		Payload: ScoresPayload{Team0: game.Scores[0], Team1: game.Scores[1]},
	})

	if game.Over() {
		return append(events, Event{
			Kind: EventGameEnded,
			Payload: GameEndedPayload{
				Winner: game.Winner(),
				Team0:  game.Scores[0],
				Team1:  game.Scores[1],
			},
		}), nil
	}

	game.NextRound(s.deal())
	return append(events, promptBid(game.BiddingTeam)), nil
}

func (s *Service) deal() []domain.Card {
	deck := domain.NewDeck(s.jokerVariant)
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

func promptBid(team domain.Team) Event {
	return Event{
		Kind:    EventPromptBid,
		Payload: PromptBidPayload{Team: team},
		Recipients: []domain.Seat{
			{Team: team, Player: 0},
			{Team: team, Player: 1},
		},
	}
}

func promptPlay(round *domain.Round) Event {
	seat := round.Current
	return Event{
		Kind:       EventPromptPlay,
		Payload:    PromptPlayPayload{Seat: seat, Playable: round.PlayableCards(seat)},
		Recipients: []domain.Seat{seat},
	}
}

func containsCard(cards []domain.Card, card domain.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

package app

import "spades/internal/domain"

// EventKind identifies emitted engine events for transport dispatch.
type EventKind string

const (
	EventPromptBid    EventKind = "prompt_bid"
	EventPromptPlay   EventKind = "prompt_play"
	EventHandRevealed EventKind = "hand_revealed"
	EventBookWon      EventKind = "book_won"
	EventScores       EventKind = "scores"
	EventGameEnded    EventKind = "game_ended"
)

// Event is an engine event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat // empty means broadcast to the whole room
}

// PromptBidPayload asks a partnership for its next bidding action.
type PromptBidPayload struct {
	Team domain.Team
}

// PromptPlayPayload asks one seat for a card, listing what it may legally
// play. The same filter is re-enforced when the play comes back in.
type PromptPlayPayload struct {
	Seat     domain.Seat
	Playable []domain.Card
}

// HandRevealedPayload shows a seat its own dealt hand at bid time.
type HandRevealedPayload struct {
	Seat domain.Seat
	Hand []domain.Card
}

// BookWonPayload announces a captured trick to the whole table.
type BookWonPayload struct {
	Seat  domain.Seat
	Books int
}

// ScoresPayload carries both cumulative scores after a round settles.
type ScoresPayload struct {
	Team0 int
	Team1 int
}

// GameEndedPayload is the terminal broadcast once a team reaches the
// winning score.
type GameEndedPayload struct {
	Winner domain.Team
	Team0  int
	Team1  int
}

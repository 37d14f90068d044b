package nakama

import (
	"spades/internal/domain"
)

// Client request payloads, JSON over the match data channel.

type bidRequest struct {
	Bid string `json:"bid"`
}

type playRequest struct {
	Card int `json:"card"`
}

type chatRequest struct {
	Text string `json:"text"`
}

type bidResponse struct {
	Accept bool `json:"accept"`
}

// Server event payloads.

type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

type seatInfo struct {
	Seat        domain.Seat `json:"seat"`
	UserID      string      `json:"user_id"`
	DisplayName string      `json:"display_name"`
	IsBot       bool        `json:"is_bot"`
}

type lobbyMsg struct {
	Seats []seatInfo `json:"seats"`
	Open  int        `json:"open"`
}

type gameStartedMsg struct {
	Seats        []seatInfo  `json:"seats"`
	BiddingTeam  domain.Team `json:"bidding_team"`
	WinningScore int         `json:"winning_score"`
}

type promptBidMsg struct {
	Team domain.Team `json:"team"`
}

type promptPlayMsg struct {
	Seat     domain.Seat `json:"seat"`
	Playable []int       `json:"playable"`
}

type handRevealedMsg struct {
	Seat domain.Seat `json:"seat"`
	Hand []int       `json:"hand"`
}

type bidProposedMsg struct {
	Team domain.Team `json:"team"`
	Seat domain.Seat `json:"seat"`
	Bid  string      `json:"bid"`
}

type bidDeclinedMsg struct {
	Team domain.Team `json:"team"`
	Bid  string      `json:"bid"`
}

type bidPlacedMsg struct {
	Team domain.Team `json:"team"`
	Bid  string      `json:"bid"`
}

type cardPlayedMsg struct {
	Seat domain.Seat `json:"seat"`
	Card int         `json:"card"`
}

type bookWonMsg struct {
	Seat  domain.Seat `json:"seat"`
	Books int         `json:"books"`
}

type scoresMsg struct {
	Team0 int `json:"team0"`
	Team1 int `json:"team1"`
}

type gameEndedMsg struct {
	Winner domain.Team `json:"winner"`
	Team0  int         `json:"team0"`
	Team1  int         `json:"team1"`
}

type chatMsg struct {
	Seat        domain.Seat `json:"seat"`
	DisplayName string      `json:"display_name"`
	Text        string      `json:"text"`
}

type errorMsg struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// cardIDs flattens domain cards into their wire ids.
func cardIDs(cards []domain.Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = int(c)
	}
	return out
}

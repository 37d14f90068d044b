package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// RpcVoiceToken is the Nakama RPC id clients call to sign voice chat access tokens.
	RpcVoiceToken = "voice_token"

	// MatchNameSpades is the authoritative match handler name registered with Nakama.
	MatchNameSpades = "spades_match"
)

// Match label keys, queried by quick_match.
const (
	MatchLabelKeyOpenSeats = "open"
	MatchLabelKeyGame      = "game"
	MatchLabelKeyPhase     = "phase"

	MatchLabelGame = "spades"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpBid       int64 = 1
	OpPlay      int64 = 2
	OpChat      int64 = 3
	OpBidAccept int64 = 4

	// Server -> Client events
	OpPlayerJoined int64 = 101
	OpPlayerLeft   int64 = 102
	OpGameStarted  int64 = 103
	OpPromptBid    int64 = 104
	OpPromptPlay   int64 = 105 // send privately
	OpHandRevealed int64 = 106 // send privately
	OpBookWon      int64 = 107
	OpScores       int64 = 108
	OpGameEnded    int64 = 109
	OpChatMessage  int64 = 110
	OpGameError    int64 = 111 // send privately
	OpCardPlayed   int64 = 112
	OpBidPlaced    int64 = 113
	OpBidProposed  int64 = 114
	OpBidDeclined  int64 = 115
)

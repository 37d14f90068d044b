package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"spades/internal/app"
	"spades/internal/bot"
	"spades/internal/config"
	"spades/internal/domain"
	"spades/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BidProposal is a bid awaiting the proposer's partner's confirmation. The
// engine does not see the bid until the partner accepts.
type BidProposal struct {
	Team         domain.Team `json:"team"`
	ProposerSeat int         `json:"proposer_seat"`
	Bid          string      `json:"bid"`
}

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats                [4]string                   `json:"seats"` // user IDs per seat index, "" means empty
	Tick                 int64                       `json:"tick"`
	Presences            map[string]runtime.Presence `json:"-"`           // UserId -> Presence for targeted messaging
	App                  *app.Service                `json:"-"`            // rules engine use-cases
	Game                 *domain.Game                `json:"-"`            // nil while in the lobby
	PendingBid           *BidProposal                `json:"pending_bid"` // bid waiting on partner confirmation
	BaseBet              int64                       `json:"base_bet"`    // chips staked per player this table
	BotsEnabled          bool                        `json:"bots_enabled"`
	BotMinDelay          int                         `json:"bot_min_delay"`
	BotMaxDelay          int                         `json:"bot_max_delay"`
	BotAutoFillDelay     int                         `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                       `json:"bot_wait_until"`          // tick when the acting bot moves
	LastSinglePlayerTick int64                       `json:"last_single_player_tick"` // tick when humans started waiting
	Bots                 map[string]*bot.Agent       `json:"-"`
	Economy              ports.EconomyPort           `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// seatIndexOf returns the seat index occupied by the user, or -1.
func (ms *MatchState) seatIndexOf(userID string) int {
	for i, seatUserID := range ms.Seats {
		if seatUserID == userID {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	for _, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return false
		}
	}
	return true
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	service := app.NewService(nil)
	service.SetRules(config.GetWinningScore(), config.JokerVariantEnabled())

	tier := ""
	if val, ok := params["tier"].(string); ok {
		tier = val
	}

	state := &MatchState{
		Tick:        time.Now().Unix(),
		Presences:   make(map[string]runtime.Presence),
		App:         service,
		BaseBet:     config.GetBaseBet(tier),
		BotsEnabled: true,
		Bots:        make(map[string]*bot.Agent),
		Economy:     NewNakamaEconomyAdapter(nk),
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["spades_bots_enabled"]; ok {
		state.BotsEnabled = val != "false"
	}
	if val, ok := env["spades_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["spades_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	state.BotAutoFillDelay = config.GetBotAutoFillDelay()

	labelBytes, err := json.Marshal(matchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  MatchLabelGame,
		Phase: "lobby",
	})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Reconnects keep their seat.
	if matchState.seatIndexOf(presence.GetUserId()) >= 0 {
		return state, true, ""
	}

	if matchState.Game != nil {
		return state, false, "Game in progress"
	}

	// Allow join if there is an empty seat or a bot to replace.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		for _, seat := range matchState.Seats {
			if bot.IsBot(seat) {
				hasBot = true
				break
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.seatIndexOf(p.GetUserId()) >= 0 {
			// Reconnect, seat unchanged.
			continue
		}

		// Assign seat: empty seats first, then bots while still in the lobby.
		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastLobby(matchState, dispatcher, logger, OpPlayerJoined)

	// The table starts the moment the fourth seat fills.
	if matchState.Game == nil && matchState.GetOpenSeatsCount() == 0 {
		mh.startGame(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		i := matchState.seatIndexOf(p.GetUserId())
		if i < 0 {
			continue
		}

		// A proposal loses its proposer or confirmer; drop it so the
		// partnership can bid afresh.
		if matchState.PendingBid != nil && domain.SeatAt(i).Team == matchState.PendingBid.Team {
			matchState.PendingBid = nil
		}

		if matchState.Game == nil {
			matchState.Seats[i] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
			continue
		}

		// Mid-game leavers are replaced by a bot so the table can finish
		// the game.
		identity := bot.GetIdentity(i)
		agent, err := bot.NewAgent(identity.UserID)
		if err != nil {
			logger.Error("MatchLeave: Failed to create replacement bot for seat %d: %v", i, err)
			matchState.Seats[i] = ""
			continue
		}
		matchState.Seats[i] = identity.UserID
		matchState.Bots[identity.UserID] = agent
		logger.Info("MatchLeave: User %s left mid-game, bot %s takes seat %d.", p.GetUserId(), identity.UserID, i)
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastLobby(matchState, dispatcher, logger, OpPlayerLeft)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpBid:
			mh.handleBid(ctx, matchState, dispatcher, logger, msg)
		case OpBidAccept:
			mh.handleBidAccept(ctx, matchState, dispatcher, logger, msg)
		case OpPlay:
			mh.handlePlay(ctx, matchState, dispatcher, logger, msg)
		case OpChat:
			mh.handleChat(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	// A full table back in the lobby deals the next game straight away.
	if matchState.Game == nil && matchState.GetOpenSeatsCount() == 0 {
		mh.startGame(ctx, matchState, dispatcher, logger)
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// startGame resets the rules engine and flips the table out of the lobby.
func (mh *matchHandler) startGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	game, events, err := state.App.Reset()
	if err != nil {
		logger.Error("startGame: Failed to start game: %v", err)
		return
	}
	state.Game = game
	state.PendingBid = nil
	state.BotWaitUntil = 0
	state.LastSinglePlayerTick = 0

	mh.updateLabel(state, dispatcher, logger)

	started := gameStartedMsg{
		Seats:        mh.seatInfos(state),
		BiddingTeam:  game.BiddingTeam,
		WinningScore: game.WinningScore,
	}
	mh.broadcast(state, dispatcher, logger, OpGameStarted, started, nil)

	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}

	logger.Info("startGame: Game started, team %d bids first.", game.BiddingTeam)
}

// handleBid treats an incoming bid as a proposal: the proposer's partner
// must confirm it before the engine commits the contract. Bot and absent
// partners accept implicitly.
func (mh *matchHandler) handleBid(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatIndexOf(senderID)
	if senderSeat < 0 || state.Game == nil {
		logger.Warn("handleBid: User %s is not seated in an active game.", senderID)
		return
	}

	var req bidRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleBid: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid bid payload")
		return
	}

	// Read-only engine checks up front so a doomed proposal never reaches
	// the partner.
	seat := domain.SeatAt(senderSeat)
	team := seat.Team
	if state.Game.Round.Bid(team).Complete() {
		mh.sendError(state, dispatcher, logger, senderID, 400, app.ErrIllegalBid.Error())
		return
	}
	if team != state.Game.BiddingTeam {
		mh.sendError(state, dispatcher, logger, senderID, 400, app.ErrOutOfTurn.Error())
		return
	}
	if !domain.KnownBid(domain.BidType(req.Bid)) {
		mh.sendError(state, dispatcher, logger, senderID, 400, app.ErrIllegalBid.Error())
		return
	}

	partner := domain.Seat{Team: team, Player: 1 - seat.Player}
	partnerID := state.Seats[partner.Index()]
	if _, connected := state.Presences[partnerID]; connected && !bot.IsBot(partnerID) {
		// A fresh proposal supersedes any earlier unanswered one.
		state.PendingBid = &BidProposal{Team: team, ProposerSeat: senderSeat, Bid: req.Bid}
		mh.broadcast(state, dispatcher, logger, OpBidProposed, bidProposedMsg{Team: team, Seat: seat, Bid: req.Bid}, nil)
		return
	}

	mh.applyBid(ctx, state, dispatcher, logger, senderID, team, domain.BidType(req.Bid))
}

// handleBidAccept resolves a pending proposal with the partner's answer.
func (mh *matchHandler) handleBidAccept(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatIndexOf(senderID)
	pending := state.PendingBid
	if senderSeat < 0 || state.Game == nil || pending == nil {
		return
	}

	proposer := domain.SeatAt(pending.ProposerSeat)
	partnerIndex := (domain.Seat{Team: proposer.Team, Player: 1 - proposer.Player}).Index()
	if senderSeat != partnerIndex {
		logger.Warn("handleBidAccept: User %s answered a proposal that is not theirs to confirm.", senderID)
		return
	}

	var req bidResponse
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleBidAccept: Invalid payload from %s: %v", senderID, err)
		return
	}

	state.PendingBid = nil
	if !req.Accept {
		mh.broadcast(state, dispatcher, logger, OpBidDeclined, bidDeclinedMsg{Team: pending.Team, Bid: pending.Bid}, nil)
		return
	}

	mh.applyBid(ctx, state, dispatcher, logger, state.Seats[pending.ProposerSeat], pending.Team, domain.BidType(pending.Bid))
}

// applyBid commits a confirmed bid to the engine and broadcasts the result.
func (mh *matchHandler) applyBid(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, proposerID string, team domain.Team, bidType domain.BidType) {
	events, err := state.App.Bid(state.Game, team, bidType)
	if err != nil {
		logger.Warn("applyBid: Team %d bid %q rejected: %v", team, bidType, err)
		if proposerID != "" && !bot.IsBot(proposerID) {
			mh.sendError(state, dispatcher, logger, proposerID, 400, err.Error())
		}
		return
	}

	mh.broadcast(state, dispatcher, logger, OpBidPlaced, bidPlacedMsg{Team: team, Bid: string(bidType)}, nil)
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePlay(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatIndexOf(senderID)
	if senderSeat < 0 || state.Game == nil {
		logger.Warn("handlePlay: User %s is not seated in an active game.", senderID)
		return
	}

	var req playRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handlePlay: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid play payload")
		return
	}

	seat := domain.SeatAt(senderSeat)
	card := domain.Card(req.Card)
	events, err := state.App.Play(state.Game, seat, card)
	if err != nil {
		logger.Warn("handlePlay: User %s (seat %d) play of card %d rejected: %v", senderID, senderSeat, req.Card, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.broadcast(state, dispatcher, logger, OpCardPlayed, cardPlayedMsg{Seat: seat, Card: req.Card}, nil)
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleChat(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatIndexOf(msg.GetUserId())
	if senderSeat < 0 {
		return
	}

	var req chatRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil || req.Text == "" {
		return
	}

	mh.broadcast(state, dispatcher, logger, OpChatMessage, chatMsg{
		Seat:        domain.SeatAt(senderSeat),
		DisplayName: msg.GetUsername(),
		Text:        req.Text,
	}, nil)
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill the lobby with bots once humans have waited long enough.
	if state.Game == nil {
		if state.GetHumanPlayerCount() >= 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Waiting humans detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetIdentity(i)
					agent, err := bot.NewAgent(identity.UserID)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = agent
					logger.Info("processBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
				}
				state.LastSinglePlayerTick = 0

				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastLobby(state, dispatcher, logger, OpPlayerJoined)

				if state.GetOpenSeatsCount() == 0 {
					mh.startGame(ctx, state, dispatcher, logger)
				}
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// 2. Bot turns in-game.
	switch state.Game.Phase() {
	case domain.PhaseBidding:
		team := state.Game.BiddingTeam
		// A human teammate bids for a mixed partnership; the agent acts
		// only when both seats are bots.
		first := state.Seats[(domain.Seat{Team: team, Player: 0}).Index()]
		second := state.Seats[(domain.Seat{Team: team, Player: 1}).Index()]
		if !bot.IsBot(first) || !bot.IsBot(second) {
			state.BotWaitUntil = 0
			return
		}
		if !mh.botReady(state, first, logger) {
			return
		}

		agent := state.Bots[first]
		mh.applyBid(ctx, state, dispatcher, logger, first, team, agent.Bid(state.Game, team))

	case domain.PhasePlaying:
		seat := state.Game.Round.Current
		userID := state.Seats[seat.Index()]
		if !bot.IsBot(userID) {
			state.BotWaitUntil = 0
			return
		}
		if !mh.botReady(state, userID, logger) {
			return
		}

		agent := state.Bots[userID]
		card := agent.Play(state.Game, seat)
		events, err := state.App.Play(state.Game, seat, card)
		if err != nil {
			logger.Error("processBots: Bot %s play of card %d rejected: %v", userID, card, err)
			return
		}
		mh.broadcast(state, dispatcher, logger, OpCardPlayed, cardPlayedMsg{Seat: seat, Card: int(card)}, nil)
		for _, ev := range events {
			mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
		}
	}
}

// botReady arms and checks the think-delay timer for the acting bot,
// creating a fallback agent if the seat has none.
func (mh *matchHandler) botReady(state *MatchState, userID string, logger runtime.Logger) bool {
	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return false
	}
	if state.Tick < state.BotWaitUntil {
		return false
	}
	state.BotWaitUntil = 0

	if _, exists := state.Bots[userID]; !exists {
		agent, err := bot.NewAgent(userID)
		if err != nil {
			logger.Error("botReady: Failed to create fallback agent for %s: %v", userID, err)
			return false
		}
		state.Bots[userID] = agent
	}
	return true
}

// dispatchEvent converts an engine event to its wire opcode and payload and
// sends it to the event's recipients, settling wallets when a game ends.
func (mh *matchHandler) dispatchEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload interface{}

	switch ev.Kind {
	case app.EventPromptBid:
		opCode = OpPromptBid
		p := ev.Payload.(app.PromptBidPayload)
		payload = promptBidMsg{Team: p.Team}
	case app.EventPromptPlay:
		opCode = OpPromptPlay
		p := ev.Payload.(app.PromptPlayPayload)
		payload = promptPlayMsg{Seat: p.Seat, Playable: cardIDs(p.Playable)}
	case app.EventHandRevealed:
		opCode = OpHandRevealed
		p := ev.Payload.(app.HandRevealedPayload)
		payload = handRevealedMsg{Seat: p.Seat, Hand: cardIDs(p.Hand)}
	case app.EventBookWon:
		opCode = OpBookWon
		p := ev.Payload.(app.BookWonPayload)
		payload = bookWonMsg{Seat: p.Seat, Books: p.Books}
	case app.EventScores:
		opCode = OpScores
		p := ev.Payload.(app.ScoresPayload)
		payload = scoresMsg{Team0: p.Team0, Team1: p.Team1}
	case app.EventGameEnded:
		opCode = OpGameEnded
		p := ev.Payload.(app.GameEndedPayload)
		payload = gameEndedMsg{Winner: p.Winner, Team0: p.Team0, Team1: p.Team1}

		mh.settleBets(ctx, state, logger, p.Winner)

		// Back to the lobby for the next game.
		state.Game = nil
		state.PendingBid = nil
		state.BotWaitUntil = 0
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("dispatchEvent: Unknown event kind: %v", ev.Kind)
		return
	}

	// Resolve targeted recipients; empty means broadcast.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			userID := state.Seats[seat.Index()]
			if p, ok := state.Presences[userID]; ok {
				recipients = append(recipients, p)
			}
		}

		// A targeted event whose recipients are all bots or disconnected
		// must not leak to the rest of the table.
		if len(recipients) == 0 {
			return
		}
	}

	mh.broadcast(state, dispatcher, logger, opCode, payload, recipients)
}

// settleBets applies the table stake to every human wallet, winners up and
// losers down.
func (mh *matchHandler) settleBets(ctx context.Context, state *MatchState, logger runtime.Logger, winner domain.Team) {
	if state.Economy == nil || state.BaseBet <= 0 {
		return
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	updates := make([]ports.WalletUpdate, 0, len(state.Seats))
	for i, userID := range state.Seats {
		if userID == "" || bot.IsBot(userID) {
			continue
		}
		amount := state.BaseBet
		if domain.SeatAt(i).Team != winner {
			amount = -amount
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: userID,
			Amount: amount,
			Metadata: map[string]interface{}{
				"match_id": matchID,
				"reason":   "game_settlement",
			},
		})
	}

	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("settleBets: Failed to update balances: %v", err)
	}
}

func (mh *matchHandler) seatInfos(state *MatchState) []seatInfo {
	infos := make([]seatInfo, 0, len(state.Seats))
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := bot.DisplayName(userID)
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		}

		infos = append(infos, seatInfo{
			Seat:        domain.SeatAt(i),
			UserID:      userID,
			DisplayName: displayName,
			IsBot:       bot.IsBot(userID),
		})
	}
	return infos
}

func (mh *matchHandler) broadcastLobby(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64) {
	mh.broadcast(state, dispatcher, logger, opCode, lobbyMsg{
		Seats: mh.seatInfos(state),
		Open:  state.GetOpenSeatsCount(),
	}, nil)
}

func (mh *matchHandler) broadcast(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload interface{}, recipients []runtime.Presence) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("broadcast: Failed to marshal payload for opcode %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true); err != nil {
		logger.Error("broadcast: Failed to send opcode %d: %v", opCode, err)
	}
}

// sendError sends a game error to a specific user only.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: Cannot send error to %s: Presence not found", userID)
		return
	}
	mh.broadcast(state, dispatcher, logger, OpGameError, errorMsg{Code: code, Message: message}, []runtime.Presence{presence})
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = string(state.Game.Phase())
	}

	labelBytes, err := json.Marshal(matchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  MatchLabelGame,
		Phase: phase,
	})
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

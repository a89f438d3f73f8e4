package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"bridge/internal/app"
	"bridge/internal/bot"
	"bridge/internal/config"
	"bridge/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// MatchState holds the authoritative runtime state for one bridge table.
type MatchState struct {
	UserIDs   [domain.NumSeats]string     `json:"user_ids"`  // seat -> user id; "" means the seat is empty
	Usernames map[string]string           `json:"usernames"` // user id -> username used inside the game
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"` // user id -> presence for targeted messaging
	App       *app.Service                `json:"-"`
	Invites   *app.InviteService          `json:"-"`
	Game      *domain.Game                `json:"-"`
	Private   bool                        `json:"private"`

	BotsEnabled         bool                  `json:"bots_enabled"`
	BotMinDelay         int                   `json:"bot_min_delay"`
	BotMaxDelay         int                   `json:"bot_max_delay"`
	BotAutoFillDelay    int                   `json:"bot_auto_fill_delay"`
	BotWaitUntil        int64                 `json:"bot_wait_until"`
	LastSingleHumanTick int64                 `json:"last_single_human_tick"`
	Bots                map[string]*bot.Agent `json:"-"` // username -> agent
}

// OpenSeatsCount returns the number of unclaimed seats.
func (ms *MatchState) OpenSeatsCount() int {
	count := domain.NumSeats
	if ms.Game != nil {
		count = domain.NumSeats - len(ms.Game.Players)
	}
	return count
}

// HumanCount returns the number of seated human players.
func (ms *MatchState) HumanCount() int {
	if ms.Game == nil {
		return 0
	}
	count := 0
	for _, name := range ms.Game.Players {
		if !bot.IsBot(name) {
			count++
		}
	}
	return count
}

func (ms *MatchState) usernameAt(seat domain.Seat) string {
	if ms.Game == nil || int(seat) >= len(ms.Game.Players) {
		return ""
	}
	return ms.Game.Players[seat]
}

type matchHandler struct{}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

// MatchInit boots a new table in the waiting phase.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing bridge table.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	state := &MatchState{
		Usernames:        make(map[string]string),
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      cfg.BotsEnabled,
		BotMinDelay:      cfg.BotMinDelaySeconds,
		BotMaxDelay:      cfg.BotMaxDelaySeconds,
		BotAutoFillDelay: cfg.BotAutoFillDelaySeconds,
	}

	if private, ok := params["private"].(bool); ok {
		state.Private = private
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["bridge_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["bridge_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["bridge_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["bridge_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if secret, ok := env["bridge_invite_secret"]; ok && secret != "" {
		state.Invites = app.NewInviteService(secret, "bridge", 0)
	}

	if state.BotMinDelay <= 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay
	}
	if state.BotAutoFillDelay <= 0 {
		state.BotAutoFillDelay = 5
	}

	label, err := mh.labelString(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A player whose seat was kept across a disconnect may always resume,
	// even on a full mid-game table and without an invite token.
	if matchState.Game != nil {
		if _, seated := matchState.Game.SeatOf(presence.GetUsername()); seated {
			return state, true, ""
		}
	}

	// Private tables admit the first player without a token; everyone
	// after that needs a valid invite minted for this match.
	if matchState.Private && matchState.Game != nil {
		if matchState.Invites == nil {
			return state, false, "invites are not configured"
		}
		matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
		tokenMatch, err := matchState.Invites.Verify(metadata["invite_token"])
		if err != nil || tokenMatch != matchID {
			return state, false, "invalid invite token"
		}
	}

	// Allow join if there is an empty seat, or a bot to replace while the
	// table is still waiting.
	if matchState.OpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game != nil && matchState.Game.Phase == domain.PhaseWaiting {
			for _, name := range matchState.Game.Players {
				if bot.IsBot(name) {
					hasBot = true
					break
				}
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
		matchState.Usernames[p.GetUserId()] = p.GetUsername()

		// A player whose seat was kept across a disconnect just resumes.
		if matchState.Game != nil {
			if _, seated := matchState.Game.SeatOf(p.GetUsername()); seated {
				logger.Info("MatchJoin: User %s reconnected.", p.GetUserId())
				mh.broadcastEvent(ctx, matchState, dispatcher, logger, app.Event{
					Kind:       app.EventGameUpdated,
					Payload:    app.GameUpdatedPayload{TurnSeat: int(matchState.Game.Turn)},
					Recipients: []string{p.GetUsername()},
				})
				continue
			}
		}

		var events []app.Event
		switch {
		case matchState.Game == nil:
			matchState.Game, events = matchState.App.CreateGame(p.GetUsername())
			matchState.UserIDs[0] = p.GetUserId()
		default:
			var err error
			events, err = matchState.App.JoinGame(matchState.Game, p.GetUsername())
			if err == nil {
				matchState.UserIDs[len(matchState.Game.Players)-1] = p.GetUserId()
				break
			}
			// Full table: replace a bot while still waiting.
			events = mh.replaceBot(matchState, p, logger)
			if events == nil {
				logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
				continue
			}
		}

		for _, ev := range events {
			mh.broadcastEvent(ctx, matchState, dispatcher, logger, ev)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// replaceBot seats the joining human in the place of a bot on a waiting,
// full table. Returns nil when there is no bot to evict.
func (mh *matchHandler) replaceBot(state *MatchState, p runtime.Presence, logger runtime.Logger) []app.Event {
	if state.Game == nil || state.Game.Phase != domain.PhaseWaiting {
		return nil
	}
	for seat, name := range state.Game.Players {
		if !bot.IsBot(name) {
			continue
		}
		logger.Info("MatchJoin: Replacing bot %s with %s in seat %d", name, p.GetUsername(), seat)
		delete(state.Bots, name)
		state.Game.Players[seat] = p.GetUsername()
		state.UserIDs[seat] = p.GetUserId()
		return []app.Event{{
			Kind:    app.EventPlayerJoined,
			Payload: app.PlayerJoinedPayload{Name: p.GetUsername(), Seat: seat, Players: state.Game.Players},
		}}
	}
	return nil
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

		if matchState.Game == nil {
			continue
		}

		name := matchState.Usernames[p.GetUserId()]
		if matchState.Game.Phase != domain.PhaseWaiting {
			// Seats are fixed once the cards are dealt; the player may
			// reconnect into the same seat.
			logger.Debug("MatchLeave: User %s disconnected mid-game, seat kept.", p.GetUserId())
			continue
		}

		seat, seated := matchState.Game.SeatOf(name)
		events, err := matchState.App.LeaveGame(matchState.Game, name)
		if err != nil {
			logger.Warn("MatchLeave: Failed to unseat %s: %v", name, err)
			continue
		}
		if seated {
			copy(matchState.UserIDs[seat:], matchState.UserIDs[seat+1:])
			matchState.UserIDs[domain.NumSeats-1] = ""
		}
		delete(matchState.Usernames, p.GetUserId())

		for _, ev := range events {
			mh.broadcastEvent(ctx, matchState, dispatcher, logger, ev)
		}
	}

	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating table with no connected humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
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
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpSubmitBid:
			mh.handleSubmitBid(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	sender := state.Usernames[msg.GetUserId()]
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), codeLobby, "no table")
		return
	}

	events, err := state.App.StartGame(state.Game, sender)
	if err != nil {
		logger.Warn("StartGame: %s could not start the game: %v", sender, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), errorCode(err), err.Error())
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	logger.Info("StartGame: Cards dealt, dealer seat %d.", state.Game.Dealer)
}

func (mh *matchHandler) handleSubmitBid(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	sender := state.Usernames[msg.GetUserId()]
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), codeLobby, "no table")
		return
	}

	var request SubmitBidRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("SubmitBid: Invalid payload from %s: %v", sender, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), codeInvalidPayload, "invalid payload")
		return
	}
	call, err := domain.ParseCall(request.Bid)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), codeInvalidPayload, err.Error())
		return
	}

	events, err := state.App.SubmitBid(state.Game, sender, call)
	if err != nil {
		logger.Warn("SubmitBid: %s bid %s rejected: %v", sender, request.Bid, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), errorCode(err), err.Error())
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	sender := state.Usernames[msg.GetUserId()]
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), codeLobby, "no table")
		return
	}

	var request PlayCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("PlayCard: Invalid payload from %s: %v", sender, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), codeInvalidPayload, "invalid payload")
		return
	}
	card, err := domain.ParseCard(request.Card)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), codeInvalidPayload, err.Error())
		return
	}

	events, err := state.App.PlayCard(state.Game, sender, request.CardIndex, card)
	if err != nil {
		logger.Warn("PlayCard: %s playing %s rejected: %v", sender, request.Card, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), errorCode(err), err.Error())
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		return
	}

	// Auto-fill a lone human's table after the configured delay.
	if state.Game.Phase == domain.PhaseWaiting {
		if state.HumanCount() == 1 {
			if state.LastSingleHumanTick == 0 {
				state.LastSingleHumanTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.LastSingleHumanTick >= int64(state.BotAutoFillDelay) {
				mh.autoFillBots(ctx, state, dispatcher, logger)
				state.LastSingleHumanTick = 0
			}
		} else {
			state.LastSingleHumanTick = 0
		}
		return
	}

	if state.Game.Phase != domain.PhaseBidding && state.Game.Phase != domain.PhasePlaying {
		return
	}

	// The actor for the dummy's turn is the declarer.
	seatToPlay := state.Game.Turn
	actor := seatToPlay
	if state.Game.Phase == domain.PhasePlaying && seatToPlay == state.Game.Roles.Dummy {
		actor = state.Game.Roles.Declarer
	}

	name := state.usernameAt(actor)
	if !bot.IsBot(name) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d", name, actor, state.BotWaitUntil)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[name]
	if !exists {
		agent = bot.NewAgent(name)
		state.Bots[name] = agent
	}

	var events []app.Event
	var err error
	if state.Game.Phase == domain.PhaseBidding {
		var move bot.BidMove
		move, err = agent.Bid(state.Game, actor)
		if err == nil {
			events, err = state.App.SubmitBid(state.Game, name, move.Call)
		}
	} else {
		var move bot.PlayMove
		move, err = agent.Play(state.Game, seatToPlay)
		if err == nil {
			events, err = state.App.PlayCard(state.Game, name, move.CardIndex, move.Card)
		}
	}
	if err != nil {
		logger.Error("processBots: Bot %s failed to act: %v", name, err)
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) autoFillBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	added := false
	for !state.Game.Full() {
		name := bot.PickName(state.Game.Players)
		events, err := state.App.JoinGame(state.Game, name)
		if err != nil {
			logger.Error("processBots: Failed to seat bot %s: %v", name, err)
			break
		}
		state.Bots[name] = bot.NewAgent(name)
		seat := len(state.Game.Players) - 1
		state.UserIDs[seat] = name
		logger.Info("processBots: Added bot %s to seat %d", name, seat)
		added = true

		for _, ev := range events {
			mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
		}
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
	}
}

// broadcastEvent wraps an app event with the current table snapshot and
// dispatches it. Targeted events go only to connected recipients; targeted
// events whose recipients are all offline are dropped, never widened.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := eventOpCode(ev.Kind)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	msg := envelope{Kind: string(ev.Kind), Payload: ev.Payload}
	if state.Game != nil {
		snapshot := app.NewSnapshot(matchID, state.Game)
		msg.Game = &snapshot
	}

	bytes, err := json.Marshal(msg)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, name := range ev.Recipients {
			for userID, username := range state.Usernames {
				if username != name {
					continue
				}
				if p, ok := state.Presences[userID]; ok {
					recipients = append(recipients, p)
				}
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendError notifies only the offending user; the table state is untouched.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(GameError{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameError: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) labelString(state *MatchState) (string, error) {
	phase := string(domain.PhaseWaiting)
	if state.Game != nil {
		phase = string(state.Game.Phase)
	}
	label, err := structpb.NewStruct(map[string]interface{}{
		"game":    "bridge",
		"open":    state.OpenSeatsCount(),
		"phase":   phase,
		"private": state.Private,
	})
	if err != nil {
		return "", err
	}
	bytes, err := protojson.Marshal(label)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := mh.labelString(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Table closed for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

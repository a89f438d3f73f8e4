package app

import (
	"errors"
	"math/rand"
	"time"

	"bridge/internal/domain"
)

// Session/lobby errors. Engine legality errors come from the domain package.
var (
	ErrGameFull         = errors.New("game is full")
	ErrNotCreator       = errors.New("only the game creator can start the game")
	ErrNotEnoughPlayers = errors.New("not enough players to start the game")
	ErrUnknownPlayer    = errors.New("player not found")
)

// Service contains the bridge use-cases operating on one game session at a
// time. The transport collaborator owns session storage and lookup and is
// responsible for serializing actions per session; every method here either
// fully applies or fails leaving the game untouched.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// CreateGame creates a waiting session with a uniformly random dealer and
// the creator at seat 0.
func (s *Service) CreateGame(creator string) (*domain.Game, []Event) {
	game := domain.NewGame(creator, domain.Seat(s.rng.Intn(domain.NumSeats)))
	events := []Event{{
		Kind:    EventPlayerJoined,
		Payload: PlayerJoinedPayload{Name: creator, Seat: 0, Players: game.Players},
	}}
	return game, events
}

// JoinGame seats the named player. The fourth join additionally announces
// that the table is complete.
func (s *Service) JoinGame(game *domain.Game, name string) ([]Event, error) {
	if game.Full() {
		return nil, ErrGameFull
	}
	game.Players = append(game.Players, name)

	events := []Event{{
		Kind:    EventPlayerJoined,
		Payload: PlayerJoinedPayload{Name: name, Seat: len(game.Players) - 1, Players: game.Players},
	}}
	if game.Full() {
		events = append(events, Event{Kind: EventAllPlayersJoined})
	}
	return events, nil
}

// LeaveGame removes a player from a session that has not started yet.
// Once hands are dealt seats stay reserved for rejoin.
func (s *Service) LeaveGame(game *domain.Game, name string) ([]Event, error) {
	if game.Phase != domain.PhaseWaiting {
		return nil, nil
	}
	seat, ok := game.SeatOf(name)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	game.Players = append(game.Players[:seat], game.Players[seat+1:]...)
	return []Event{{
		Kind:    EventPlayerLeft,
		Payload: PlayerLeftPayload{Name: name, Players: game.Players},
	}}, nil
}

// StartGame shuffles and deals, then opens the auction with the seat to
// the dealer's left. Only the creator may start, and only with a full table.
func (s *Service) StartGame(game *domain.Game, requester string) ([]Event, error) {
	if game.Phase != domain.PhaseWaiting {
		return nil, domain.ErrInvalidPhase
	}
	if requester != game.Creator() {
		return nil, ErrNotCreator
	}
	if !game.Full() {
		return nil, ErrNotEnoughPlayers
	}

	deck := domain.NewDeck()
	domain.Shuffle(s.rng, deck)
	game.StartBidding(domain.Deal(deck))

	return []Event{{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{Dealer: int(game.Dealer), FirstTurnSeat: int(game.Turn)},
	}}, nil
}

// SubmitBid applies one auction call for the named player.
func (s *Service) SubmitBid(game *domain.Game, name string, call domain.Call) ([]Event, error) {
	seat, ok := game.SeatOf(name)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if err := game.SubmitBid(seat, call); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventGameUpdated,
		Payload: GameUpdatedPayload{TurnSeat: int(game.Turn)},
	}}, nil
}

// PlayCard applies one card play for the named player. The card must sit
// at cardIndex in the hand of the seat to play (the dummy's hand when the
// declarer acts on the dummy's turn).
func (s *Service) PlayCard(game *domain.Game, name string, cardIndex int, card domain.Card) ([]Event, error) {
	seat, ok := game.SeatOf(name)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if err := game.PlayCard(seat, cardIndex, card); err != nil {
		return nil, err
	}

	events := []Event{{
		Kind:    EventGameUpdated,
		Payload: GameUpdatedPayload{TurnSeat: int(game.Turn)},
	}}
	if game.Phase == domain.PhaseFinished {
		events = append(events, Event{
			Kind: EventGameFinished,
			Payload: GameFinishedPayload{
				TricksWonNS: game.TricksWon[domain.SideNS],
				TricksWonEW: game.TricksWon[domain.SideEW],
			},
		})
	}
	return events, nil
}

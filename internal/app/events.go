package app

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventPlayerJoined     EventKind = "player_joined"
	EventAllPlayersJoined EventKind = "all_players_joined"
	EventPlayerLeft       EventKind = "player_left"
	EventGameStarted      EventKind = "game_started"
	EventGameUpdated      EventKind = "game_updated"
	EventGameFinished     EventKind = "game_finished"
)

// Event is a notification of a committed mutation, with optional targeted
// recipients. Events are only ever emitted after a mutation commits;
// rejected actions emit nothing.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player names; empty means broadcast
}

type PlayerJoinedPayload struct {
	Name    string
	Seat    int
	Players []string
}

type PlayerLeftPayload struct {
	Name    string
	Players []string
}

type GameStartedPayload struct {
	Dealer        int
	FirstTurnSeat int
}

type GameUpdatedPayload struct {
	TurnSeat int
}

type GameFinishedPayload struct {
	TricksWonNS int
	TricksWonEW int
}

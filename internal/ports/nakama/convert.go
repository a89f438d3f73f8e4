package nakama

import (
	"errors"

	"bridge/internal/app"
	"bridge/internal/domain"
)

// SubmitBidRequest is the client payload for OpSubmitBid. The bid uses the
// auction call notation: "Pass", "Double", "Redouble", or level+strain like
// "1NT" and "4S".
type SubmitBidRequest struct {
	Bid string `json:"bid"`
}

// PlayCardRequest is the client payload for OpPlayCard. The index points at
// the card inside the hand of the seat whose turn it is, which for the dummy
// is not the sender's own hand.
type PlayCardRequest struct {
	Card      string `json:"card"`
	CardIndex int    `json:"card_index"`
}

// GameError is the payload sent to the offending client on a rejected action.
type GameError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Stable error codes for clients.
const (
	codeInvalidPayload = 100
	codeInvalidPhase   = 101
	codeNotYourTurn    = 102
	codeInvalidBid     = 103
	codeInvalidPlay    = 104
	codeLobby          = 105
	codeInternal       = 199
)

func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPhase):
		return codeInvalidPhase
	case errors.Is(err, domain.ErrNotYourTurn):
		return codeNotYourTurn
	case errors.Is(err, domain.ErrInvalidBid),
		errors.Is(err, domain.ErrInvalidDouble),
		errors.Is(err, domain.ErrInvalidRedouble):
		return codeInvalidBid
	case errors.Is(err, domain.ErrInvalidCardPlay):
		return codeInvalidPlay
	case errors.Is(err, app.ErrGameFull),
		errors.Is(err, app.ErrNotCreator),
		errors.Is(err, app.ErrNotEnoughPlayers),
		errors.Is(err, app.ErrUnknownPlayer):
		return codeLobby
	default:
		return codeInternal
	}
}

// eventOpCode maps an app event kind to its broadcast op code.
func eventOpCode(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventPlayerJoined:
		return OpPlayerJoined, true
	case app.EventPlayerLeft:
		return OpPlayerLeft, true
	case app.EventAllPlayersJoined:
		return OpAllPlayersJoined, true
	case app.EventGameStarted:
		return OpGameStarted, true
	case app.EventGameUpdated:
		return OpGameUpdated, true
	case app.EventGameFinished:
		return OpGameFinished, true
	default:
		return 0, false
	}
}

// envelope is the wire form of every server event: the payload of the
// event itself plus the full table snapshot after the mutation.
type envelope struct {
	Kind    string        `json:"kind"`
	Payload any           `json:"payload,omitempty"`
	Game    *app.Snapshot `json:"game,omitempty"`
}

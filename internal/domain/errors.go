package domain

import "errors"

// Engine legality errors. Every rejected action leaves game state unchanged.
var (
	ErrInvalidPhase    = errors.New("action not valid in current phase")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrInvalidBid      = errors.New("bid must be higher than current bid")
	ErrInvalidDouble   = errors.New("invalid double")
	ErrInvalidRedouble = errors.New("invalid redouble")
	ErrInvalidCardPlay = errors.New("invalid card played")
)

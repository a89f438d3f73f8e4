package bot

import (
	"bridge/internal/domain"
)

// BidMove is a bidding decision.
type BidMove struct {
	Call domain.Call
}

// PlayMove is a card-play decision, indexed into the acting hand.
type PlayMove struct {
	CardIndex int
	Card      domain.Card
}

// Brain is the interface every bot strategy implements.
type Brain interface {
	CalculateBid(game *domain.Game, seat domain.Seat) (BidMove, error)
	CalculatePlay(game *domain.Game, seat domain.Seat) (PlayMove, error)
}

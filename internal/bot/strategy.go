package bot

import (
	"bridge/internal/domain"
)

// PointCount is a rules-based strategy built on the Milton Work point
// count: ace 4, king 3, queen 2, jack 1.
type PointCount struct{}

const (
	openingPoints = 12
	raisePoints   = 13
	maxRaiseLevel = 2
)

// HighCardPoints totals the honour points in a hand.
func HighCardPoints(hand []domain.Card) int {
	points := 0
	for _, c := range hand {
		switch c.Rank {
		case domain.Ace:
			points += 4
		case domain.King:
			points += 3
		case domain.Queen:
			points += 2
		case domain.Jack:
			points += 1
		}
	}
	return points
}

// longestSuit returns the suit the hand holds most cards in. Ties go to
// the higher-ranking suit.
func longestSuit(hand []domain.Card) domain.Suit {
	var counts [4]int
	for _, c := range hand {
		counts[c.Suit]++
	}
	best := domain.Clubs
	for s := domain.Clubs; s <= domain.Spades; s++ {
		if counts[s] >= counts[best] {
			best = s
		}
	}
	return best
}

// CalculateBid opens one of the longest suit with opening strength,
// raises cheaply with extra strength, and otherwise passes. It never
// doubles.
func (s *PointCount) CalculateBid(game *domain.Game, seat domain.Seat) (BidMove, error) {
	hand := game.Hands[seat]
	points := HighCardPoints(hand)
	suit := longestSuit(hand)
	strain := domain.SuitStrain(suit)

	high := game.Auction.HighBid
	if !high.IsBid() {
		if points >= openingPoints {
			return BidMove{Call: domain.Bid(1, strain)}, nil
		}
		return BidMove{Call: domain.Pass()}, nil
	}

	if points >= raisePoints {
		bid := domain.Bid(high.Level, strain)
		if !bid.Beats(high) {
			bid = domain.Bid(high.Level+1, strain)
		}
		if bid.Level <= maxRaiseLevel && bid.Beats(high) {
			return BidMove{Call: bid}, nil
		}
	}
	return BidMove{Call: domain.Pass()}, nil
}

// CalculatePlay follows the led suit with its lowest card when it can,
// discards its lowest card when it cannot, and leads from its longest
// suit on an empty trick.
func (s *PointCount) CalculatePlay(game *domain.Game, seat domain.Seat) (PlayMove, error) {
	hand := game.Hands[seat]
	if len(hand) == 0 {
		return PlayMove{}, domain.ErrInvalidCardPlay
	}

	if led, ok := game.CurrentTrick.Led(); ok {
		if idx := lowestOfSuit(hand, led); idx >= 0 {
			return PlayMove{CardIndex: idx, Card: hand[idx]}, nil
		}
		idx := lowestCard(hand)
		return PlayMove{CardIndex: idx, Card: hand[idx]}, nil
	}

	lead := longestSuit(hand)
	if idx := lowestOfSuit(hand, lead); idx >= 0 {
		return PlayMove{CardIndex: idx, Card: hand[idx]}, nil
	}
	idx := lowestCard(hand)
	return PlayMove{CardIndex: idx, Card: hand[idx]}, nil
}

func lowestOfSuit(hand []domain.Card, suit domain.Suit) int {
	best := -1
	for i, c := range hand {
		if c.Suit != suit {
			continue
		}
		if best < 0 || c.Rank < hand[best].Rank {
			best = i
		}
	}
	return best
}

func lowestCard(hand []domain.Card) int {
	best := 0
	for i, c := range hand {
		if c.Rank < hand[best].Rank {
			best = i
		}
	}
	return best
}

package domain

// AuctionEntry records one accepted call and the seat that made it.
type AuctionEntry struct {
	Seat Seat
	Call Call
}

// AuctionResult is the auction's state after an accepted call.
type AuctionResult int

const (
	// AuctionOpen means the auction continues.
	AuctionOpen AuctionResult = iota
	// AuctionClosed means three passes followed a contract bid; the
	// highest bid stands as the contract.
	AuctionClosed
	// AuctionPassedOut means all four seats passed with no bid made.
	AuctionPassedOut
)

// Auction is the bidding state machine for one deal. The first caller is
// the seat to the dealer's left. Accepted contract bids are strictly
// increasing; the zero Call in HighBid (IsBid() == false) means no bid has
// been made yet.
type Auction struct {
	Dealer  Seat
	Turn    Seat
	Entries []AuctionEntry

	HighBid Call
	// Bidder is the seat that made HighBid. Double/redouble legality is
	// decided against this seat's partnership rather than by searching
	// the history for the bid value.
	Bidder    Seat
	Doubling  Doubling
	PassCount int
}

// NewAuction opens bidding for the given dealer.
func NewAuction(dealer Seat) *Auction {
	return &Auction{Dealer: dealer, Turn: dealer.Next()}
}

// Apply validates and applies one call for the given seat. On error the
// auction is unchanged: nothing is recorded and the turn does not advance.
func (a *Auction) Apply(seat Seat, call Call) (AuctionResult, error) {
	if seat != a.Turn {
		return AuctionOpen, ErrNotYourTurn
	}

	switch call.Type {
	case CallPass:
		a.PassCount++

	case CallBid:
		if call.Level < 1 || call.Level > 7 {
			return AuctionOpen, ErrInvalidBid
		}
		if a.HighBid.IsBid() && !call.Beats(a.HighBid) {
			return AuctionOpen, ErrInvalidBid
		}
		a.HighBid = call
		a.Bidder = seat
		a.Doubling = Undoubled
		a.PassCount = 0

	case CallDouble:
		if a.Doubling != Undoubled || !a.HighBid.IsBid() || seat.Side() == a.Bidder.Side() {
			return AuctionOpen, ErrInvalidDouble
		}
		a.Doubling = Doubled
		a.PassCount = 0

	case CallRedouble:
		if a.Doubling != Doubled || seat.Side() != a.Bidder.Side() {
			return AuctionOpen, ErrInvalidRedouble
		}
		a.Doubling = Redoubled
		a.PassCount = 0
	}

	a.Entries = append(a.Entries, AuctionEntry{Seat: seat, Call: call})
	a.Turn = a.Turn.Next()

	if a.PassCount == 3 && a.HighBid.IsBid() {
		return AuctionClosed, nil
	}
	if a.PassCount == 4 {
		return AuctionPassedOut, nil
	}
	return AuctionOpen, nil
}

// History returns the wire form of every accepted call, in order.
func (a *Auction) History() []string {
	out := make([]string, 0, len(a.Entries))
	for _, e := range a.Entries {
		out = append(out, e.Call.String())
	}
	return out
}

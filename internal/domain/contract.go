package domain

// Contract is the final accepted contract bid plus its doubling state.
type Contract struct {
	Bid      Call
	Doubling Doubling
}

// String renders the contract the way clients display it, e.g. "1NT" or
// "4S doubled".
func (c Contract) String() string {
	if c.Doubling == Undoubled {
		return c.Bid.String()
	}
	return c.Bid.String() + " " + c.Doubling.String()
}

// Roles are the player roles derived from a closed auction.
type Roles struct {
	Declarer Seat
	Dummy    Seat
	Leader   Seat
	Trump    Strain
}

// ResolveContract derives the contract and the declarer, dummy, opening
// leader, and trump strain from a closed auction. Declarership goes to
// whichever member of the winning partnership first named the contract
// strain, not necessarily the seat that made the final bid. The derivation
// is pure: the same auction always yields the same tuple.
func ResolveContract(a *Auction) (Contract, Roles) {
	contract := Contract{Bid: a.HighBid, Doubling: a.Doubling}

	declarer := a.Bidder
	winningSide := a.Bidder.Side()
	for _, e := range a.Entries {
		if e.Call.IsBid() && e.Call.Strain == a.HighBid.Strain && e.Seat.Side() == winningSide {
			declarer = e.Seat
			break
		}
	}

	roles := Roles{
		Declarer: declarer,
		Dummy:    declarer.Partner(),
		Leader:   declarer.Next(),
		Trump:    a.HighBid.Strain,
	}
	return contract, roles
}

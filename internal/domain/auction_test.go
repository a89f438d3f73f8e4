package domain

import (
	"errors"
	"testing"
)

// apply drives a sequence of calls through the auction in turn order,
// failing the test on any rejection.
func apply(t *testing.T, a *Auction, calls ...Call) AuctionResult {
	t.Helper()
	result := AuctionOpen
	for _, c := range calls {
		var err error
		result, err = a.Apply(a.Turn, c)
		if err != nil {
			t.Fatalf("Apply(%v, %v): %v", a.Turn, c, err)
		}
	}
	return result
}

func TestAuctionOutOfTurn(t *testing.T) {
	a := NewAuction(1) // seat 2 calls first
	if _, err := a.Apply(0, Pass()); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("err = %v, want ErrNotYourTurn", err)
	}
	if len(a.Entries) != 0 || a.Turn != 2 {
		t.Fatal("rejected call mutated auction state")
	}
}

func TestAuctionMonotonicity(t *testing.T) {
	a := NewAuction(0)
	apply(t, a, Bid(1, StrainHearts), Bid(1, StrainSpades), Bid(2, StrainClubs))

	tests := []struct {
		name string
		call Call
	}{
		{"equal bid", Bid(2, StrainClubs)},
		{"lower level", Bid(1, StrainNoTrump)},
		{"lower strain same level", Bid(2, StrainClubs)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := len(a.Entries)
			if _, err := a.Apply(a.Turn, tt.call); !errors.Is(err, ErrInvalidBid) {
				t.Fatalf("err = %v, want ErrInvalidBid", err)
			}
			if len(a.Entries) != entries {
				t.Fatal("rejected bid was recorded")
			}
		})
	}

	// A strictly higher bid is still accepted afterwards.
	apply(t, a, Bid(2, StrainDiamonds))
	if a.HighBid != Bid(2, StrainDiamonds) {
		t.Fatalf("high bid = %v", a.HighBid)
	}
}

func TestAuctionBidLevelBounds(t *testing.T) {
	a := NewAuction(0)
	if _, err := a.Apply(a.Turn, Bid(8, StrainClubs)); !errors.Is(err, ErrInvalidBid) {
		t.Fatalf("err = %v, want ErrInvalidBid", err)
	}
}

func TestDoubleLegality(t *testing.T) {
	t.Run("no bid yet", func(t *testing.T) {
		a := NewAuction(0)
		if _, err := a.Apply(a.Turn, Double()); !errors.Is(err, ErrInvalidDouble) {
			t.Fatalf("err = %v, want ErrInvalidDouble", err)
		}
	})

	t.Run("own side cannot double", func(t *testing.T) {
		a := NewAuction(0)
		apply(t, a, Bid(1, StrainHearts), Pass()) // seat 1 bids, seat 2 passes
		// Seat 3 is seat 1's partner.
		if _, err := a.Apply(a.Turn, Double()); !errors.Is(err, ErrInvalidDouble) {
			t.Fatalf("err = %v, want ErrInvalidDouble", err)
		}
	})

	t.Run("opponent doubles", func(t *testing.T) {
		a := NewAuction(0)
		apply(t, a, Bid(1, StrainHearts)) // seat 1
		result := apply(t, a, Double())   // seat 2, opposing side
		if result != AuctionOpen || a.Doubling != Doubled {
			t.Fatalf("doubling = %v after double", a.Doubling)
		}
	})

	t.Run("already doubled", func(t *testing.T) {
		a := NewAuction(0)
		apply(t, a, Bid(1, StrainHearts), Double(), Pass())
		if _, err := a.Apply(a.Turn, Double()); !errors.Is(err, ErrInvalidDouble) {
			t.Fatalf("err = %v, want ErrInvalidDouble", err)
		}
	})

	t.Run("balancing seat may double", func(t *testing.T) {
		a := NewAuction(0)
		apply(t, a, Bid(1, StrainHearts), Pass(), Pass())
		// Seat 0 is the bidder's other opponent.
		result := apply(t, a, Double())
		if result != AuctionOpen || a.Doubling != Doubled {
			t.Fatalf("doubling = %v after balancing double", a.Doubling)
		}
		if a.PassCount != 0 {
			t.Fatalf("pass count = %d, want 0 after double", a.PassCount)
		}
	})
}

func TestRedoubleLegality(t *testing.T) {
	t.Run("not doubled", func(t *testing.T) {
		a := NewAuction(0)
		apply(t, a, Bid(1, StrainHearts), Pass())
		if _, err := a.Apply(a.Turn, Redouble()); !errors.Is(err, ErrInvalidRedouble) {
			t.Fatalf("err = %v, want ErrInvalidRedouble", err)
		}
	})

	t.Run("doubling side cannot redouble", func(t *testing.T) {
		a := NewAuction(0)
		apply(t, a, Bid(1, StrainHearts), Double(), Pass())
		// Seat 0 is on the doubling side.
		if _, err := a.Apply(a.Turn, Redouble()); !errors.Is(err, ErrInvalidRedouble) {
			t.Fatalf("err = %v, want ErrInvalidRedouble", err)
		}
	})

	t.Run("contract side redoubles", func(t *testing.T) {
		a := NewAuction(0)
		apply(t, a, Bid(1, StrainHearts), Double(), Pass(), Pass())
		// Back to seat 1, the bidder.
		apply(t, a, Redouble())
		if a.Doubling != Redoubled {
			t.Fatalf("doubling = %v, want redoubled", a.Doubling)
		}
	})
}

func TestNewBidResetsDoubling(t *testing.T) {
	a := NewAuction(0)
	apply(t, a, Bid(1, StrainHearts), Double(), Bid(2, StrainClubs))
	if a.Doubling != Undoubled {
		t.Fatalf("doubling = %v, want undoubled after new bid", a.Doubling)
	}
}

func TestAuctionCloses(t *testing.T) {
	a := NewAuction(1)
	result := apply(t, a, Bid(1, StrainNoTrump), Pass(), Pass(), Pass())
	if result != AuctionClosed {
		t.Fatalf("result = %v, want AuctionClosed", result)
	}
	if a.HighBid != Bid(1, StrainNoTrump) || a.Bidder != 2 {
		t.Fatalf("high bid %v by seat %d", a.HighBid, a.Bidder)
	}
}

func TestAuctionPassedOut(t *testing.T) {
	a := NewAuction(0)
	result := apply(t, a, Pass(), Pass(), Pass())
	if result != AuctionOpen {
		t.Fatalf("result after three passes with no bid = %v, want AuctionOpen", result)
	}
	result = apply(t, a, Pass())
	if result != AuctionPassedOut {
		t.Fatalf("result = %v, want AuctionPassedOut", result)
	}
}

func TestThreePassesBeforeBidDoNotClose(t *testing.T) {
	a := NewAuction(0)
	result := apply(t, a, Pass(), Pass(), Pass(), Bid(1, StrainClubs), Pass(), Pass(), Pass())
	if result != AuctionClosed {
		t.Fatalf("result = %v, want AuctionClosed", result)
	}
	if a.HighBid != Bid(1, StrainClubs) {
		t.Fatalf("high bid = %v", a.HighBid)
	}
}

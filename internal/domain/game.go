package domain

// Phase is the lifecycle stage of a game session.
type Phase string

const (
	// PhaseWaiting is the pre-deal state where players join.
	PhaseWaiting Phase = "waiting"
	// PhaseBidding is the competitive auction.
	PhaseBidding Phase = "bidding"
	// PhasePlaying is the trick-taking phase.
	PhasePlaying Phase = "playing"
	// PhaseFinished is the state after all thirteen tricks.
	PhaseFinished Phase = "finished"
)

// Game is the aggregate root for one bridge session. It owns all nested
// state; callers mutate it only through SubmitBid and PlayCard, which
// either fully apply or fail leaving the game untouched.
type Game struct {
	Phase   Phase
	Players []string // seat order; index 0 is the creator
	Hands   [NumSeats][]Card
	Dealer  Seat

	Auction  *Auction
	Contract *Contract
	Roles    Roles // meaningful only once Contract is set

	Turn         Seat
	CurrentTrick Trick
	TricksWon    [2]int // indexed by Side
	Scores       [2]int // tracked but never computed; final scoring is out of scope
}

// NewGame creates a waiting session with the creator seated at 0.
func NewGame(creator string, dealer Seat) *Game {
	return &Game{
		Phase:   PhaseWaiting,
		Players: []string{creator},
		Dealer:  dealer,
	}
}

// Creator returns the name of the player who created the session.
func (g *Game) Creator() string {
	return g.Players[0]
}

// Full reports whether all four seats are taken.
func (g *Game) Full() bool {
	return len(g.Players) >= NumSeats
}

// SeatOf returns the seat of the named player.
func (g *Game) SeatOf(name string) (Seat, bool) {
	for i, p := range g.Players {
		if p == name {
			return Seat(i), true
		}
	}
	return 0, false
}

// StartBidding installs the dealt hands and opens the auction with the
// seat to the dealer's left.
func (g *Game) StartBidding(hands [NumSeats][]Card) {
	g.Hands = hands
	g.Phase = PhaseBidding
	g.Auction = NewAuction(g.Dealer)
	g.Turn = g.Auction.Turn
}

// SubmitBid applies one auction call. Three passes after a bid close the
// auction: the contract and roles are fixed and play begins with the
// opening leader. Four passes with no bid re-open the auction under the
// next dealer; the dealt hands are kept.
func (g *Game) SubmitBid(seat Seat, call Call) error {
	if g.Phase != PhaseBidding {
		return ErrInvalidPhase
	}

	result, err := g.Auction.Apply(seat, call)
	if err != nil {
		return err
	}

	switch result {
	case AuctionClosed:
		contract, roles := ResolveContract(g.Auction)
		g.Contract = &contract
		g.Roles = roles
		g.Phase = PhasePlaying
		g.Turn = roles.Leader
		g.CurrentTrick = Trick{}
	case AuctionPassedOut:
		g.Dealer = g.Dealer.Next()
		g.Auction = NewAuction(g.Dealer)
		g.Contract = nil
		g.Turn = g.Auction.Turn
	default:
		g.Turn = g.Auction.Turn
	}
	return nil
}

// PlayCard applies one card play by the acting seat. When it is the
// dummy's turn the declarer acts and the card comes from the dummy's hand;
// every other turn the actor must be the seat to play. The card must sit
// at cardIndex in the hand of the seat to play.
func (g *Game) PlayCard(actor Seat, cardIndex int, card Card) error {
	if g.Phase != PhasePlaying {
		return ErrInvalidPhase
	}

	seatToPlay := g.Turn
	if actor != seatToPlay {
		if !(seatToPlay == g.Roles.Dummy && actor == g.Roles.Declarer) {
			return ErrNotYourTurn
		}
	}

	hand := g.Hands[seatToPlay]
	if cardIndex < 0 || cardIndex >= len(hand) || hand[cardIndex] != card {
		return ErrInvalidCardPlay
	}

	g.Hands[seatToPlay] = append(hand[:cardIndex:cardIndex], hand[cardIndex+1:]...)
	g.CurrentTrick.Add(seatToPlay, card)

	if g.CurrentTrick.Complete() {
		winner := g.CurrentTrick.Winner(g.Roles.Trump)
		g.TricksWon[winner.Side()]++
		g.CurrentTrick = Trick{}
		g.Turn = winner
		if g.handsEmpty() {
			g.Phase = PhaseFinished
		}
	} else {
		g.Turn = g.Turn.Next()
	}
	return nil
}

func (g *Game) handsEmpty() bool {
	for _, hand := range g.Hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

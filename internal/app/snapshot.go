package app

import "bridge/internal/domain"

// TrickPlayWire is one play of the current trick in wire form.
type TrickPlayWire struct {
	Card   string `json:"card"`
	Player int    `json:"player"`
}

// SideTally holds a per-partnership counter keyed the way clients key it.
type SideTally struct {
	NS int `json:"NS"`
	EW int `json:"EW"`
}

// Snapshot is the full session view handed to the transport collaborator
// after every committed mutation. It is the contract the broadcast and
// presentation layers are built against and must not be narrowed.
type Snapshot struct {
	ID                 string          `json:"id"`
	Players            []string        `json:"players"`
	PlayerHands        [][]string      `json:"playerHands"`
	GamePhase          string          `json:"gamePhase"`
	CurrentPlayerIndex int             `json:"currentPlayerIndex"`
	CurrentBid         *string         `json:"currentBid"`
	Contract           *string         `json:"contract"`
	TrumpSuit          *string         `json:"trumpSuit"`
	CurrentTrick       []TrickPlayWire `json:"currentTrick"`
	PassCount          int             `json:"passCount"`
	BidHistory         []string        `json:"bidHistory"`
	Declarer           *int            `json:"declarer"`
	Dummy              *int            `json:"dummy"`
	Leader             *int            `json:"leader"`
	Scores             SideTally       `json:"scores"`
	TricksWon          SideTally       `json:"tricksWon"`
	Dealer             int             `json:"dealer"`
	DoubleStatus       string          `json:"doubleStatus"`
}

// NewSnapshot builds the wire snapshot for a session.
func NewSnapshot(id string, g *domain.Game) Snapshot {
	snap := Snapshot{
		ID:                 id,
		Players:            append([]string{}, g.Players...),
		PlayerHands:        make([][]string, domain.NumSeats),
		GamePhase:          string(g.Phase),
		CurrentPlayerIndex: int(g.Turn),
		CurrentTrick:       []TrickPlayWire{},
		BidHistory:         []string{},
		Scores:             SideTally{NS: g.Scores[domain.SideNS], EW: g.Scores[domain.SideEW]},
		TricksWon:          SideTally{NS: g.TricksWon[domain.SideNS], EW: g.TricksWon[domain.SideEW]},
		Dealer:             int(g.Dealer),
		DoubleStatus:       domain.Undoubled.String(),
	}

	for seat, hand := range g.Hands {
		cards := make([]string, 0, len(hand))
		for _, c := range hand {
			cards = append(cards, c.String())
		}
		snap.PlayerHands[seat] = cards
	}

	for _, p := range g.CurrentTrick.Plays {
		snap.CurrentTrick = append(snap.CurrentTrick, TrickPlayWire{
			Card:   p.Card.String(),
			Player: int(p.Seat),
		})
	}

	if a := g.Auction; a != nil {
		snap.PassCount = a.PassCount
		snap.BidHistory = a.History()
		snap.DoubleStatus = a.Doubling.String()
		if a.HighBid.IsBid() {
			bid := a.HighBid.String()
			snap.CurrentBid = &bid
		}
	}

	if c := g.Contract; c != nil {
		contract := c.String()
		snap.Contract = &contract
		snap.DoubleStatus = c.Doubling.String()
		// The closing passes are auction history, not live state.
		snap.PassCount = 0

		declarer := int(g.Roles.Declarer)
		dummy := int(g.Roles.Dummy)
		leader := int(g.Roles.Leader)
		snap.Declarer = &declarer
		snap.Dummy = &dummy
		snap.Leader = &leader

		// trumpSuit stays null for a no-trump contract.
		if suit, ok := g.Roles.Trump.Suit(); ok {
			trump := suit.String()
			snap.TrumpSuit = &trump
		}
	}

	return snap
}

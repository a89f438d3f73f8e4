package bot

import (
	"testing"

	"bridge/internal/domain"
)

func card(t *testing.T, s string) domain.Card {
	t.Helper()
	c, err := domain.ParseCard(s)
	if err != nil {
		t.Fatalf("ParseCard(%q): %v", s, err)
	}
	return c
}

func hand(t *testing.T, names ...string) []domain.Card {
	t.Helper()
	h := make([]domain.Card, 0, len(names))
	for _, n := range names {
		h = append(h, card(t, n))
	}
	return h
}

// biddingGame builds a four-player game in the bidding phase with the
// given hand at the given seat. The other hands stay empty; the
// strategy never looks at them.
func biddingGame(t *testing.T, seat domain.Seat, h []domain.Card) *domain.Game {
	t.Helper()
	g := domain.NewGame("alice", 0)
	g.Players = append(g.Players, "bob", "carol", "dave")
	var hands [domain.NumSeats][]domain.Card
	hands[seat] = h
	g.StartBidding(hands)
	return g
}

func TestHighCardPoints(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want int
	}{
		{"honours", hand(t, "ace_of_spades", "king_of_hearts", "queen_of_clubs", "jack_of_diamonds"), 10},
		{"spot cards", hand(t, "2_of_clubs", "9_of_hearts", "10_of_spades"), 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighCardPoints(tt.hand); got != tt.want {
				t.Errorf("HighCardPoints() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOpensLongestSuitWithStrength(t *testing.T) {
	// 13 HCP, five hearts.
	h := hand(t,
		"ace_of_hearts", "king_of_hearts", "queen_of_hearts", "5_of_hearts", "3_of_hearts",
		"ace_of_spades", "7_of_spades", "4_of_spades",
		"king_of_diamonds", "6_of_diamonds",
		"8_of_clubs", "5_of_clubs", "2_of_clubs")
	g := biddingGame(t, 1, h)

	a := NewAgent("bot_ely")
	move, err := a.Bid(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := domain.Bid(1, domain.StrainHearts)
	if move.Call != want {
		t.Fatalf("bid = %v, want %v", move.Call, want)
	}
}

func TestPassesWithoutOpeningStrength(t *testing.T) {
	h := hand(t,
		"queen_of_hearts", "jack_of_hearts", "9_of_hearts",
		"10_of_spades", "7_of_spades", "4_of_spades",
		"king_of_diamonds", "6_of_diamonds", "3_of_diamonds",
		"8_of_clubs", "5_of_clubs", "4_of_clubs", "2_of_clubs")
	g := biddingGame(t, 1, h)

	move, err := NewAgent("bot_ely").Bid(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if move.Call != domain.Pass() {
		t.Fatalf("bid = %v, want Pass", move.Call)
	}
}

func TestRaisesCheaplyOverAnOpening(t *testing.T) {
	// Strong hand, long spades, over an opposing 1H.
	h := hand(t,
		"ace_of_spades", "king_of_spades", "queen_of_spades", "jack_of_spades", "5_of_spades",
		"ace_of_diamonds", "7_of_diamonds", "4_of_diamonds",
		"king_of_clubs", "6_of_clubs", "3_of_clubs",
		"8_of_hearts", "2_of_hearts")
	g := biddingGame(t, 2, h)
	if err := g.SubmitBid(1, domain.Bid(1, domain.StrainHearts)); err != nil {
		t.Fatal(err)
	}

	move, err := NewAgent("bot_ely").Bid(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	// Spades outrank hearts, so the same level suffices.
	want := domain.Bid(1, domain.StrainSpades)
	if move.Call != want {
		t.Fatalf("bid = %v, want %v", move.Call, want)
	}
}

func TestPassesWhenRaiseWouldBeTooHigh(t *testing.T) {
	h := hand(t,
		"ace_of_clubs", "king_of_clubs", "queen_of_clubs", "jack_of_clubs", "5_of_clubs",
		"ace_of_diamonds", "king_of_diamonds", "4_of_diamonds",
		"7_of_hearts", "6_of_hearts", "3_of_hearts",
		"8_of_spades", "2_of_spades")
	g := biddingGame(t, 2, h)
	if err := g.SubmitBid(1, domain.Bid(2, domain.StrainSpades)); err != nil {
		t.Fatal(err)
	}

	// Clubs over 2S would need level 3, past the cheap-raise ceiling.
	move, err := NewAgent("bot_ely").Bid(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if move.Call != domain.Pass() {
		t.Fatalf("bid = %v, want Pass", move.Call)
	}
}

func TestFollowsLedSuitLow(t *testing.T) {
	g := biddingGame(t, 2, hand(t,
		"ace_of_hearts", "4_of_hearts", "9_of_hearts",
		"king_of_spades", "2_of_clubs"))
	g.CurrentTrick.Add(1, card(t, "queen_of_hearts"))

	move, err := NewAgent("bot_ely").Play(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := card(t, "4_of_hearts"); move.Card != want {
		t.Fatalf("play = %v, want %v", move.Card, want)
	}
	if g.Hands[2][move.CardIndex] != move.Card {
		t.Fatal("CardIndex does not point at the chosen card")
	}
}

func TestDiscardsLowWhenVoid(t *testing.T) {
	g := biddingGame(t, 2, hand(t, "king_of_spades", "9_of_diamonds", "2_of_clubs"))
	g.CurrentTrick.Add(1, card(t, "queen_of_hearts"))

	move, err := NewAgent("bot_ely").Play(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := card(t, "2_of_clubs"); move.Card != want {
		t.Fatalf("play = %v, want %v", move.Card, want)
	}
}

func TestLeadsFromLongestSuit(t *testing.T) {
	g := biddingGame(t, 2, hand(t,
		"king_of_spades",
		"9_of_diamonds", "5_of_diamonds", "7_of_diamonds",
		"2_of_clubs"))

	move, err := NewAgent("bot_ely").Play(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := card(t, "5_of_diamonds"); move.Card != want {
		t.Fatalf("lead = %v, want %v", move.Card, want)
	}
}

func TestIsBot(t *testing.T) {
	if !IsBot("bot_ely") {
		t.Error("IsBot(bot_ely) = false")
	}
	if IsBot("alice") {
		t.Error("IsBot(alice) = true")
	}
}

func TestPickNameSkipsTaken(t *testing.T) {
	got := PickName([]string{"bot_ely", "bot_harold"})
	if got == "bot_ely" || got == "bot_harold" {
		t.Fatalf("PickName returned a taken name: %s", got)
	}
	if !IsBot(got) {
		t.Fatalf("PickName returned a non-bot name: %s", got)
	}
}

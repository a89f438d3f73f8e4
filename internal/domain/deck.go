package domain

import "math/rand"

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// NewDeck returns the ordered 52-card deck, suit-major.
func NewDeck() []Card {
	deck := make([]Card, 0, NumSeats*HandSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle permutes the deck in place with an unbiased Fisher-Yates pass.
func Shuffle(rng *rand.Rand, deck []Card) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Deal splits a 52-card deck into four 13-card hands in seat order:
// seat 0 takes cards 0-12, seat 1 takes 13-25, and so on.
func Deal(deck []Card) [NumSeats][]Card {
	var hands [NumSeats][]Card
	for seat := 0; seat < NumSeats; seat++ {
		hands[seat] = append([]Card{}, deck[seat*HandSize:(seat+1)*HandSize]...)
	}
	return hands
}

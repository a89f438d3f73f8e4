package domain

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits, ordered clubs < diamonds < hearts < spades.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Rank is a card rank from Two (2) up to Ace (14).
type Rank int8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "unknown"
	}
}

// Card identifies one of the 52 unique playing cards.
type Card struct {
	Rank Rank
	Suit Suit
}

// String renders the card in the wire format "rank_of_suit", e.g. "ace_of_spades".
func (c Card) String() string {
	return c.Rank.String() + "_of_" + c.Suit.String()
}

// ParseCard parses the "rank_of_suit" wire format back into a Card.
func ParseCard(s string) (Card, error) {
	rankName, suitName, ok := strings.Cut(s, "_of_")
	if !ok {
		return Card{}, fmt.Errorf("malformed card %q", s)
	}

	var rank Rank
	switch rankName {
	case "jack":
		rank = Jack
	case "queen":
		rank = Queen
	case "king":
		rank = King
	case "ace":
		rank = Ace
	default:
		var n int
		if _, err := fmt.Sscanf(rankName, "%d", &n); err != nil || n < 2 || n > 10 {
			return Card{}, fmt.Errorf("unknown rank %q", rankName)
		}
		rank = Rank(n)
	}

	var suit Suit
	switch suitName {
	case "clubs":
		suit = Clubs
	case "diamonds":
		suit = Diamonds
	case "hearts":
		suit = Hearts
	case "spades":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("unknown suit %q", suitName)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

package domain

import (
	"fmt"
	"strings"
)

// Strain is what a contract bid names: a trump suit or no-trump.
// Strains rank clubs < diamonds < hearts < spades < no-trump.
type Strain int8

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	StrainNoTrump
)

func (s Strain) String() string {
	switch s {
	case StrainClubs:
		return "C"
	case StrainDiamonds:
		return "D"
	case StrainHearts:
		return "H"
	case StrainSpades:
		return "S"
	case StrainNoTrump:
		return "NT"
	default:
		return "?"
	}
}

// Suit returns the trump suit the strain names, or false for no-trump.
func (s Strain) Suit() (Suit, bool) {
	switch s {
	case StrainClubs:
		return Clubs, true
	case StrainDiamonds:
		return Diamonds, true
	case StrainHearts:
		return Hearts, true
	case StrainSpades:
		return Spades, true
	default:
		return 0, false
	}
}

// Trumps reports whether a card of the given suit is a trump under this strain.
func (s Strain) Trumps(suit Suit) bool {
	t, ok := s.Suit()
	return ok && t == suit
}

// SuitStrain maps a card suit to its strain.
func SuitStrain(s Suit) Strain {
	switch s {
	case Clubs:
		return StrainClubs
	case Diamonds:
		return StrainDiamonds
	case Hearts:
		return StrainHearts
	default:
		return StrainSpades
	}
}

// CallType tags the variants of an auction call.
type CallType int8

const (
	CallPass CallType = iota
	CallDouble
	CallRedouble
	CallBid
)

// Call is a single auction action: pass, double, redouble, or a contract
// bid of Level (1-7) in Strain. Level and Strain are meaningful only when
// Type is CallBid.
type Call struct {
	Type   CallType
	Level  int
	Strain Strain
}

// Pass returns the pass call.
func Pass() Call { return Call{Type: CallPass} }

// Double returns the double call.
func Double() Call { return Call{Type: CallDouble} }

// Redouble returns the redouble call.
func Redouble() Call { return Call{Type: CallRedouble} }

// Bid returns a contract bid call.
func Bid(level int, strain Strain) Call {
	return Call{Type: CallBid, Level: level, Strain: strain}
}

// IsBid reports whether the call is a contract bid.
func (c Call) IsBid() bool { return c.Type == CallBid }

// Beats reports whether the bid ranks strictly higher than other,
// comparing level first and then strain. Both calls must be bids.
func (c Call) Beats(other Call) bool {
	if c.Level != other.Level {
		return c.Level > other.Level
	}
	return c.Strain > other.Strain
}

func (c Call) String() string {
	switch c.Type {
	case CallPass:
		return "Pass"
	case CallDouble:
		return "Double"
	case CallRedouble:
		return "Redouble"
	default:
		return fmt.Sprintf("%d%s", c.Level, c.Strain)
	}
}

// ParseCall parses the wire form of a call: "Pass", "Double", "Redouble",
// or level+strain such as "1NT" or "3H".
func ParseCall(s string) (Call, error) {
	switch s {
	case "Pass":
		return Pass(), nil
	case "Double":
		return Double(), nil
	case "Redouble":
		return Redouble(), nil
	}

	if len(s) < 2 {
		return Call{}, fmt.Errorf("malformed call %q", s)
	}
	level := int(s[0] - '0')
	if level < 1 || level > 7 {
		return Call{}, fmt.Errorf("bid level out of range in %q", s)
	}

	var strain Strain
	switch strings.ToUpper(s[1:]) {
	case "C":
		strain = StrainClubs
	case "D":
		strain = StrainDiamonds
	case "H":
		strain = StrainHearts
	case "S":
		strain = StrainSpades
	case "NT":
		strain = StrainNoTrump
	default:
		return Call{}, fmt.Errorf("unknown strain in %q", s)
	}

	return Bid(level, strain), nil
}

// Doubling is the doubling state of the current contract.
type Doubling int8

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

func (d Doubling) String() string {
	switch d {
	case Doubled:
		return "doubled"
	case Redoubled:
		return "redoubled"
	default:
		return "undoubled"
	}
}

package domain

// NumSeats is the number of seats around a bridge table.
const NumSeats = 4

// Seat is a 0-based table position in clockwise rotation order.
// Seat (i+1)%4 is seat i's left-hand opponent.
type Seat int

// Next returns the seat to the left (clockwise).
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat directly across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// Side returns the partnership the seat belongs to.
func (s Seat) Side() Side {
	return Side(s % 2)
}

// Side is one of the two partnerships: even seats (NS) vs odd seats (EW).
type Side int

const (
	SideNS Side = iota
	SideEW
)

func (s Side) String() string {
	if s == SideNS {
		return "NS"
	}
	return "EW"
}

// Opponents returns the opposing partnership.
func (s Side) Opponents() Side {
	return 1 - s
}

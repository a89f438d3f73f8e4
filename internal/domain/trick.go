package domain

// TrickPlay is one card played into the current trick by a seat.
type TrickPlay struct {
	Seat Seat
	Card Card
}

// Trick accumulates up to four plays, one per seat, for one round.
type Trick struct {
	Plays []TrickPlay
}

// Add appends a play to the trick.
func (t *Trick) Add(seat Seat, card Card) {
	t.Plays = append(t.Plays, TrickPlay{Seat: seat, Card: card})
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == NumSeats
}

// Led returns the suit of the trick's first card.
func (t *Trick) Led() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// Winner returns the seat that won the trick under the given trump strain:
// the highest trump if any trump was played, otherwise the highest card of
// the led suit. A trump always beats a non-trump regardless of rank or
// play order.
func (t *Trick) Winner(trump Strain) Seat {
	win := t.Plays[0]
	led := win.Card.Suit
	for _, p := range t.Plays[1:] {
		if supersedes(p.Card, win.Card, led, trump) {
			win = p
		}
	}
	return win.Seat
}

// supersedes reports whether card c beats the current winning card w given
// the led suit and trump strain.
func supersedes(c, w Card, led Suit, trump Strain) bool {
	cTrump := trump.Trumps(c.Suit)
	wTrump := trump.Trumps(w.Suit)
	switch {
	case cTrump && !wTrump:
		return true
	case !cTrump && wTrump:
		return false
	case cTrump && wTrump:
		return c.Rank > w.Rank
	default:
		return c.Suit == led && c.Rank > w.Rank
	}
}

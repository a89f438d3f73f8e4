package bot

import (
	"strings"

	"bridge/internal/domain"
)

// NamePrefix marks bot usernames so the match handler can tell them apart
// from humans.
const NamePrefix = "bot_"

var names = []string{
	"bot_ely",
	"bot_harold",
	"bot_rixi",
	"bot_zia",
	"bot_benito",
	"bot_helen",
}

// IsBot reports whether the given username belongs to a bot.
func IsBot(name string) bool {
	return strings.HasPrefix(name, NamePrefix)
}

// PickName returns a bot name not already present in taken.
func PickName(taken []string) string {
	for _, n := range names {
		used := false
		for _, t := range taken {
			if t == n {
				used = true
				break
			}
		}
		if !used {
			return n
		}
	}
	return names[0]
}

// Agent is an autonomous seat-filler.
type Agent struct {
	Name     string
	Strategy Brain
}

// NewAgent builds an agent with the default strategy.
func NewAgent(name string) *Agent {
	return &Agent{Name: name, Strategy: &PointCount{}}
}

// Bid asks the agent for a call at the given seat.
func (a *Agent) Bid(game *domain.Game, seat domain.Seat) (BidMove, error) {
	return a.Strategy.CalculateBid(game, seat)
}

// Play asks the agent for a card at the given seat. During play the seat
// the agent acts for may be its partner's: a declarer agent plays the
// dummy hand too.
func (a *Agent) Play(game *domain.Game, seat domain.Seat) (PlayMove, error) {
	return a.Strategy.CalculatePlay(game, seat)
}

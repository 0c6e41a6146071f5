package matrixgame

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DominancePair records that Player's strategy Dominant weakly dominates
// its strategy Dominated.
type DominancePair struct {
	Player    Player
	Dominant  string
	Dominated string
}

func (dp DominancePair) String() string {
	return fmt.Sprintf("%v: %s > %s", dp.Player, dp.Dominant, dp.Dominated)
}

// EliminationObserver is notified after each step of iterated elimination
// with the label that was removed, the pair that caused the removal and
// the resulting game.
type EliminationObserver func(removed string, cause DominancePair, result *Game)

// WeaklyDominantPairs returns every ordered pair of player p's strategies
// (i, j) such that i weakly dominates j: i is at least as good as j against
// every opponent strategy, and strictly better against at least one.
// Pairs are ordered by the index of i, then j.
func (g *Game) WeaklyDominantPairs(p Player) []DominancePair {
	if !p.valid() {
		return nil
	}

	var result []DominancePair
	for i := range g.strategies[p] {
		for j := range g.strategies[p] {
			if i != j && g.weaklyDominates(p, i, j) {
				result = append(result, DominancePair{
					Player:    p,
					Dominant:  g.strategies[p][i],
					Dominated: g.strategies[p][j],
				})
			}
		}
	}

	return result
}

// AllWeaklyDominantPairs returns the weakly dominant pairs of Player0
// followed by those of Player1.
func (g *Game) AllWeaklyDominantPairs() []DominancePair {
	return append(g.WeaklyDominantPairs(Player0), g.WeaklyDominantPairs(Player1)...)
}

func (g *Game) weaklyDominates(p Player, i, j int) bool {
	strictlyBetter := false
	for o := range g.strategies[p.Opponent()] {
		ui := g.payoff(p, i, o)[p]
		uj := g.payoff(p, j, o)[p]
		if ui < uj {
			return false
		} else if ui > uj {
			strictlyBetter = true
		}
	}

	return strictlyBetter
}

// EliminateWeaklyDominatedStrategies iteratively removes weakly dominated
// strategies until none remain, and returns the reduced game.
//
// At each step the first pair of AllWeaklyDominantPairs is used, and its
// dominated label is removed from the strategies of BOTH players, not only
// from the player it is dominated for. Games whose players share labels
// may therefore lose strategies of the other player as well.
//
// observer may be nil.
func (g *Game) EliminateWeaklyDominatedStrategies(observer EliminationObserver) (*Game, error) {
	current := g
	for step := 1; ; step++ {
		pairs := current.AllWeaklyDominantPairs()
		if len(pairs) == 0 {
			return current, nil
		}

		cause := pairs[0]
		next, err := current.Subgame(
			without(current.strategies[Player0], cause.Dominated),
			without(current.strategies[Player1], cause.Dominated))
		if err != nil {
			return nil, errors.Wrapf(err, "removing %q due to %v", cause.Dominated, cause)
		}

		glog.V(1).Infof("Elimination step %d: removing %q due to %v", step, cause.Dominated, cause)
		if observer != nil {
			observer(cause.Dominated, cause, next)
		}

		current = next
	}
}

func without(labels []string, target string) []string {
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		if label != target {
			result = append(result, label)
		}
	}

	return result
}

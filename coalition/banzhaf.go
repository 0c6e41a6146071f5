package coalition

import (
	"math"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat/combin"
)

// BanzhafIndexes returns each player's Banzhaf index: its marginal
// contribution worth(S ∪ {p}) - worth(S) summed over all 2^(n-1)
// coalitions S of the other players, divided by 2^(n-1).
//
// Unlike Shapley values, the indexes need not sum to the worth of the
// grand coalition.
func BanzhafIndexes(players []string, worth Worth) (map[string]float64, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	n := len(players)
	result := make(map[string]float64, n)
	if n == 0 {
		return result, nil
	}

	norm := math.Ldexp(1, n-1)
	glog.V(2).Infof("Enumerating %v coalitions for each of %d players", norm, n)

	others := make([]string, 0, n-1)
	for i, player := range players {
		others = others[:0]
		others = append(others, players[:i]...)
		others = append(others, players[i+1:]...)

		total := 0.0
		for k := 0; k < n; k++ {
			comb := make([]int, k)
			coalition := make([]string, k, k+1)
			gen := combin.NewCombinationGenerator(n-1, k)
			for gen.Next() {
				gen.Combination(comb)
				for m, idx := range comb {
					coalition[m] = others[idx]
				}

				without, err := worth.Of(coalition)
				if err != nil {
					return nil, err
				}

				with, err := worth.Of(append(coalition, player))
				if err != nil {
					return nil, err
				}

				total += with - without
			}
		}

		result[player] = total / norm
	}

	return result, nil
}

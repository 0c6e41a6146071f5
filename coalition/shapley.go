package coalition

import (
	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat/combin"
)

// ShapleyValues returns each player's Shapley value: its marginal
// contribution worth(S ∪ {p}) - worth(S) averaged over all n! orders in
// which the players may join the grand coalition, where S is the set of
// players preceding p.
//
// The values sum to worth(grand coalition) - worth(∅).
//
// Enumeration is exhaustive and takes O(n! * n) time; callers must keep
// the number of players small.
func ShapleyValues(players []string, worth Worth) (map[string]float64, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	n := len(players)
	result := make(map[string]float64, n)
	for _, p := range players {
		result[p] = 0
	}
	if n == 0 {
		return result, nil
	}

	nPerms := combin.NumPermutations(n, n)
	glog.V(2).Infof("Enumerating %d join orders of %d players", nPerms, n)

	gen := combin.NewPermutationGenerator(n, n)
	perm := make([]int, n)
	coalition := make([]string, 0, n)
	for gen.Next() {
		gen.Permutation(perm)
		coalition = coalition[:0]
		before, err := worth.Of(coalition)
		if err != nil {
			return nil, err
		}

		for _, idx := range perm {
			player := players[idx]
			coalition = append(coalition, player)
			with, err := worth.Of(coalition)
			if err != nil {
				return nil, err
			}

			result[player] += with - before
			before = with
		}
	}

	for p := range result {
		result[p] /= float64(nPerms)
	}

	return result, nil
}

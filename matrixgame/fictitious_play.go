package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
)

// FictitiousPlay approximates a mixed equilibrium of the game by repeated
// play: in each of nIter rounds both players best respond to the empirical
// distribution of their opponent's past play. With probability mixingLambda
// a player instead explores a uniformly random strategy.
//
// The returned profile holds the empirical frequency of each strategy.
func FictitiousPlay(g *Game, nIter int, mixingLambda float64, rng *rand.Rand) MixedProfile {
	p0PlayCounts := make([]int, g.NumStrategies(Player0))
	p1PlayCounts := make([]int, g.NumStrategies(Player1))
	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = g.empiricalBestResponse(Player0, p1PlayCounts, rng)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = g.empiricalBestResponse(Player1, p0PlayCounts, rng)
		}
		p0PlayCounts[p0Selected] += 1
		p1PlayCounts[p1Selected] += 1

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(1).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return MixedProfile{normalize(p0PlayCounts), normalize(p1PlayCounts)}
}

// empiricalBestResponse returns player p's best response to the opponent
// having played each of its strategies the given number of times.
func (g *Game) empiricalBestResponse(p Player, opponentPlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(g.strategies[p]))
	for o, c := range opponentPlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * g.payoff(p, i, o)[p]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	if total == 0 {
		return result
	}

	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

// argMax returns the maximum value and its index, choosing randomly among ties.
func argMax(vs []float64, rng *rand.Rand) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	nTied := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
			nTied = 1
		} else if v == best {
			// Reservoir sampling keeps each tied index equally likely.
			nTied++
			if rng.Intn(nTied) == 0 {
				bestIdx = i
			}
		}
	}

	return best, bestIdx
}

// Solve the textbook 5x5 strategic-form game: iterated elimination of weakly
// dominated strategies, pure equilibria and fictitious play.
package main

import (
	"flag"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pterm/pterm"

	"github.com/timpalpant/gamesolver/matrixgame"
	"github.com/timpalpant/gamesolver/printer"
)

func main() {
	showSteps := flag.Bool("show_steps", true, "Print the game after each elimination step")
	fpIters := flag.Int("fictitious_play_iters", 10000, "Number of fictitious play iterations (0 to skip)")
	mixingLambda := flag.Float64("mixing_lambda", 0.0, "Exploration probability for fictitious play")
	seed := flag.Int64("seed", 123, "Random seed")
	flag.Parse()

	game, err := matrixgame.NewGame(
		[]string{"A", "B", "C", "D", "E"},
		[]string{"F", "G", "H", "I", "J"},
		[][]matrixgame.Payoff{
			{{5, 7}, {4, 1}, {4, 4}, {3, 7}, {3, 4}},
			{{4, 4}, {5, 3}, {5, 8}, {8, 1}, {3, 4}},
			{{1, 6}, {3, 3}, {3, 5}, {2, 6}, {1, 4}},
			{{4, 3}, {6, 1}, {8, 2}, {10, 3}, {2, 3}},
			{{5, 3}, {5, 1}, {4, 2}, {8, 3}, {3, 3}},
		})
	if err != nil {
		glog.Fatal(err)
	}

	mustPrint(game, "Game")

	reduced, err := game.EliminateWeaklyDominatedStrategies(
		func(removed string, cause matrixgame.DominancePair, result *matrixgame.Game) {
			glog.Infof("Removing %s due to %v", removed, cause)
			if *showSteps {
				mustPrint(result, "After removing "+removed)
			}
		})
	if err != nil {
		glog.Fatal(err)
	}

	mustPrint(reduced, "Reduced game")
	pterm.Info.Printfln("Pure Nash equilibria for reduced game: %v", reduced.PureNashEquilibria())
	pterm.Info.Printfln("Pure Nash equilibria for game: %v", game.PureNashEquilibria())

	if *fpIters > 0 {
		rng := rand.New(rand.NewSource(*seed))
		m := matrixgame.FictitiousPlay(game, *fpIters, *mixingLambda, rng)
		eu, err := game.ExpectedUtility(m)
		if err != nil {
			glog.Fatal(err)
		}

		isEq, err := game.IsMixedNashEquilibrium(m)
		if err != nil {
			glog.Fatal(err)
		}

		pterm.Info.Printfln("Fictitious play policies: %v / %v", m[matrixgame.Player0], m[matrixgame.Player1])
		pterm.Info.Printfln("Expected utility: %v (indifferent: %v)", eu, isEq)
	}
}

func mustPrint(g *matrixgame.Game, title string) {
	if err := printer.Print(g, title); err != nil {
		glog.Fatal(err)
	}
}

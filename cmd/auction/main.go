// Build the strategic-form game of a two-bidder Vickrey auction and analyze it.
package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/pterm/pterm"

	"github.com/timpalpant/gamesolver/auction"
	"github.com/timpalpant/gamesolver/internal/flagutil"
	"github.com/timpalpant/gamesolver/matrixgame"
	"github.com/timpalpant/gamesolver/printer"
)

func main() {
	valuations := flagutil.Float64List{2, 4}
	bids := flagutil.Float64List{0, 1, 2, 3, 4, 5}
	flag.Var(&valuations, "valuations", "Comma-separated valuation of each bidder")
	flag.Var(&bids, "bids", "Comma-separated grid of available bids")
	tieBreaker := flag.Int("tie_breaker", 0, "Bidder (0 or 1) who wins ties")
	flag.Parse()

	v, err := auction.NewVickrey(valuations, bids, matrixgame.Player(*tieBreaker))
	if err != nil {
		glog.Fatal(err)
	}

	if err := printer.Print(v.Game(), "Vickrey auction"); err != nil {
		glog.Fatal(err)
	}

	truthful := v.Valuations()
	outcome, err := v.Outcome(truthful)
	if err != nil {
		glog.Fatalf("Valuations %v are not on the bid grid: %v", truthful, err)
	}

	envyFree, err := v.IsEnvyFree(truthful)
	if err != nil {
		glog.Fatal(err)
	}

	pterm.Info.Printfln("Truthful bids %v: outcome %v, envy free: %v", truthful, outcome, envyFree)
	pterm.Info.Printfln("Pure Nash equilibria: %v", v.Game().PureNashEquilibria())

	reduced, err := v.Game().EliminateWeaklyDominatedStrategies(
		func(removed string, cause matrixgame.DominancePair, _ *matrixgame.Game) {
			glog.Infof("Removing bid %s due to %v", removed, cause)
		})
	if err != nil {
		glog.Fatal(err)
	}

	if err := printer.Print(reduced, "After eliminating weakly dominated bids"); err != nil {
		glog.Fatal(err)
	}
}

// Compute Shapley values and Banzhaf indexes of a cooperative game.
package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/pterm/pterm"

	"github.com/timpalpant/gamesolver/coalition"
	"github.com/timpalpant/gamesolver/internal/flagutil"
)

func main() {
	players := flagutil.StringList{"O", "R", "W"}
	worth := flagutil.WorthTable{Worth: coalition.Worth{
		coalition.Key():              0,
		coalition.Key("O"):           170,
		coalition.Key("R"):           150,
		coalition.Key("W"):           180,
		coalition.Key("O", "R"):      350,
		coalition.Key("O", "W"):      380,
		coalition.Key("R", "W"):      360,
		coalition.Key("O", "R", "W"): 560,
	}}
	flag.Var(&players, "players", "Comma-separated player names")
	flag.Var(&worth, "worth", "Semicolon-separated members:value entries, e.g. \":0;O:170;O,R:350\"")
	flag.Parse()

	glog.Infof("Computing values for %d players", len(players))
	shapley, err := coalition.ShapleyValues(players, worth.Worth)
	if err != nil {
		glog.Fatal(err)
	}

	banzhaf, err := coalition.BanzhafIndexes(players, worth.Worth)
	if err != nil {
		glog.Fatal(err)
	}

	data := pterm.TableData{{"Player", "Shapley value", "Banzhaf index"}}
	for _, p := range players {
		data = append(data, []string{
			p,
			pterm.Sprintf("%.4f", shapley[p]),
			pterm.Sprintf("%.4f", banzhaf[p]),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		glog.Fatal(err)
	}
}

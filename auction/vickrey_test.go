package auction

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/gamesolver/matrixgame"
)

func newTestAuction(t testing.TB) *Vickrey {
	v, err := NewVickrey([]float64{2, 4}, []float64{0, 1, 2, 3, 4, 5}, matrixgame.Player0)
	if err != nil {
		t.Fatal(err)
	}

	return v
}

func TestNewVickrey_Game(t *testing.T) {
	v := newTestAuction(t)
	g := v.Game()

	expectedLabels := []string{"0", "1", "2", "3", "4", "5"}
	for p := matrixgame.Player0; p <= matrixgame.Player1; p++ {
		if got := g.Strategies(p); !reflect.DeepEqual(got, expectedLabels) {
			t.Errorf("%v has strategies %v, expected %v", p, got, expectedLabels)
		}
	}

	testCases := []struct {
		b0, b1   string
		expected matrixgame.Payoff
	}{
		{"3", "1", matrixgame.Payoff{1, 0}},  // Bidder 0 wins, pays 1.
		{"1", "3", matrixgame.Payoff{0, 3}},  // Bidder 1 wins, pays 1.
		{"2", "2", matrixgame.Payoff{0, 0}},  // Tie to bidder 0, pays 2.
		{"1", "1", matrixgame.Payoff{1, 0}},  // Tie to bidder 0, pays 1.
		{"5", "4", matrixgame.Payoff{-2, 0}}, // Overbidding loses money.
	}
	for _, tc := range testCases {
		payoff, err := g.Payoff(tc.b0, tc.b1)
		if err != nil {
			t.Fatal(err)
		}

		if payoff != tc.expected {
			t.Errorf("bids (%s, %s): got payoff %v, expected %v", tc.b0, tc.b1, payoff, tc.expected)
		}
	}
}

func TestNewVickrey_TieBreaker(t *testing.T) {
	v, err := NewVickrey([]float64{2, 4}, []float64{0, 1, 2}, matrixgame.Player1)
	if err != nil {
		t.Fatal(err)
	}

	payoff, err := v.Outcome([2]float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	if payoff != (matrixgame.Payoff{0, 3}) {
		t.Errorf("got tie payoff %v, expected %v", payoff, matrixgame.Payoff{0, 3})
	}

	if v.TieBreaker() != matrixgame.Player1 {
		t.Errorf("got tie breaker %v, expected %v", v.TieBreaker(), matrixgame.Player1)
	}
}

func TestNewVickrey_InvalidConfiguration(t *testing.T) {
	bids := []float64{0, 1, 2}
	if _, err := NewVickrey([]float64{2}, bids, matrixgame.Player0); errors.Cause(err) != matrixgame.ErrInvalidConfiguration {
		t.Errorf("one valuation: got error %v, expected %v", err, matrixgame.ErrInvalidConfiguration)
	}

	if _, err := NewVickrey([]float64{2, 4}, bids, matrixgame.Player(2)); errors.Cause(err) != matrixgame.ErrInvalidConfiguration {
		t.Errorf("tie breaker 2: got error %v, expected %v", err, matrixgame.ErrInvalidConfiguration)
	}

	if _, err := NewVickrey([]float64{2, 4}, nil, matrixgame.Player0); errors.Cause(err) != matrixgame.ErrInvalidConfiguration {
		t.Errorf("no bids: got error %v, expected %v", err, matrixgame.ErrInvalidConfiguration)
	}

	if _, err := NewVickrey([]float64{2, 4}, []float64{1, 1}, matrixgame.Player0); errors.Cause(err) != matrixgame.ErrInvalidConfiguration {
		t.Errorf("duplicate bids: got error %v, expected %v", err, matrixgame.ErrInvalidConfiguration)
	}
}

func TestOutcome(t *testing.T) {
	v := newTestAuction(t)

	truthful, err := v.Outcome([2]float64{2, 4})
	if err != nil {
		t.Fatal(err)
	}
	if truthful != (matrixgame.Payoff{0, 2}) {
		t.Errorf("truthful bids: got outcome %v, expected %v", truthful, matrixgame.Payoff{0, 2})
	}

	reversed, err := v.Outcome([2]float64{4, 2})
	if err != nil {
		t.Fatal(err)
	}
	if reversed != (matrixgame.Payoff{0, 0}) {
		t.Errorf("reversed bids: got outcome %v, expected %v", reversed, matrixgame.Payoff{0, 0})
	}

	if _, err := v.Outcome([2]float64{2.5, 4}); errors.Cause(err) != matrixgame.ErrStrategyNotFound {
		t.Errorf("off-grid bid: got error %v, expected %v", err, matrixgame.ErrStrategyNotFound)
	}
}

func TestIsEnvyFree(t *testing.T) {
	v := newTestAuction(t)

	envyFree, err := v.IsEnvyFree([2]float64{2, 4})
	if err != nil {
		t.Fatal(err)
	}
	if !envyFree {
		t.Error("truthful bids should be envy free")
	}

	// Bidder 1 gets nothing at (4, 2), but under the swapped bids (2, 4)
	// it would win for 4 - 2 = 2.
	envyFree, err = v.IsEnvyFree([2]float64{4, 2})
	if err != nil {
		t.Fatal(err)
	}
	if envyFree {
		t.Error("reversed bids should not be envy free")
	}
}

func TestTruthfulBiddingIsEquilibrium(t *testing.T) {
	v := newTestAuction(t)
	g := v.Game()

	truthful := matrixgame.Profile{Row: "2", Column: "4"}
	found := false
	for _, eq := range g.PureNashEquilibria() {
		if eq == truthful {
			found = true
		}
	}
	if !found {
		t.Errorf("truthful bidding %v is not among the equilibria %v", truthful, g.PureNashEquilibria())
	}

	overbid := matrixgame.DominancePair{Player: matrixgame.Player0, Dominant: "2", Dominated: "5"}
	found = false
	for _, pair := range g.WeaklyDominantPairs(matrixgame.Player0) {
		if pair == overbid {
			found = true
		}
	}
	if !found {
		t.Errorf("expected truthful bid to weakly dominate overbidding")
	}
}

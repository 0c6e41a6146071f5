// Package auction models sealed-bid auctions as two-player strategic-form games.
package auction

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/timpalpant/gamesolver/matrixgame"
)

// Vickrey is a two-bidder second-price (Vickrey) sealed-bid auction over a
// discrete grid of bids. The highest bidder wins the item and pays the
// other bid. Ties are won by the tie-breaking bidder.
type Vickrey struct {
	valuations [2]float64
	bids       []float64
	tieBreaker matrixgame.Player
	game       *matrixgame.Game
}

// NewVickrey creates the auction for the given valuation of each bidder
// (theta), the bids available to both bidders, and the bidder who wins ties.
func NewVickrey(valuations, bids []float64, tieBreaker matrixgame.Player) (*Vickrey, error) {
	if len(valuations) != 2 {
		return nil, errors.Wrapf(matrixgame.ErrInvalidConfiguration,
			"got %d valuations, expected 2", len(valuations))
	}

	if tieBreaker != matrixgame.Player0 && tieBreaker != matrixgame.Player1 {
		return nil, errors.Wrapf(matrixgame.ErrInvalidConfiguration,
			"invalid tie breaker %v", tieBreaker)
	}

	v := &Vickrey{
		valuations: [2]float64{valuations[0], valuations[1]},
		bids:       append([]float64(nil), bids...),
		tieBreaker: tieBreaker,
	}

	game, err := v.buildGame()
	if err != nil {
		return nil, errors.Wrap(err, "building auction game")
	}
	v.game = game

	return v, nil
}

// BidLabel returns the strategy label used for a bid.
func BidLabel(bid float64) string {
	return strconv.FormatFloat(bid, 'f', -1, 64)
}

func (v *Vickrey) buildGame() (*matrixgame.Game, error) {
	labels := make([]string, len(v.bids))
	for i, bid := range v.bids {
		labels[i] = BidLabel(bid)
	}

	payoffs := make([][]matrixgame.Payoff, len(v.bids))
	for i, b0 := range v.bids {
		payoffs[i] = make([]matrixgame.Payoff, len(v.bids))
		for j, b1 := range v.bids {
			payoffs[i][j] = v.payoff(b0, b1)
		}
	}

	return matrixgame.NewGame(labels, labels, payoffs)
}

// payoff returns each bidder's utility: the winner gets its valuation less
// the second-highest bid, the loser gets nothing.
func (v *Vickrey) payoff(b0, b1 float64) matrixgame.Payoff {
	var result matrixgame.Payoff
	switch {
	case b0 > b1:
		result[matrixgame.Player0] = v.valuations[matrixgame.Player0] - b1
	case b0 < b1:
		result[matrixgame.Player1] = v.valuations[matrixgame.Player1] - b0
	default:
		result[v.tieBreaker] = v.valuations[v.tieBreaker] - b0
	}

	return result
}

// Game returns the strategic-form game of the auction. Both bidders'
// strategies are the bid labels, in bid grid order.
func (v *Vickrey) Game() *matrixgame.Game {
	return v.game
}

// Valuations returns each bidder's valuation of the item.
func (v *Vickrey) Valuations() [2]float64 {
	return v.valuations
}

// TieBreaker returns the bidder who wins ties.
func (v *Vickrey) TieBreaker() matrixgame.Player {
	return v.tieBreaker
}

// Outcome returns each bidder's utility when bidder i bids bids[i].
func (v *Vickrey) Outcome(bids [2]float64) (matrixgame.Payoff, error) {
	return v.game.Payoff(BidLabel(bids[0]), BidLabel(bids[1]))
}

// IsEnvyFree reports whether neither bidder would be better off had the
// bids (and hence roles) been swapped.
func (v *Vickrey) IsEnvyFree(bids [2]float64) (bool, error) {
	before, err := v.Outcome(bids)
	if err != nil {
		return false, err
	}

	after, err := v.Outcome([2]float64{bids[1], bids[0]})
	if err != nil {
		return false, err
	}

	return after[matrixgame.Player0] <= before[matrixgame.Player0] &&
		after[matrixgame.Player1] <= before[matrixgame.Player1], nil
}

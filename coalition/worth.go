// Package coalition computes solution concepts for cooperative games given
// by a characteristic function over coalitions of players.
package coalition

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Separator joins the sorted member names of a coalition to form its key.
// Player names must be non-empty and may not contain it.
const Separator = ","

var (
	// ErrCoalitionNotFound is returned when a coalition has no worth.
	ErrCoalitionNotFound = errors.New("coalition not found")
	// ErrInvalidConfiguration is returned for malformed player sets.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrDimensionMismatch is returned when coalitions and worths differ in length.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Key returns the canonical key of the coalition with the given members:
// the member names sorted and joined by Separator. The empty coalition's
// key is "".
func Key(members ...string) string {
	sorted := append([]string(nil), members...)
	sort.Strings(sorted)
	return strings.Join(sorted, Separator)
}

// Worth is a characteristic function: the total value each coalition can
// secure, keyed by Key. It must be defined for every subset of the players,
// including the empty coalition (conventionally 0).
type Worth map[string]float64

// NewWorth builds a Worth from parallel slices of coalitions and their
// values. Members of each coalition may be given in any order.
func NewWorth(coalitions [][]string, values []float64) (Worth, error) {
	if len(coalitions) != len(values) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"%d coalitions but %d values", len(coalitions), len(values))
	}

	w := make(Worth, len(coalitions))
	for i, members := range coalitions {
		w.Set(values[i], members...)
	}

	return w, nil
}

// Set records the worth of the coalition with the given members.
func (w Worth) Set(value float64, members ...string) {
	w[Key(members...)] = value
}

// Of returns the worth of the coalition with the given members.
func (w Worth) Of(members []string) (float64, error) {
	key := Key(members...)
	v, ok := w[key]
	if !ok {
		return 0, errors.Wrapf(ErrCoalitionNotFound, "no worth for coalition {%s}", key)
	}

	return v, nil
}

func validatePlayers(players []string) error {
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p == "" {
			return errors.Wrap(ErrInvalidConfiguration, "empty player name")
		}

		if strings.Contains(p, Separator) {
			return errors.Wrapf(ErrInvalidConfiguration,
				"player %q contains separator %q", p, Separator)
		}

		if seen[p] {
			return errors.Wrapf(ErrInvalidConfiguration, "duplicate player %q", p)
		}
		seen[p] = true
	}

	return nil
}

package matrixgame

import (
	"github.com/pkg/errors"
)

var (
	// ErrStrategyNotFound is returned when a label is not one of a player's strategies.
	ErrStrategyNotFound = errors.New("strategy not found")
	// ErrDimensionMismatch is returned when a payoff table or probability
	// vector does not match the number of strategies.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidConfiguration is returned for empty or duplicated strategy sets
	// and out of range players.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

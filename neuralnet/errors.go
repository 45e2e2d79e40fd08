package neuralnet

import "github.com/pkg/errors"

var (
	// ErrInvalidExponent reports a Pow call whose exponent is not a raw
	// number. Surfaced as a panic at the call site.
	ErrInvalidExponent = errors.New("neuralnet: exponent must be a plain number")

	// ErrInvalidOperand reports an arithmetic operand that is neither a
	// *Value nor a raw number. Surfaced as a panic at the call site.
	ErrInvalidOperand = errors.New("neuralnet: operand must be a *Value or a plain number")

	// ErrDimensionMismatch reports an input sequence whose length
	// disagrees with the width a component was built with.
	ErrDimensionMismatch = errors.New("neuralnet: input length does not match width")
)

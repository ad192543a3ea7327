package quantity

import (
	"github.com/shopspring/decimal"
)

// Operator pairs a unit operation with the matching magnitude operation.
// Multiply composes units and multiplies magnitudes, Divide decomposes units and divides magnitudes.
type Operator int

const (
	Multiply Operator = iota + 1
	Divide
)

func (op Operator) String() string {
	switch op {
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

func (op Operator) apply(left, right decimal.Decimal, precision int32) (decimal.Decimal, error) {
	switch op {
	case Multiply:
		return left.Mul(right), nil
	case Divide:
		if right.IsZero() {
			return decimal.Decimal{}, ErrDivisionByZero.F("%s ÷ %s", left, right)
		}
		return left.DivRound(right, precision), nil
	default:
		return decimal.Decimal{}, ErrNoIdentity.F("unknown operator: %d", int(op))
	}
}

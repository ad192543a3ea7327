package quantity

import (
	"github.com/shopspring/decimal"

	"go.llib.dev/unitkit/pkg/unit"
)

// Combinator computes the resulting unit of an operation from the two operand units.
type Combinator func(left, right unit.Unit) (unit.Unit, error)

// Factory constructs the resulting Value from the computed magnitude and unit.
type Factory func(magnitude decimal.Decimal, u unit.Unit) Value

// Combine is the unconstrained form of the algebra engine.
// The caller decides how the units are combined and how the result is constructed,
// while Combine makes sure that the magnitude operation matches the operator.
//
// Operands whose units are malformed or belong to disjoint measurement systems are rejected.
func Combine(left, right Value, op Operator, combine Combinator, factory Factory) (Value, error) {
	return combineWith(left, right, op, combine, factory, int32(decimal.DivisionPrecision))
}

// Apply combines the two values through a single identity.
// When the operand units don't satisfy the identity's structural precondition, ErrIdentityMismatch is returned.
func Apply(id Identity, left, right Value) (Value, error) {
	return Combine(left, right, id.Operator, id.combinator(), Of)
}

func combineWith(left, right Value, op Operator, combine Combinator, factory Factory, precision int32) (Value, error) {
	if combine == nil {
		return Value{}, ErrNoIdentity.F("missing unit combinator")
	}
	if factory == nil {
		factory = Of
	}
	lu, ru := left.Unit(), right.Unit()
	if err := checkOperands(lu, ru); err != nil {
		return Value{}, err
	}
	u, err := combine(lu, ru)
	if err != nil {
		return Value{}, err
	}
	if err := unit.Validate(u); err != nil {
		return Value{}, err
	}
	magnitude, err := op.apply(left.magnitude, right.magnitude, precision)
	if err != nil {
		return Value{}, err
	}
	return factory(magnitude, u), nil
}

func checkOperands(left, right unit.Unit) error {
	if err := unit.Validate(left); err != nil {
		return err
	}
	if err := unit.Validate(right); err != nil {
		return err
	}
	if !left.System().Overlaps(right.System()) {
		return unit.ErrIncompatibleSystems.F("%s (%s) and %s (%s)",
			left, left.System(), right, right.System())
	}
	return nil
}

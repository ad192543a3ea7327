package quantity

import (
	"context"

	"github.com/shopspring/decimal"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/unitkit/pkg/measurement"
	"go.llib.dev/unitkit/pkg/unit"
)

// Engine resolves the resulting unit of an operation through its identity table.
// The zero value is ready to use, and it is the unconstrained generic engine.
type Engine struct {
	// Constraint is the measurement system that both operand units must belong to.
	// For example, a Metric constrained engine accepts metres and seconds but rejects feet.
	// When left empty, any unit is accepted.
	Constraint measurement.System
	// Identities is the dispatch table used to resolve the resulting unit.
	//
	// Default: Identities
	Identities []Identity
	// Factory constructs the result values.
	//
	// Default: Of
	Factory Factory
	// DivisionPrecision is the number of decimal places kept when a division is not exact.
	// Zero rounds division results to whole numbers.
	//
	// Default: decimal.DivisionPrecision
	DivisionPrecision *int32
	// Logger receives the identity resolution events at debug level.
	// When nil, the engine doesn't log.
	Logger *logging.Logger
}

func (e Engine) Times(ctx context.Context, left, right Value) (Value, error) {
	return e.Combine(ctx, Multiply, left, right)
}

func (e Engine) Div(ctx context.Context, left, right Value) (Value, error) {
	return e.Combine(ctx, Divide, left, right)
}

// Reciprocal returns 1/v, where 1/(1/A) resolves back to A.
func (e Engine) Reciprocal(ctx context.Context, v Value) (Value, error) {
	return e.Combine(ctx, Divide, Dimensionless(decimal.NewFromInt(1)), v)
}

func (e Engine) Combine(ctx context.Context, op Operator, left, right Value) (Value, error) {
	if err := e.checkConstraint(left, right); err != nil {
		return Value{}, err
	}
	var resolved Identity
	result, err := combineWith(left, right, op, func(l, r unit.Unit) (unit.Unit, error) {
		id, u, ok := lookupIdentity(e.identities(), op, l, r)
		if !ok {
			return nil, ErrNoIdentity.F("%s %s %s", l, op, r)
		}
		resolved = id
		return u, nil
	}, e.Factory, e.precision())
	if err != nil {
		e.debug(ctx, "unit algebra operation failed", logging.Fields{
			"left":     left.String(),
			"right":    right.String(),
			"operator": op.String(),
			"error":    err.Error(),
		})
		return Value{}, err
	}
	e.debug(ctx, "unit algebra identity applied", logging.Fields{
		"identity": resolved.Name,
		"left":     left.String(),
		"right":    right.String(),
		"result":   result.String(),
	})
	return result, nil
}

func (e Engine) checkConstraint(left, right Value) error {
	if e.Constraint.IsZero() {
		return nil
	}
	if err := e.Constraint.Validate(); err != nil {
		return err
	}
	for _, v := range []Value{left, right} {
		if !v.System().Contains(e.Constraint) {
			return ErrConstraintViolation.F("%s is %s, expected %s", v.Unit(), v.System(), e.Constraint)
		}
	}
	return nil
}

func (e Engine) identities() []Identity {
	if e.Identities == nil {
		return Identities
	}
	return e.Identities
}

func (e Engine) precision() int32 {
	if e.DivisionPrecision == nil {
		return int32(decimal.DivisionPrecision)
	}
	return *e.DivisionPrecision
}

func (e Engine) debug(ctx context.Context, msg string, fields logging.Fields) {
	if e.Logger == nil {
		return
	}
	e.Logger.Debug(ctx, msg, fields)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

var engines = func() map[measurement.System]Engine {
	m := make(map[measurement.System]Engine)
	for _, sys := range measurement.Systems() {
		m[sys] = Engine{Constraint: sys}
	}
	return m
}()

// For returns the engine constrained to the given measurement system.
// measurement.None yields the unconstrained generic engine,
// while measurement.Generic only accepts units that are valid in every measurement system.
func For(sys measurement.System) (Engine, error) {
	if sys.IsZero() {
		return Engine{}, nil
	}
	e, ok := engines[sys]
	if !ok {
		return Engine{}, measurement.ErrUnknownSystem.F("%s", sys)
	}
	return e, nil
}

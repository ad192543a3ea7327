// Package quantity combines measured values through the algebra of their units.
//
// A Value is an immutable pair of an arbitrary-precision decimal magnitude and a unit.Unit.
// Multiplying or dividing two values runs through a table of algebraic identities,
// such as (A/B) × (B/C) = A/C, which decide the shape of the resulting unit,
// while the magnitudes are multiplied or divided accordingly.
//
//	speed := quantity.New(10, unit.Per(units.Meter, units.Second))
//	duration := quantity.New(5, units.Second)
//	distance, err := speed.Times(duration) // 50 m
//
// Values whose units can't be combined, because they belong to disjoint measurement systems,
// are rejected with an error.
package quantity

import (
	"context"

	"github.com/shopspring/decimal"
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/unitkit/pkg/measurement"
	"go.llib.dev/unitkit/pkg/unit"
)

const (
	ErrParse               errorkit.Error = "ErrParse"
	ErrDivisionByZero      errorkit.Error = "ErrDivisionByZero"
	ErrIdentityMismatch    errorkit.Error = "ErrIdentityMismatch"
	ErrNoIdentity          errorkit.Error = "ErrNoIdentity"
	ErrConstraintViolation errorkit.Error = "ErrConstraintViolation"
)

type Value struct {
	magnitude decimal.Decimal
	unit      unit.Unit
}

// Of makes a Value, a nil unit is treated as dimensionless.
func Of(magnitude decimal.Decimal, u unit.Unit) Value {
	if u == nil {
		u = unit.One
	}
	return Value{magnitude: magnitude, unit: u}
}

type Number interface {
	int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | float32 | float64
}

func New[N Number](n N, u unit.Unit) Value {
	var d decimal.Decimal
	switch n := any(n).(type) {
	case float32:
		d = decimal.NewFromFloat32(n)
	case float64:
		d = decimal.NewFromFloat(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int8:
		d = decimal.NewFromInt(int64(n))
	case int16:
		d = decimal.NewFromInt(int64(n))
	case int32:
		d = decimal.NewFromInt32(n)
	case int64:
		d = decimal.NewFromInt(n)
	case uint8:
		d = decimal.NewFromInt(int64(n))
	case uint16:
		d = decimal.NewFromInt(int64(n))
	case uint32:
		d = decimal.NewFromInt(int64(n))
	}
	return Of(d, u)
}

// Parse reads the magnitude from its decimal text form.
func Parse(raw string, u unit.Unit) (Value, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Value{}, ErrParse.Wrap(err)
	}
	return Of(d, u), nil
}

func Dimensionless(magnitude decimal.Decimal) Value {
	return Of(magnitude, unit.One)
}

func (v Value) Magnitude() decimal.Decimal { return v.magnitude }

func (v Value) Unit() unit.Unit {
	if v.unit == nil {
		return unit.One
	}
	return v.unit
}

// Defined reports whether the value is tied to a known physical quantity, like length or mass.
func (v Value) Defined() bool { return unit.IsDefined(v.Unit()) }

func (v Value) Quantity() unit.Quantity { return unit.QuantityOf(v.Unit()) }

func (v Value) System() measurement.System { return v.Unit().System() }

func (v Value) IsZero() bool { return v.magnitude.IsZero() }

// Equal reports whether both the magnitude and the unit tree shape are the same.
func (v Value) Equal(oth Value) bool {
	return v.magnitude.Equal(oth.magnitude) && unit.Equal(v.Unit(), oth.Unit())
}

// Equivalent reports whether the magnitudes are the same and the units measure the same dimension.
func (v Value) Equivalent(oth Value) bool {
	return v.magnitude.Equal(oth.magnitude) && unit.Equivalent(v.Unit(), oth.Unit())
}

func (v Value) String() string {
	if v.Unit() == unit.One {
		return v.magnitude.String()
	}
	return v.magnitude.String() + " " + v.Unit().String()
}

func (v Value) Times(oth Value) (Value, error) {
	return Engine{}.Times(context.Background(), v, oth)
}

func (v Value) Div(oth Value) (Value, error) {
	return Engine{}.Div(context.Background(), v, oth)
}

// Reciprocal returns 1/v.
func (v Value) Reciprocal() (Value, error) {
	return Engine{}.Reciprocal(context.Background(), v)
}

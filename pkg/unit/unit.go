// Package unit models unit expressions as a small tree.
//
// A Unit is either the dimensionless One, an Atom, or a composite of other units:
// a Product (left · right), a Quotient (numerator / denominator) or a Reciprocal (1 / inner).
// Every node is a comparable value type, so two units are structurally equal when they are == equal.
//
// The constructors in this package build raw shapes and don't simplify anything,
// with the exception of Invert.
// Rewriting a tree through algebraic identities is the job of the quantity package.
package unit

import (
	"go.llib.dev/frameless/pkg/zerokit"

	"go.llib.dev/unitkit/pkg/measurement"
)

type Kind int

const (
	KindOne Kind = iota
	KindAtom
	KindProduct
	KindQuotient
	KindReciprocal
)

func (k Kind) String() string {
	switch k {
	case KindOne:
		return "one"
	case KindAtom:
		return "atom"
	case KindProduct:
		return "product"
	case KindQuotient:
		return "quotient"
	case KindReciprocal:
		return "reciprocal"
	default:
		return "unknown"
	}
}

type Unit interface {
	Kind() Kind
	// System is the set of measurement systems the unit is valid in.
	System() measurement.System
	String() string

	unit()
}

// Quantity names the physical dimension an Atom measures.
type Quantity string

const Undefined Quantity = ""

const (
	Length            Quantity = "length"
	Mass              Quantity = "mass"
	Time              Quantity = "time"
	Volume            Quantity = "volume"
	Area              Quantity = "area"
	Temperature       Quantity = "temperature"
	ElectricCurrent   Quantity = "electric-current"
	AmountOfSubstance Quantity = "amount-of-substance"
	LuminousIntensity Quantity = "luminous-intensity"
	Information       Quantity = "information"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type one struct{}

// One is the dimensionless unit, the identity element of unit multiplication.
var One Unit = one{}

func (one) Kind() Kind { return KindOne }
func (one) System() measurement.System { return measurement.Generic }
func (one) String() string { return "1" }
func (one) unit() {}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Atom is a unit that can't be broken down any further.
// An Atom with a Quantity is a defined unit, while an Atom without one is an extension unit
// that only has meaning through its symbol.
type Atom struct {
	Symbol   string
	Name     string
	Quantity Quantity
	// Measurement is the measurement system where the unit is valid.
	// When left empty, the unit is considered generic.
	Measurement measurement.System
}

// Define makes a defined Atom that measures the given Quantity.
func Define(symbol, name string, q Quantity, sys measurement.System) Atom {
	return Atom{
		Symbol:      symbol,
		Name:        zerokit.Coalesce(name, symbol),
		Quantity:    q,
		Measurement: zerokit.Coalesce(sys, measurement.Generic),
	}
}

// Extend makes an undefined Atom, a unit that is not tied to any known physical quantity.
func Extend(symbol string, sys measurement.System) Atom {
	return Define(symbol, symbol, Undefined, sys)
}

func (a Atom) Kind() Kind { return KindAtom }

func (a Atom) System() measurement.System {
	return zerokit.Coalesce(a.Measurement, measurement.Generic)
}

func (a Atom) String() string { return zerokit.Coalesce(a.Symbol, a.Name) }

func (a Atom) Defined() bool { return a.Quantity != Undefined }

func (a Atom) normalise() Atom {
	a.Measurement = a.System()
	return a
}

func (Atom) unit() {}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type Product struct {
	Left  Unit
	Right Unit
}

func Times(left, right Unit) Product {
	return Product{Left: left, Right: right}
}

func (Product) Kind() Kind { return KindProduct }

func (p Product) System() measurement.System {
	return systemOf(p.Left).Intersect(systemOf(p.Right))
}

func (p Product) String() string {
	return operand(p.Left) + "·" + operand(p.Right)
}

func (Product) unit() {}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type Quotient struct {
	Numerator   Unit
	Denominator Unit
}

func Per(numerator, denominator Unit) Quotient {
	return Quotient{Numerator: numerator, Denominator: denominator}
}

func (Quotient) Kind() Kind { return KindQuotient }

func (q Quotient) System() measurement.System {
	return systemOf(q.Numerator).Intersect(systemOf(q.Denominator))
}

func (q Quotient) String() string {
	return operand(q.Numerator) + "/" + operand(q.Denominator)
}

func (Quotient) unit() {}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type Reciprocal struct {
	Inner Unit
}

func Inverse(u Unit) Reciprocal {
	return Reciprocal{Inner: u}
}

// Invert returns 1/u in its simplest shape:
//
//	1/1     -> 1
//	1/(1/A) -> A
//	1/(A/B) -> B/A
func Invert(u Unit) Unit {
	switch u := u.(type) {
	case one:
		return One
	case Reciprocal:
		return u.Inner
	case Quotient:
		return Per(u.Denominator, u.Numerator)
	default:
		return Inverse(u)
	}
}

func (Reciprocal) Kind() Kind { return KindReciprocal }

func (r Reciprocal) System() measurement.System { return systemOf(r.Inner) }

func (r Reciprocal) String() string { return "1/" + operand(r.Inner) }

func (Reciprocal) unit() {}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func systemOf(u Unit) measurement.System {
	if u == nil {
		return measurement.None
	}
	return u.System()
}

func operand(u Unit) string {
	if u == nil {
		return "<nil>"
	}
	switch u.Kind() {
	case KindProduct, KindQuotient, KindReciprocal:
		return "(" + u.String() + ")"
	default:
		return u.String()
	}
}

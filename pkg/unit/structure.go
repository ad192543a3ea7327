package unit

import (
	"sort"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrMalformed           errorkit.Error = "ErrMalformed"
	ErrIncompatibleSystems errorkit.Error = "ErrIncompatibleSystems"
)

// Equal reports whether a and b have the same tree shape with the same atoms in the same positions.
func Equal(a, b Unit) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return normalise(a) == normalise(b)
}

// normalise makes atoms with an implicit generic system comparable with their explicit counterparts.
func normalise(u Unit) Unit {
	switch u := u.(type) {
	case Atom:
		return u.normalise()
	case Product:
		return Product{Left: normalise(u.Left), Right: normalise(u.Right)}
	case Quotient:
		return Quotient{Numerator: normalise(u.Numerator), Denominator: normalise(u.Denominator)}
	case Reciprocal:
		return Reciprocal{Inner: normalise(u.Inner)}
	default:
		return u
	}
}

// Validate checks that the unit tree is complete and that its parts share at least one measurement system.
func Validate(u Unit) error {
	if u == nil {
		return ErrMalformed.F("nil unit")
	}
	switch u := u.(type) {
	case one:
		return nil
	case Atom:
		if u.Symbol == "" && u.Name == "" {
			return ErrMalformed.F("atom without symbol")
		}
		return u.System().Validate()
	case Product:
		return validateComposite(u, u.Left, u.Right)
	case Quotient:
		return validateComposite(u, u.Numerator, u.Denominator)
	case Reciprocal:
		if u.Inner == nil {
			return ErrMalformed.F("reciprocal without inner unit")
		}
		return Validate(u.Inner)
	default:
		return ErrMalformed.F("unknown unit type: %T", u)
	}
}

func validateComposite(u, a, b Unit) error {
	if a == nil || b == nil {
		return ErrMalformed.F("incomplete %s", u.Kind())
	}
	if err := Validate(a); err != nil {
		return err
	}
	if err := Validate(b); err != nil {
		return err
	}
	if !a.System().Overlaps(b.System()) {
		return ErrIncompatibleSystems.F("%s (%s) and %s (%s)", a, a.System(), b, b.System())
	}
	return nil
}

// Walk visits u and its sub units in pre-order.
// Returning false from fn stops the descent into the current node's children.
func Walk(u Unit, fn func(Unit) bool) {
	if u == nil || !fn(u) {
		return
	}
	switch u := u.(type) {
	case Product:
		Walk(u.Left, fn)
		Walk(u.Right, fn)
	case Quotient:
		Walk(u.Numerator, fn)
		Walk(u.Denominator, fn)
	case Reciprocal:
		Walk(u.Inner, fn)
	}
}

func Depth(u Unit) int {
	switch u := u.(type) {
	case Product:
		return 1 + max(Depth(u.Left), Depth(u.Right))
	case Quotient:
		return 1 + max(Depth(u.Numerator), Depth(u.Denominator))
	case Reciprocal:
		return 1 + Depth(u.Inner)
	case nil:
		return 0
	default:
		return 1
	}
}

// QuantityOf returns the physical quantity of a defined atom.
// Composite units are not tied to a single named quantity, thus they are Undefined.
func QuantityOf(u Unit) Quantity {
	if a, ok := u.(Atom); ok {
		return a.Quantity
	}
	return Undefined
}

func IsDefined(u Unit) bool {
	return QuantityOf(u) != Undefined
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Dimension maps each atom of a unit to its exponent.
// Atoms that cancel out are not part of the Dimension.
type Dimension map[Atom]int

func DimensionOf(u Unit) Dimension {
	dim := Dimension{}
	dim.add(u, 1)
	for a, exp := range dim {
		if exp == 0 {
			delete(dim, a)
		}
	}
	return dim
}

func (d Dimension) add(u Unit, sign int) {
	switch u := u.(type) {
	case Atom:
		d[u.normalise()] += sign
	case Product:
		d.add(u.Left, sign)
		d.add(u.Right, sign)
	case Quotient:
		d.add(u.Numerator, sign)
		d.add(u.Denominator, -sign)
	case Reciprocal:
		d.add(u.Inner, -sign)
	}
}

func (d Dimension) Equal(oth Dimension) bool {
	if len(d) != len(oth) {
		return false
	}
	for a, exp := range d {
		if oth[a] != exp {
			return false
		}
	}
	return true
}

func (d Dimension) String() string {
	if len(d) == 0 {
		return "1"
	}
	var parts []string
	for a, exp := range d {
		parts = append(parts, a.String()+"^"+strconv.Itoa(exp))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

// Equivalent reports whether a and b measure the same thing, even if their tree shapes differ.
// For example m·s and s·m are Equivalent but not Equal.
func Equivalent(a, b Unit) bool {
	return DimensionOf(a).Equal(DimensionOf(b))
}

func Dimensionless(u Unit) bool {
	return len(DimensionOf(u)) == 0
}

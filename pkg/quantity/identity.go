package quantity

import (
	"go.llib.dev/unitkit/pkg/unit"
)

// Identity is a single rule of the unit algebra, like (A/B) × (B/C) = A/C.
// Rewrite checks the structural precondition of the rule on the operand units,
// and when it holds, it returns the resulting unit.
type Identity struct {
	Name     string
	Operator Operator
	Rewrite  func(left, right unit.Unit) (unit.Unit, bool)
}

func (id Identity) combinator() Combinator {
	return func(left, right unit.Unit) (unit.Unit, error) {
		u, ok := id.Rewrite(left, right)
		if !ok {
			return nil, ErrIdentityMismatch.F("%s doesn't apply to %s %s %s", id.Name, left, id.Operator, right)
		}
		return u, nil
	}
}

func eq(a, b unit.Unit) bool { return unit.Equal(a, b) }

func product(u unit.Unit) (unit.Product, bool) {
	p, ok := u.(unit.Product)
	return p, ok
}

func quotient(u unit.Unit) (unit.Quotient, bool) {
	q, ok := u.(unit.Quotient)
	return q, ok
}

func reciprocal(u unit.Unit) (unit.Reciprocal, bool) {
	r, ok := u.(unit.Reciprocal)
	return r, ok
}

// Identities of multiplication.
var (
	TimesOne = Identity{
		Name:     "A×1=A",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			return l, r == unit.One
		},
	}
	OneTimes = Identity{
		Name:     "1×A=A",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			return r, l == unit.One
		},
	}
	ReciprocalTimesInner = Identity{
		Name:     "(1/A)×A=1",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, ok := reciprocal(l)
			return unit.One, ok && eq(lr.Inner, r)
		},
	}
	TimesOwnReciprocal = Identity{
		Name:     "A×(1/A)=1",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rr, ok := reciprocal(r)
			return unit.One, ok && eq(rr.Inner, l)
		},
	}
	QuotientTimesDenominator = Identity{
		Name:     "(A/B)×B=A",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, ok := quotient(l)
			if !ok || !eq(lq.Denominator, r) {
				return nil, false
			}
			return lq.Numerator, true
		},
	}
	DenominatorTimesQuotient = Identity{
		Name:     "B×(A/B)=A",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rq, ok := quotient(r)
			if !ok || !eq(rq.Denominator, l) {
				return nil, false
			}
			return rq.Numerator, true
		},
	}
	QuotientTimesInverse = Identity{
		Name:     "(A/B)×(B/A)=1",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rq, rok := quotient(r)
			return unit.One, lok && rok && eq(lq.Numerator, rq.Denominator) && eq(lq.Denominator, rq.Numerator)
		},
	}
	QuotientChain = Identity{
		Name:     "(A/B)×(B/C)=A/C",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rq, rok := quotient(r)
			if !lok || !rok || !eq(lq.Denominator, rq.Numerator) {
				return nil, false
			}
			return unit.Per(lq.Numerator, rq.Denominator), true
		},
	}
	QuotientChainReversed = Identity{
		Name:     "(A/B)×(C/A)=C/B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rq, rok := quotient(r)
			if !lok || !rok || !eq(lq.Numerator, rq.Denominator) {
				return nil, false
			}
			return unit.Per(rq.Numerator, lq.Denominator), true
		},
	}
	QuotientTimesProduct = Identity{
		Name:     "(A/B)×(B·C)=A·C",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rp, rok := product(r)
			if !lok || !rok {
				return nil, false
			}
			switch {
			case eq(lq.Denominator, rp.Left):
				return unit.Times(lq.Numerator, rp.Right), true
			case eq(lq.Denominator, rp.Right):
				return unit.Times(lq.Numerator, rp.Left), true
			default:
				return nil, false
			}
		},
	}
	ProductTimesQuotient = Identity{
		Name:     "(B·C)×(A/B)=C·A",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lp, lok := product(l)
			rq, rok := quotient(r)
			if !lok || !rok {
				return nil, false
			}
			switch {
			case eq(rq.Denominator, lp.Left):
				return unit.Times(lp.Right, rq.Numerator), true
			case eq(rq.Denominator, lp.Right):
				return unit.Times(lp.Left, rq.Numerator), true
			default:
				return nil, false
			}
		},
	}
	QuotientOfProductTimesFactor = Identity{
		Name:     "(A/(B·C))×B=A/C",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, ok := quotient(l)
			if !ok {
				return nil, false
			}
			den, ok := product(lq.Denominator)
			if !ok {
				return nil, false
			}
			switch {
			case eq(den.Left, r):
				return unit.Per(lq.Numerator, den.Right), true
			case eq(den.Right, r):
				return unit.Per(lq.Numerator, den.Left), true
			default:
				return nil, false
			}
		},
	}
	ReciprocalTimesProduct = Identity{
		Name:     "(1/A)×(A·B)=B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, lok := reciprocal(l)
			rp, rok := product(r)
			if !lok || !rok {
				return nil, false
			}
			switch {
			case eq(lr.Inner, rp.Left):
				return rp.Right, true
			case eq(lr.Inner, rp.Right):
				return rp.Left, true
			default:
				return nil, false
			}
		},
	}
	ProductTimesReciprocal = Identity{
		Name:     "(A·B)×(1/A)=B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lp, lok := product(l)
			rr, rok := reciprocal(r)
			if !lok || !rok {
				return nil, false
			}
			switch {
			case eq(rr.Inner, lp.Left):
				return lp.Right, true
			case eq(rr.Inner, lp.Right):
				return lp.Left, true
			default:
				return nil, false
			}
		},
	}
	ReciprocalOfProductTimesFactor = Identity{
		Name:     "(1/(A·B))×A=1/B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, ok := reciprocal(l)
			if !ok {
				return nil, false
			}
			inner, ok := product(lr.Inner)
			if !ok {
				return nil, false
			}
			switch {
			case eq(inner.Left, r):
				return unit.Inverse(inner.Right), true
			case eq(inner.Right, r):
				return unit.Inverse(inner.Left), true
			default:
				return nil, false
			}
		},
	}
	ReciprocalOfProductTimesQuotient = Identity{
		Name:     "(1/(A·B))×(A/C)=1/(B·C)",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, lok := reciprocal(l)
			rq, rok := quotient(r)
			if !lok || !rok {
				return nil, false
			}
			inner, ok := product(lr.Inner)
			if !ok {
				return nil, false
			}
			switch {
			case eq(inner.Left, rq.Numerator):
				return unit.Inverse(unit.Times(inner.Right, rq.Denominator)), true
			case eq(inner.Right, rq.Numerator):
				return unit.Inverse(unit.Times(inner.Left, rq.Denominator)), true
			default:
				return nil, false
			}
		},
	}
	ReciprocalTimesQuotient = Identity{
		Name:     "(1/A)×(A/B)=1/B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, lok := reciprocal(l)
			rq, rok := quotient(r)
			if !lok || !rok || !eq(lr.Inner, rq.Numerator) {
				return nil, false
			}
			return unit.Inverse(rq.Denominator), true
		},
	}
	QuotientTimesReciprocal = Identity{
		Name:     "(A/B)×(1/A)=1/B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rr, rok := reciprocal(r)
			if !lok || !rok || !eq(lq.Numerator, rr.Inner) {
				return nil, false
			}
			return unit.Inverse(lq.Denominator), true
		},
	}
	QuotientTimesOtherReciprocal = Identity{
		Name:     "(A/B)×(1/C)=A/(B·C)",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rr, rok := reciprocal(r)
			if !lok || !rok {
				return nil, false
			}
			return unit.Per(lq.Numerator, unit.Times(lq.Denominator, rr.Inner)), true
		},
	}
	ReciprocalTimesReciprocal = Identity{
		Name:     "(1/A)×(1/B)=1/(A·B)",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, lok := reciprocal(l)
			rr, rok := reciprocal(r)
			if !lok || !rok {
				return nil, false
			}
			return unit.Inverse(unit.Times(lr.Inner, rr.Inner)), true
		},
	}
	ReciprocalTimes = Identity{
		Name:     "(1/A)×B=B/A",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, ok := reciprocal(l)
			if !ok {
				return nil, false
			}
			return unit.Per(r, lr.Inner), true
		},
	}
	TimesReciprocal = Identity{
		Name:     "A×(1/B)=A/B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rr, ok := reciprocal(r)
			if !ok {
				return nil, false
			}
			return unit.Per(l, rr.Inner), true
		},
	}
	// ProductRule is the fallback of multiplication, it applies to any two units.
	ProductRule = Identity{
		Name:     "A×B=A·B",
		Operator: Multiply,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			return unit.Times(l, r), true
		},
	}
)

// Identities of division.
var (
	DivByOne = Identity{
		Name:     "A÷1=A",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			return l, r == unit.One
		},
	}
	OneDivReciprocal = Identity{
		Name:     "1÷(1/A)=A",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rr, ok := reciprocal(r)
			if l != unit.One || !ok {
				return nil, false
			}
			return rr.Inner, true
		},
	}
	OneDivQuotient = Identity{
		Name:     "1÷(A/B)=B/A",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rq, ok := quotient(r)
			if l != unit.One || !ok {
				return nil, false
			}
			return unit.Per(rq.Denominator, rq.Numerator), true
		},
	}
	OneDiv = Identity{
		Name:     "1÷A=1/A",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			return unit.Inverse(r), l == unit.One
		},
	}
	DivSelf = Identity{
		Name:     "A÷A=1",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			return unit.One, eq(l, r)
		},
	}
	ProductDivFactor = Identity{
		Name:     "(A·B)÷A=B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lp, ok := product(l)
			if !ok {
				return nil, false
			}
			switch {
			case eq(lp.Left, r):
				return lp.Right, true
			case eq(lp.Right, r):
				return lp.Left, true
			default:
				return nil, false
			}
		},
	}
	FactorDivProduct = Identity{
		Name:     "A÷(A·B)=1/B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rp, ok := product(r)
			if !ok {
				return nil, false
			}
			switch {
			case eq(rp.Left, l):
				return unit.Inverse(rp.Right), true
			case eq(rp.Right, l):
				return unit.Inverse(rp.Left), true
			default:
				return nil, false
			}
		},
	}
	NumeratorDivQuotient = Identity{
		Name:     "A÷(A/B)=B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rq, ok := quotient(r)
			if !ok || !eq(rq.Numerator, l) {
				return nil, false
			}
			return rq.Denominator, true
		},
	}
	QuotientDivNumerator = Identity{
		Name:     "(A/B)÷A=1/B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, ok := quotient(l)
			if !ok || !eq(lq.Numerator, r) {
				return nil, false
			}
			return unit.Inverse(lq.Denominator), true
		},
	}
	QuotientDivSameNumerator = Identity{
		Name:     "(A/B)÷(A/C)=C/B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rq, rok := quotient(r)
			if !lok || !rok || !eq(lq.Numerator, rq.Numerator) {
				return nil, false
			}
			return unit.Per(rq.Denominator, lq.Denominator), true
		},
	}
	QuotientDivSameDenominator = Identity{
		Name:     "(A/B)÷(C/B)=A/C",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rq, rok := quotient(r)
			if !lok || !rok || !eq(lq.Denominator, rq.Denominator) {
				return nil, false
			}
			return unit.Per(lq.Numerator, rq.Numerator), true
		},
	}
	QuotientDivReciprocalOfDenominator = Identity{
		Name:     "(A/B)÷(1/B)=A",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rr, rok := reciprocal(r)
			if !lok || !rok || !eq(lq.Denominator, rr.Inner) {
				return nil, false
			}
			return lq.Numerator, true
		},
	}
	ProductDivQuotient = Identity{
		Name:     "(A·B)÷(A/C)=B·C",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lp, lok := product(l)
			rq, rok := quotient(r)
			if !lok || !rok {
				return nil, false
			}
			switch {
			case eq(lp.Left, rq.Numerator):
				return unit.Times(lp.Right, rq.Denominator), true
			case eq(lp.Right, rq.Numerator):
				return unit.Times(lp.Left, rq.Denominator), true
			default:
				return nil, false
			}
		},
	}
	ProductDivProduct = Identity{
		Name:     "(A·C)÷(B·C)=A/B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lp, lok := product(l)
			rp, rok := product(r)
			if !lok || !rok {
				return nil, false
			}
			switch {
			case eq(lp.Left, rp.Left):
				return unit.Per(lp.Right, rp.Right), true
			case eq(lp.Left, rp.Right):
				return unit.Per(lp.Right, rp.Left), true
			case eq(lp.Right, rp.Left):
				return unit.Per(lp.Left, rp.Right), true
			case eq(lp.Right, rp.Right):
				return unit.Per(lp.Left, rp.Left), true
			default:
				return nil, false
			}
		},
	}
	QuotientDivProductWithNumerator = Identity{
		Name:     "(A/B)÷(A·C)=1/(B·C)",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, lok := quotient(l)
			rp, rok := product(r)
			if !lok || !rok {
				return nil, false
			}
			switch {
			case eq(lq.Numerator, rp.Left):
				return unit.Inverse(unit.Times(lq.Denominator, rp.Right)), true
			case eq(lq.Numerator, rp.Right):
				return unit.Inverse(unit.Times(lq.Denominator, rp.Left)), true
			default:
				return nil, false
			}
		},
	}
	DivReciprocal = Identity{
		Name:     "A÷(1/B)=A·B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			rr, ok := reciprocal(r)
			if !ok {
				return nil, false
			}
			return unit.Times(l, rr.Inner), true
		},
	}
	ReciprocalDiv = Identity{
		Name:     "(1/A)÷B=1/(A·B)",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lr, ok := reciprocal(l)
			if !ok {
				return nil, false
			}
			return unit.Inverse(unit.Times(lr.Inner, r)), true
		},
	}
	QuotientDiv = Identity{
		Name:     "(A/B)÷C=A/(B·C)",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			lq, ok := quotient(l)
			if !ok {
				return nil, false
			}
			return unit.Per(lq.Numerator, unit.Times(lq.Denominator, r)), true
		},
	}
	// QuotientRule is the fallback of division, it applies to any two units.
	QuotientRule = Identity{
		Name:     "A÷B=A/B",
		Operator: Divide,
		Rewrite: func(l, r unit.Unit) (unit.Unit, bool) {
			return unit.Per(l, r), true
		},
	}
)

// Identities is the dispatch table of the algebra engine.
// The first identity whose operator and structural precondition match the operands decides the resulting unit,
// so the more specific rules come before the generic product and quotient rules.
var Identities = []Identity{
	TimesOne,
	OneTimes,
	ReciprocalTimesInner,
	TimesOwnReciprocal,
	QuotientTimesDenominator,
	DenominatorTimesQuotient,
	QuotientTimesInverse,
	QuotientChain,
	QuotientChainReversed,
	QuotientTimesProduct,
	ProductTimesQuotient,
	QuotientOfProductTimesFactor,
	ReciprocalTimesProduct,
	ProductTimesReciprocal,
	ReciprocalOfProductTimesFactor,
	ReciprocalOfProductTimesQuotient,
	ReciprocalTimesQuotient,
	QuotientTimesReciprocal,
	QuotientTimesOtherReciprocal,
	ReciprocalTimesReciprocal,
	ReciprocalTimes,
	TimesReciprocal,
	ProductRule,

	DivByOne,
	OneDivReciprocal,
	OneDivQuotient,
	OneDiv,
	DivSelf,
	ProductDivFactor,
	FactorDivProduct,
	NumeratorDivQuotient,
	QuotientDivNumerator,
	QuotientDivSameNumerator,
	QuotientDivSameDenominator,
	QuotientDivReciprocalOfDenominator,
	ProductDivQuotient,
	ProductDivProduct,
	QuotientDivProductWithNumerator,
	DivReciprocal,
	ReciprocalDiv,
	QuotientDiv,
	QuotientRule,
}

func lookupIdentity(ids []Identity, op Operator, left, right unit.Unit) (Identity, unit.Unit, bool) {
	for _, id := range ids {
		if id.Operator != op {
			continue
		}
		if u, ok := id.Rewrite(left, right); ok {
			return id, u, true
		}
	}
	return Identity{}, nil, false
}

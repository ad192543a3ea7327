package quantity_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/must"
	"go.llib.dev/frameless/pkg/pointer"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/unitkit/pkg/measurement"
	"go.llib.dev/unitkit/pkg/quantity"
	"go.llib.dev/unitkit/pkg/unit"
	"go.llib.dev/unitkit/pkg/units"
)

func ExampleEngine_Times() {
	var (
		ctx      = context.Background()
		speed    = quantity.New(10, unit.Per(units.Meter, units.Second))
		duration = quantity.New(5, units.Second)
	)

	metric, err := quantity.For(measurement.Metric)
	if err != nil {
		panic(err)
	}

	distance, err := metric.Times(ctx, speed, duration)
	if err != nil {
		panic(err)
	}
	fmt.Println(distance)
	// Output: 50 m
}

func TestEngine(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		engine = let.Var(s, func(t *testcase.T) quantity.Engine {
			return quantity.Engine{}
		})
		left  = let.Var[quantity.Value](s, nil)
		right = let.Var[quantity.Value](s, nil)
	)

	s.Describe("#Times", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (quantity.Value, error) {
			return engine.Get(t).Times(context.Background(), left.Get(t), right.Get(t))
		})

		s.When("the operands are unrelated defined units", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value {
				return quantity.New(t.Random.IntBetween(1, 1000), units.Meter)
			})
			right.Let(s, func(t *testcase.T) quantity.Value {
				return quantity.New(t.Random.IntBetween(1, 1000), units.Kilogram)
			})

			s.Then("the product rule applies", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, left.Get(t).Magnitude().Mul(right.Get(t).Magnitude()).Equal(got.Magnitude()))
				assert.Equal[unit.Unit](t, unit.Times(units.Meter, units.Kilogram), got.Unit())
				assert.False(t, got.Defined())
			})

			s.Then("the result is metric", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, measurement.Metric, got.System())
			})
		})

		s.When("a defined unit is multiplied with an undefined one", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, units.Meter) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(7, A) })

			s.Then("the product rule still applies", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, decimal.NewFromInt(21).Equal(got.Magnitude()))
				assert.Equal[unit.Unit](t, unit.Times(units.Meter, A), got.Unit())
			})
		})

		s.When("the operands share a cancelling factor", func(s *testcase.Spec) {
			shared := let.Var(s, func(t *testcase.T) unit.Unit {
				return random.Pick[unit.Unit](t.Random, B, units.Second, unit.Times(C, D), unit.Inverse(units.Kilogram))
			})
			left.Let(s, func(t *testcase.T) quantity.Value {
				return quantity.New(10, unit.Per(A, shared.Get(t)))
			})
			right.Let(s, func(t *testcase.T) quantity.Value {
				return quantity.New(5, unit.Per(shared.Get(t), C))
			})

			s.Then("the shared factor is eliminated regardless of what it was", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, decimal.NewFromInt(50).Equal(got.Magnitude()))

				q, ok := got.Unit().(unit.Quotient)
				assert.True(t, ok)
				assert.True(t, unit.Equal(A, q.Numerator))
				assert.True(t, unit.Equal(C, q.Denominator))
			})
		})

		s.When("a reciprocal is multiplied with its inner unit", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(4, unit.Inverse(A)) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(4, A) })

			s.Then("the result is dimensionless", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, unit.One, got.Unit())
				assert.True(t, decimal.NewFromInt(16).Equal(got.Magnitude()))
			})
		})

		s.When("a reciprocal of a product meets a quotient with a shared factor", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, unit.Inverse(unit.Times(A, B))) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, unit.Per(A, C)) })

			s.Then("the remaining factors form a reciprocal product", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal[unit.Unit](t, unit.Inverse(unit.Times(B, C)), got.Unit())
				assert.True(t, decimal.NewFromInt(6).Equal(got.Magnitude()))
			})
		})

		s.When("a metric unit is combined with a UK imperial one", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(1, units.Meter) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(1, units.Stone) })

			s.Then("the operation is rejected", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, unit.ErrIncompatibleSystems)
			})
		})

		s.When("the engine is constrained to metric", func(s *testcase.Spec) {
			engine.Let(s, func(t *testcase.T) quantity.Engine {
				return must.Must(quantity.For(measurement.Metric))
			})

			s.And("both operands are valid in the metric system", func(s *testcase.Spec) {
				left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, unit.Per(units.Meter, units.Second)) })
				right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, units.Second) })

				s.Then("the result is metric", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal[unit.Unit](t, units.Meter, got.Unit())
					assert.True(t, got.System().Contains(measurement.Metric))
				})
			})

			s.And("an operand is imperial", func(s *testcase.Spec) {
				left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, units.Foot) })
				right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, units.Second) })

				s.Then("the constraint is violated", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, quantity.ErrConstraintViolation)
				})
			})
		})

		s.When("the engine is constrained to imperial", func(s *testcase.Spec) {
			engine.Let(s, func(t *testcase.T) quantity.Engine {
				return must.Must(quantity.For(measurement.Imperial))
			})

			s.And("an operand is UK only", func(s *testcase.Spec) {
				left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, units.Stone) })
				right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, units.Foot) })

				s.Then("the constraint is violated, because stone is not a US customary unit", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, quantity.ErrConstraintViolation)
				})
			})

			s.And("both operands are shared by the UK and the US", func(s *testcase.Spec) {
				left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, units.Pound) })
				right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, units.Foot) })

				s.Then("the result is imperial", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, measurement.Imperial, got.System())
				})
			})
		})

		s.When("the identity table has no matching rule", func(s *testcase.Spec) {
			engine.Let(s, func(t *testcase.T) quantity.Engine {
				return quantity.Engine{Identities: []quantity.Identity{quantity.QuotientChain}}
			})
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, A) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, B) })

			s.Then("no identity error is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, quantity.ErrNoIdentity)
			})
		})

		s.When("a custom factory is supplied", func(s *testcase.Spec) {
			engine.Let(s, func(t *testcase.T) quantity.Engine {
				return quantity.Engine{Factory: func(m decimal.Decimal, u unit.Unit) quantity.Value {
					return quantity.Of(m.Neg(), u)
				}}
			})
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, A) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, B) })

			s.Then("the result is constructed by the factory", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, decimal.NewFromInt(-6).Equal(got.Magnitude()))
			})
		})
	})

	s.Describe("#Div", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (quantity.Value, error) {
			return engine.Get(t).Div(context.Background(), left.Get(t), right.Get(t))
		})

		s.When("the divisor is zero", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(2, A) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(0, B) })

			s.Then("division by zero is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, quantity.ErrDivisionByZero)
			})
		})

		s.When("a product is divided by one of its factors", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(12, unit.Times(units.Meter, units.Kilogram)) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(4, units.Kilogram) })

			s.Then("the other factor remains", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal[unit.Unit](t, units.Meter, got.Unit())
				assert.True(t, decimal.NewFromInt(3).Equal(got.Magnitude()))
				assert.True(t, got.Defined())
				assert.Equal(t, unit.Length, got.Quantity())
			})
		})

		s.When("a product is divided by a product with a shared factor", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(10, unit.Times(A, C)) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(5, unit.Times(B, C)) })

			s.Then("the shared factor cancels out", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, got.Equal(quantity.New(2, unit.Per(A, B))))
			})
		})

		s.When("a quotient is divided by a product of its numerator", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(10, unit.Per(A, B)) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(5, unit.Times(A, C)) })

			s.Then("the numerator cancels out", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.True(t, got.Equal(quantity.New(2, unit.Inverse(unit.Times(B, C)))))
			})
		})

		s.When("the division is not exact", func(s *testcase.Spec) {
			left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(1, A) })
			right.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, B) })

			s.Then("the default division precision is used", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, "0.3333333333333333", got.Magnitude().String())
			})

			s.And("the engine has a custom division precision", func(s *testcase.Spec) {
				engine.Let(s, func(t *testcase.T) quantity.Engine {
					return quantity.Engine{DivisionPrecision: pointer.Of[int32](4)}
				})

				s.Then("the result is rounded to that precision", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, "0.3333", got.Magnitude().String())
				})
			})

			s.And("the engine rounds to whole numbers", func(s *testcase.Spec) {
				engine.Let(s, func(t *testcase.T) quantity.Engine {
					return quantity.Engine{DivisionPrecision: pointer.Of[int32](0)}
				})
				left.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(8, A) })

				s.Then("the fractional part is rounded away", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, "3", got.Magnitude().String())
				})
			})
		})
	})

	s.Describe("#Reciprocal", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) quantity.Value {
			u := random.Pick[unit.Unit](t.Random,
				A,
				units.Meter,
				unit.Times(A, B),
				unit.Per(units.Meter, units.Second),
				unit.Inverse(C),
			)
			return quantity.New(t.Random.IntBetween(1, 1000), u)
		})
		act := let.Act2(func(t *testcase.T) (quantity.Value, error) {
			return engine.Get(t).Reciprocal(context.Background(), value.Get(t))
		})

		s.Then("the reciprocal of the reciprocal is the original value within the division precision", func(t *testcase.T) {
			r, err := act(t)
			assert.NoError(t, err)
			got, err := engine.Get(t).Reciprocal(context.Background(), r)
			assert.NoError(t, err)
			assert.True(t, unit.Equal(value.Get(t).Unit(), got.Unit()))
			assertWithin(t, value.Get(t).Magnitude(), got.Magnitude(), decimal.New(1, -9))
		})

		s.Then("a value times its reciprocal is dimensionless one within the division precision", func(t *testcase.T) {
			r, err := act(t)
			assert.NoError(t, err)
			got, err := engine.Get(t).Times(context.Background(), value.Get(t), r)
			assert.NoError(t, err)
			assert.True(t, unit.Dimensionless(got.Unit()))
			assertWithin(t, decimal.NewFromInt(1), got.Magnitude(), decimal.New(1, -12))
		})

		s.When("the reciprocal of the magnitude terminates", func(s *testcase.Spec) {
			value.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(4, A) })

			s.Then("the round trip is exact", func(t *testcase.T) {
				r, err := act(t)
				assert.NoError(t, err)
				got, err := engine.Get(t).Times(context.Background(), value.Get(t), r)
				assert.NoError(t, err)
				assert.True(t, decimal.NewFromInt(1).Equal(got.Magnitude()))
			})
		})

		s.When("the reciprocal of the magnitude does not terminate", func(s *testcase.Spec) {
			value.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(3, A) })

			s.Then("the reciprocal is rounded to the division precision", func(t *testcase.T) {
				r, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, "0.3333333333333333", r.Magnitude().String())

				got, err := engine.Get(t).Times(context.Background(), value.Get(t), r)
				assert.NoError(t, err)
				assert.Equal(t, "0.9999999999999999", got.Magnitude().String())

				back, err := engine.Get(t).Reciprocal(context.Background(), r)
				assert.NoError(t, err)
				assert.Equal(t, "3.0000000000000003", back.Magnitude().String())
			})
		})

		s.When("the value is zero", func(s *testcase.Spec) {
			value.Let(s, func(t *testcase.T) quantity.Value { return quantity.New(0, A) })

			s.Then("division by zero is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, quantity.ErrDivisionByZero)
			})
		})
	})

	s.Context("logging", func(s *testcase.Spec) {
		s.Test("resolved identities are logged at debug level", func(t *testcase.T) {
			logger, out := logging.Stub(t)
			e := quantity.Engine{Logger: logger}

			_, err := e.Times(context.Background(), quantity.New(10, unit.Per(A, B)), quantity.New(5, unit.Per(B, C)))
			assert.NoError(t, err)
			assert.Contains(t, out.String(), "unit algebra identity applied")
			assert.Contains(t, out.String(), quantity.QuotientChain.Name)
		})

		s.Test("failures are logged at debug level", func(t *testcase.T) {
			logger, out := logging.Stub(t)
			e := quantity.Engine{Logger: logger}

			_, err := e.Times(context.Background(), quantity.New(1, units.Meter), quantity.New(1, units.Stone))
			assert.Error(t, err)
			assert.Contains(t, out.String(), "unit algebra operation failed")
		})
	})
}

func assertWithin(tb testing.TB, want, got, tolerance decimal.Decimal) {
	tb.Helper()
	assert.True(tb, got.Sub(want).Abs().LessThanOrEqual(tolerance),
		assert.MessageF("%s is not within %s of %s", got, tolerance, want))
}

func TestEngine_commutativity(t *testing.T) {
	s := testcase.NewSpec(t)

	operands := []quantity.Value{
		quantity.New(3, A),
		quantity.New(5, units.Meter),
		quantity.New(7, unit.Per(A, B)),
		quantity.New(11, unit.Per(B, C)),
		quantity.New(13, unit.Times(A, C)),
		quantity.New(17, unit.Inverse(A)),
		quantity.New(19, unit.Inverse(unit.Times(A, B))),
		quantity.New(23, unit.One),
	}

	s.Test("a×b and b×a have the same magnitude and dimension", func(t *testcase.T) {
		for _, a := range operands {
			for _, b := range operands {
				ab, err := a.Times(b)
				assert.NoError(t, err)
				ba, err := b.Times(a)
				assert.NoError(t, err)

				assert.True(t, ab.Magnitude().Equal(ba.Magnitude()))
				assert.True(t, unit.Equivalent(ab.Unit(), ba.Unit()),
					assert.MessageF("%s × %s = %s, but %s × %s = %s", a, b, ab, b, a, ba))
			}
		}
	})

	s.Test("a÷b is the reciprocal dimension of b÷a", func(t *testcase.T) {
		for _, a := range operands {
			for _, b := range operands {
				ab, err := a.Div(b)
				assert.NoError(t, err)
				ba, err := b.Div(a)
				assert.NoError(t, err)

				assert.True(t, unit.Equivalent(ab.Unit(), unit.Invert(ba.Unit())))
			}
		}
	})
}

func TestFor(t *testing.T) {
	for _, sys := range measurement.Systems() {
		e, err := quantity.For(sys)
		assert.NoError(t, err)
		assert.Equal(t, sys, e.Constraint)
	}

	e, err := quantity.For(measurement.None)
	assert.NoError(t, err)
	assert.True(t, e.Constraint.IsZero())

	_, err = quantity.For(measurement.System(1 << 4))
	assert.ErrorIs(t, err, measurement.ErrUnknownSystem)
}

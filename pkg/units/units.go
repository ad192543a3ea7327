// Package units is a catalog of defined units, grouped by the quantity they measure.
//
// Each unit is tagged with the measurement systems it belongs to,
// so combining a metric unit with a UK-only unit is rejected by the algebra engine.
// Conversion between the units of the same quantity is not part of this package.
package units

import (
	"fmt"
	"sort"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/unitkit/pkg/unit"
)

const ErrNotFound errorkit.Error = "ErrNotFound"

var catalog = map[string]unit.Atom{}

func register(a unit.Atom) unit.Atom {
	if _, ok := catalog[a.Symbol]; ok {
		panic(fmt.Sprintf("duplicate unit symbol: %s", a.Symbol))
	}
	catalog[a.Symbol] = a
	return a
}

// Lookup finds a catalog unit by its symbol.
func Lookup(symbol string) (unit.Atom, error) {
	a, ok := catalog[symbol]
	if !ok {
		return unit.Atom{}, ErrNotFound.F("unit symbol %q", symbol)
	}
	return a, nil
}

// All returns every catalog unit ordered by symbol.
func All() []unit.Atom {
	var out = make([]unit.Atom, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Of returns the catalog units that measure the given quantity.
func Of(q unit.Quantity) []unit.Atom {
	var out []unit.Atom
	for _, a := range All() {
		if a.Quantity == q {
			out = append(out, a)
		}
	}
	return out
}

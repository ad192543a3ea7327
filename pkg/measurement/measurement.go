// Package measurement describes which regulatory measurement systems a unit belongs to.
//
// A System is a set over Metric, UK Imperial and US Customary.
// Composite units belong to the intersection of their parts,
// so two units can only be combined when their systems overlap.
package measurement

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrUnknownSystem errorkit.Error = "ErrUnknownSystem"

type System uint8

const (
	Metric System = 1 << iota
	UKImperial
	USCustomary
)

const (
	None        System = 0
	Imperial           = UKImperial | USCustomary
	MetricAndUK        = Metric | UKImperial
	MetricAndUS        = Metric | USCustomary
	Generic            = Metric | UKImperial | USCustomary
)

var names = map[System]string{
	None:        "none",
	Metric:      "metric",
	UKImperial:  "uk-imperial",
	USCustomary: "us-customary",
	Imperial:    "imperial",
	MetricAndUK: "metric+uk",
	MetricAndUS: "metric+us",
	Generic:     "generic",
}

// Systems enumerates every valid constraint, from the most specific to the generic one.
func Systems() []System {
	return []System{Metric, UKImperial, USCustomary, Imperial, MetricAndUK, MetricAndUS, Generic}
}

func (s System) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("system(%03b)", uint8(s))
}

func (s System) IsZero() bool { return s == None }

func (s System) Intersect(oth System) System { return s & oth }

func (s System) Union(oth System) System { return s | oth }

// Contains reports whether every system in oth is also part of s.
// A Generic unit contains Metric, but a Metric unit doesn't contain Imperial.
func (s System) Contains(oth System) bool {
	return s&oth == oth
}

// Overlaps reports whether s and oth share at least one measurement system.
func (s System) Overlaps(oth System) bool {
	return s&oth != None
}

func (s System) Validate() error {
	if s == None {
		return ErrUnknownSystem.F("empty measurement system")
	}
	if s&^Generic != 0 {
		return ErrUnknownSystem.F("unknown measurement system bits: %03b", uint8(s))
	}
	return nil
}

func Parse(raw string) (System, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for sys, name := range names {
		if sys == None {
			continue
		}
		if name == raw {
			return sys, nil
		}
	}
	return None, ErrUnknownSystem.F("%q", raw)
}

package units

import (
	"go.llib.dev/unitkit/pkg/measurement"
	"go.llib.dev/unitkit/pkg/unit"
)

var (
	Millimeter = register(unit.Define("mm", "millimeter", unit.Length, measurement.Metric))
	Centimeter = register(unit.Define("cm", "centimeter", unit.Length, measurement.Metric))
	Meter      = register(unit.Define("m", "meter", unit.Length, measurement.Metric))
	Kilometer  = register(unit.Define("km", "kilometer", unit.Length, measurement.Metric))

	Inch = register(unit.Define("in", "inch", unit.Length, measurement.Imperial))
	Foot = register(unit.Define("ft", "foot", unit.Length, measurement.Imperial))
	Yard = register(unit.Define("yd", "yard", unit.Length, measurement.Imperial))
	Mile = register(unit.Define("mi", "mile", unit.Length, measurement.Imperial))
)

var (
	Milligram = register(unit.Define("mg", "milligram", unit.Mass, measurement.Metric))
	Gram      = register(unit.Define("g", "gram", unit.Mass, measurement.Metric))
	Kilogram  = register(unit.Define("kg", "kilogram", unit.Mass, measurement.Metric))
	// Tonne is still in everyday use in the UK next to the metric system.
	Tonne = register(unit.Define("t", "tonne", unit.Mass, measurement.MetricAndUK))

	Ounce = register(unit.Define("oz", "ounce", unit.Mass, measurement.Imperial))
	Pound = register(unit.Define("lb", "pound", unit.Mass, measurement.Imperial))
	Stone = register(unit.Define("st", "stone", unit.Mass, measurement.UKImperial))

	ShortTon = register(unit.Define("ton_us", "short ton", unit.Mass, measurement.USCustomary))
	LongTon  = register(unit.Define("ton_uk", "long ton", unit.Mass, measurement.UKImperial))
)

var (
	Millisecond = register(unit.Define("ms", "millisecond", unit.Time, measurement.Generic))
	Second      = register(unit.Define("s", "second", unit.Time, measurement.Generic))
	Minute      = register(unit.Define("min", "minute", unit.Time, measurement.Generic))
	Hour        = register(unit.Define("h", "hour", unit.Time, measurement.Generic))
	Day         = register(unit.Define("d", "day", unit.Time, measurement.Generic))
)

var (
	Milliliter = register(unit.Define("ml", "milliliter", unit.Volume, measurement.Metric))
	Liter      = register(unit.Define("l", "liter", unit.Volume, measurement.Metric))

	ImperialPint   = register(unit.Define("pt_imp", "imperial pint", unit.Volume, measurement.UKImperial))
	ImperialGallon = register(unit.Define("gal_imp", "imperial gallon", unit.Volume, measurement.UKImperial))

	USFluidOunce = register(unit.Define("fl_oz_us", "US fluid ounce", unit.Volume, measurement.USCustomary))
	USPint       = register(unit.Define("pt_us", "US pint", unit.Volume, measurement.USCustomary))
	USGallon     = register(unit.Define("gal_us", "US gallon", unit.Volume, measurement.USCustomary))
)

var (
	Hectare = register(unit.Define("ha", "hectare", unit.Area, measurement.Metric))
	Acre    = register(unit.Define("ac", "acre", unit.Area, measurement.Imperial))
)

var (
	Kelvin     = register(unit.Define("K", "kelvin", unit.Temperature, measurement.Metric))
	Celsius    = register(unit.Define("°C", "celsius", unit.Temperature, measurement.MetricAndUK))
	Fahrenheit = register(unit.Define("°F", "fahrenheit", unit.Temperature, measurement.USCustomary))
)

var (
	Ampere  = register(unit.Define("A", "ampere", unit.ElectricCurrent, measurement.Generic))
	Mole    = register(unit.Define("mol", "mole", unit.AmountOfSubstance, measurement.Generic))
	Candela = register(unit.Define("cd", "candela", unit.LuminousIntensity, measurement.Generic))
)

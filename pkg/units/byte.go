package units

import (
	"go.llib.dev/unitkit/pkg/measurement"
	"go.llib.dev/unitkit/pkg/unit"
)

// Units of digital information.
// Historically, the byte was the number of bits used to encode a single character of text in a computer
// and for this reason it is the smallest addressable unit of memory in many computer architectures.
// They are valid in every measurement system.
//
// | IEC          | Memory       |
// |--------------|--------------|
// | B   byte     | B   byte     |
// | KiB kibibyte | KB  kilobyte |
// | MiB mebibyte | MB  megabyte |
// | GiB gibibyte | GB  gigabyte |
// | TiB tebibyte | TB  terabyte |
// | PiB pebibyte | –            |
var (
	Bit      = information("bit", "bit")
	Byte     = information("B", "byte")
	Kibibyte = information("KiB", "kibibyte")
	Mebibyte = information("MiB", "mebibyte")
	Gibibyte = information("GiB", "gibibyte")
	Tebibyte = information("TiB", "tebibyte")
	Pebibyte = information("PiB", "pebibyte")
)

var (
	Kilobyte = information("KB", "kilobyte")
	Megabyte = information("MB", "megabyte")
	Gigabyte = information("GB", "gigabyte")
	Terabyte = information("TB", "terabyte")
)

func information(symbol, name string) unit.Atom {
	return register(unit.Define(symbol, name, unit.Information, measurement.Generic))
}

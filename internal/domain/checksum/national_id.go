package checksum

import (
	"strconv"

	domainerrors "storefront/internal/domain/errors"
)

// controlLetters is indexed by the identifier number modulo 23. NIF and NIE
// share the same table.
const controlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

const nationalIDLength = 9

// NIE prefixes and the digit each one stands for.
var niePrefixes = map[byte]byte{
	'X': '0',
	'Y': '1',
	'Z': '2',
}

// NationalIDFormat tells the two identifier shapes apart.
type NationalIDFormat int

const (
	FormatUnknown NationalIDFormat = iota
	FormatNIF                      // 8 digits + letter
	FormatNIE                      // X/Y/Z + 7 digits + letter
)

// String returns the conventional name of the format.
func (f NationalIDFormat) String() string {
	switch f {
	case FormatNIF:
		return "NIF"
	case FormatNIE:
		return "NIE"
	default:
		return "unknown"
	}
}

// DetectNationalIDFormat classifies id by shape only; it does not check the letter.
func DetectNationalIDFormat(id string) NationalIDFormat {
	if len(id) != nationalIDLength || !isUpperLetter(id[8]) {
		return FormatUnknown
	}

	switch {
	case isDigits(id[:8]):
		return FormatNIF
	case niePrefixes[id[0]] != 0 && isDigits(id[1:8]):
		return FormatNIE
	default:
		return FormatUnknown
	}
}

// NationalIDControlLetter computes the control letter the identifier should carry.
func NationalIDControlLetter(id string) (byte, error) {
	var body string

	switch DetectNationalIDFormat(id) {
	case FormatNIF:
		body = id[:8]
	case FormatNIE:
		body = string(niePrefixes[id[0]]) + id[1:8]
	default:
		return 0, domainerrors.ErrMalformedInput.WithDetailsf("%q is neither a NIF (8 digits + letter) nor a NIE (X/Y/Z + 7 digits + letter)", id)
	}

	number, err := strconv.Atoi(body)
	if err != nil {
		return 0, domainerrors.ErrMalformedInput.WithDetailsf("national id body %q is not numeric", body)
	}

	return controlLetters[number%len(controlLetters)], nil
}

// ValidateNationalID reports whether id is a NIF or NIE whose trailing letter
// matches the computed control letter. A wrong letter returns ErrInvalidChecksum,
// an unrecognised shape returns ErrMalformedInput.
func ValidateNationalID(id string) (bool, error) {
	expected, err := NationalIDControlLetter(id)
	if err != nil {
		return false, err
	}

	if id[8] != expected {
		return false, domainerrors.ErrInvalidChecksum.WithDetailsf("control letter of %s %s should be %c", DetectNationalIDFormat(id), id, expected)
	}

	return true, nil
}

func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

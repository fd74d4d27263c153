// Package checksum computes and verifies the check characters of the
// identifiers used across the catalog: EAN-13 barcodes and Spanish
// NIF/NIE national identifiers.
package checksum

import (
	domainerrors "storefront/internal/domain/errors"
)

// EAN13Length is the number of digits in an EAN-13 barcode.
const EAN13Length = 13

// EAN13CheckDigit computes the check digit for a 12-digit payload.
// Digits at even zero-based positions weigh 1, odd positions weigh 3.
func EAN13CheckDigit(payload string) (int, error) {
	if len(payload) != EAN13Length-1 || !isDigits(payload) {
		return 0, domainerrors.ErrMalformedInput.WithDetailsf("EAN-13 payload must be %d digits, got %q", EAN13Length-1, payload)
	}

	sum := 0
	for pos := 0; pos < len(payload); pos++ {
		digit := int(payload[pos] - '0')
		if pos%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}

	// The outer modulo maps a sum that is already a multiple of ten to 0, not 10.
	return (10 - sum%10) % 10, nil
}

// ValidateEAN13 reports whether code is a well-formed EAN-13 barcode whose last
// digit matches the computed check digit. A mismatch returns ErrInvalidChecksum,
// a value that is not 13 ASCII digits returns ErrMalformedInput.
func ValidateEAN13(code string) (bool, error) {
	if len(code) != EAN13Length || !isDigits(code) {
		return false, domainerrors.ErrMalformedInput.WithDetailsf("EAN-13 code must be %d digits, got %q", EAN13Length, code)
	}

	expected, err := EAN13CheckDigit(code[:EAN13Length-1])
	if err != nil {
		return false, err
	}

	supplied := int(code[EAN13Length-1] - '0')
	if expected != supplied {
		return false, domainerrors.ErrInvalidChecksum.WithDetailsf("EAN-13 check digit of %s should be %d", code, expected)
	}

	return true, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

package checksum

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEAN13(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "valid macbook barcode", code: "1237894563215"},
		{name: "valid iphone barcode", code: "7351982406735"},
		{name: "valid shirt barcode", code: "1122334455666"},
		{name: "valid hat barcode", code: "4624768392045"},
		{name: "weighted sum multiple of ten", code: "5000000000050"},
		{name: "all zeros", code: "0000000000000"},
		{name: "wrong check digit", code: "1237894563216", wantErr: domainerrors.ErrInvalidChecksum},
		{name: "wrong check digit from seed data", code: "4482710978306", wantErr: domainerrors.ErrInvalidChecksum},
		{name: "too short", code: "123789456321", wantErr: domainerrors.ErrMalformedInput},
		{name: "too long", code: "12378945632150", wantErr: domainerrors.ErrMalformedInput},
		{name: "non digit", code: "12378945632A5", wantErr: domainerrors.ErrMalformedInput},
		{name: "empty", code: "", wantErr: domainerrors.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, err := ValidateEAN13(tt.code)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)

				return
			}

			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestEAN13CheckDigit_MatchesLastDigitOfEveryValidCode(t *testing.T) {
	t.Parallel()

	// Every payload admits exactly one accepted check digit.
	payloads := []string{"123789456321", "735198240673", "500000000005", "978030640615", "000000000001"}
	for _, payload := range payloads {
		digit, err := EAN13CheckDigit(payload)
		require.NoError(t, err)

		for candidate := 0; candidate <= 9; candidate++ {
			code := payload + string(rune('0'+candidate))
			ok, err := ValidateEAN13(code)
			if candidate == digit {
				assert.True(t, ok, code)
				assert.NoError(t, err, code)
			} else {
				assert.False(t, ok, code)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidChecksum, code)
			}
		}
	}
}

func TestEAN13CheckDigit_RejectsBadPayload(t *testing.T) {
	t.Parallel()

	_, err := EAN13CheckDigit("12345")
	assert.ErrorIs(t, err, domainerrors.ErrMalformedInput)
}

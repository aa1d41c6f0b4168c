package product

import (
	"strings"
	"testing"

	"gimie/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateCurrency(t *testing.T) {
	v := NewValidator(domain.SupportedCodes())

	code, err := v.ValidateCurrency(" brl ")
	require.NoError(t, err)
	require.Equal(t, domain.BRL, code)

	_, err = v.ValidateCurrency("")
	require.ErrorIs(t, err, ErrCurrencyRequired)

	_, err = v.ValidateCurrency("CHF")
	require.ErrorIs(t, err, ErrCurrencyUnsupported)

	_, err = v.ValidateCurrency("DOLLARS")
	require.ErrorIs(t, err, ErrCurrencyUnsupported)
}

func TestValidator_ValidateURL(t *testing.T) {
	v := NewValidator(domain.SupportedCodes())

	got, err := v.ValidateURL("  https://www.amazon.com.br/p/1 ")
	require.NoError(t, err)
	require.Equal(t, "https://www.amazon.com.br/p/1", got)

	for _, raw := range []string{
		"",
		"http://a",
		"ftp://files.example.com/x",
		"www.amazon.com.br/p/1",
		"https:///only-path",
		"https://example.com/" + strings.Repeat("a", 2048),
	} {
		_, err = v.ValidateURL(raw)
		require.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestValidator_ValidateUpdate(t *testing.T) {
	v := NewValidator(domain.SupportedCodes())
	str := func(s string) *string { return &s }

	require.ErrorIs(t, v.ValidateUpdate(domain.ProductUpdate{}), ErrEmptyUpdate)
	require.ErrorIs(t, v.ValidateUpdate(domain.ProductUpdate{Name: str("  ")}), ErrInvalidName)
	require.ErrorIs(t, v.ValidateUpdate(domain.ProductUpdate{Name: str(strings.Repeat("x", 256))}), ErrInvalidName)
	require.ErrorIs(t, v.ValidateUpdate(domain.ProductUpdate{Description: str(strings.Repeat("x", 1001))}), ErrInvalidDescription)
	require.ErrorIs(t, v.ValidateUpdate(domain.ProductUpdate{Image: str("not a url")}), ErrInvalidImage)

	require.NoError(t, v.ValidateUpdate(domain.ProductUpdate{
		Name:        str("Fone"),
		Price:       str("R$ 10,00"),
		Image:       str("https://img.example/a.jpg"),
		Description: str("ok"),
	}))
}

func TestValidator_SupportedCodes_ReturnsCopy(t *testing.T) {
	v := NewValidator(domain.SupportedCodes())

	got := v.SupportedCodes()
	require.Equal(t, domain.SupportedCodes(), got)

	got[0] = "XXX"
	require.Equal(t, domain.BRL, v.SupportedCodes()[0])
}

func TestNewValidator_ClonesInput(t *testing.T) {
	codes := []domain.Code{domain.USD, domain.EUR}
	v := NewValidator(codes)
	codes[0] = domain.JPY

	require.Equal(t, []domain.Code{domain.USD, domain.EUR}, v.SupportedCodes())
}

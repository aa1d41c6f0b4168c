package price

import (
	"testing"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	e := NewExtractor()

	_, ok := e.Extract("")
	require.False(t, ok)
	_, ok = e.Extract("   \n\t")
	require.False(t, ok)
}

func TestExtractor_Extract_NoPrice(t *testing.T) {
	e := NewExtractor()

	_, ok := e.Extract("A lovely product with no price mentioned at all")
	require.False(t, ok)
}

func TestExtractor_Extract_BRLSentence(t *testing.T) {
	e := NewExtractor()

	m, ok := e.Extract("Produto incrível por apenas R$ 299,90")

	require.True(t, ok)
	require.Equal(t, domain.BRL, m.Currency)
	require.True(t, decimal.RequireFromString("299.90").Equal(m.Amount), m.Amount.String())
	require.Equal(t, "R$ 299,90", m.OriginalText)
	require.Equal(t, "R$ 299,90", m.Formatted)
}

func TestExtractor_Extract_USDSentence(t *testing.T) {
	e := NewExtractor()

	m, ok := e.Extract("Amazing product for only $199.99")

	require.True(t, ok)
	require.Equal(t, domain.USD, m.Currency)
	require.True(t, decimal.RequireFromString("199.99").Equal(m.Amount), m.Amount.String())
	require.Equal(t, "$ 199.99", m.Formatted)
}

func TestExtractor_Extract_Patterns(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		currency domain.Code
		amount   string
		original string
	}{
		{name: "brl symbol grouped", text: "Oferta R$ 1.234,56 hoje", currency: domain.BRL, amount: "1234.56", original: "R$ 1.234,56"},
		{name: "brl word", text: "custa 1234,56 reais", currency: domain.BRL, amount: "1234.56", original: "1234,56 reais"},
		{name: "brl label", text: "Preço: 89,90 no pix", currency: domain.BRL, amount: "89.90", original: "Preço: 89,90"},
		{name: "usd word", text: "only 25 dollars", currency: domain.USD, amount: "25", original: "25 dollars"},
		{name: "usd label", text: "Price: 1,299.00 today", currency: domain.USD, amount: "1299.00", original: "Price: 1,299.00"},
		{name: "usd iso", text: "costs USD 50", currency: domain.USD, amount: "50", original: "USD 50"},
		{name: "eur symbol", text: "Fantastisches Produkt für nur €149,99", currency: domain.EUR, amount: "149.99", original: "€149,99"},
		{name: "eur word", text: "solo 1.050,00 euros", currency: domain.EUR, amount: "1050.00", original: "1.050,00 euros"},
		{name: "eur iso", text: "EUR 12,50", currency: domain.EUR, amount: "12.50", original: "EUR 12,50"},
		{name: "gbp symbol", text: "now £10.50", currency: domain.GBP, amount: "10.50", original: "£10.50"},
		{name: "gbp word", text: "just 3 pounds", currency: domain.GBP, amount: "3", original: "3 pounds"},
		{name: "jpy symbol", text: "¥12,800 tax incl.", currency: domain.JPY, amount: "12800", original: "¥12,800"},
		{name: "jpy word", text: "500 yen each", currency: domain.JPY, amount: "500", original: "500 yen"},
		{name: "cad iso", text: "CAD 15.25 shipped", currency: domain.CAD, amount: "15.25", original: "CAD 15.25"},
		{name: "aud iso", text: "AUD 99", currency: domain.AUD, amount: "99", original: "AUD 99"},
		{name: "mxn iso", text: "MXN 1,500.00", currency: domain.MXN, amount: "1500.00", original: "MXN 1,500.00"},
	}

	e := NewExtractor()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := e.Extract(tc.text)
			require.True(t, ok)
			require.Equal(t, tc.currency, m.Currency)
			require.Equal(t, tc.original, m.OriginalText)
			require.True(t, decimal.RequireFromString(tc.amount).Equal(m.Amount), "got %s", m.Amount)
		})
	}
}

func TestExtractor_Extract_FirstCurrencyInCanonicalOrderWins(t *testing.T) {
	e := NewExtractor()

	// EUR appears first in the text, but USD precedes EUR in the priority list.
	m, ok := e.Extract("€45 or $50")

	require.True(t, ok)
	require.Equal(t, domain.USD, m.Currency)
	require.True(t, decimal.NewFromInt(50).Equal(m.Amount))
}

func TestExtractor_Extract_DollarPrefixedVariantsReportUSD(t *testing.T) {
	e := NewExtractor()

	// "$" is a USD pattern and USD is checked before CAD.
	m, ok := e.Extract("C$ 20.00")

	require.True(t, ok)
	require.Equal(t, domain.USD, m.Currency)
	require.True(t, decimal.RequireFromString("20.00").Equal(m.Amount))
}

func TestExtractor_FormatRoundTrip(t *testing.T) {
	amounts := []string{"0.99", "12.34", "199.99", "1234.56", "987654.32"}

	e := NewExtractor()
	for _, code := range domain.SupportedCodes() {
		for _, a := range amounts {
			amount := decimal.RequireFromString(a)
			text := "Great deal: " + FormatPrice(amount, code) + " only this week"

			m, ok := e.Extract(text)

			require.True(t, ok, "%s %s: %q", code, a, text)
			diff := m.Amount.Sub(amount).Abs()
			require.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")) ||
				(code == domain.JPY && diff.LessThanOrEqual(decimal.RequireFromString("0.5"))),
				"%s %s: got %s from %q", code, a, m.Amount, text)
		}
	}
}

func TestExtractor_Extract_EnglishRealIsNotBRL(t *testing.T) {
	e := NewExtractor()

	cases := map[string]string{
		"Top 3 really good headphones, now only $49.99": "49.99",
		"2 realistic figures for $15.00":                "15.00",
		"Made of 100 real leather, price $120.00":       "120.00",
	}
	for text, amount := range cases {
		m, ok := e.Extract(text)

		require.True(t, ok, text)
		require.Equal(t, domain.USD, m.Currency, text)
		require.True(t, decimal.RequireFromString(amount).Equal(m.Amount), "%q: got %s", text, m.Amount)
	}
}

func TestExtractor_Extract_UnicodeWhitespaceAfterSymbol(t *testing.T) {
	e := NewExtractor()

	m, ok := e.Extract("R$\f10,00")

	require.True(t, ok)
	require.Equal(t, domain.BRL, m.Currency)
	require.True(t, decimal.RequireFromString("10.00").Equal(m.Amount), m.Amount.String())
}

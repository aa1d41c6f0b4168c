package price

import (
	"net/url"
	"sort"
	"strings"

	"gimie/internal/domain"

	"golang.org/x/net/publicsuffix"
)

type domainCurrency struct {
	suffix   string
	currency domain.Code
}

var domainCurrencies = sortedBySpecificity([]domainCurrency{
	{"amazon.com.br", domain.BRL},
	{"mercadolivre.com.br", domain.BRL},
	{"magazineluiza.com.br", domain.BRL},
	{"americanas.com.br", domain.BRL},
	{"submarino.com.br", domain.BRL},
	{"shoptime.com.br", domain.BRL},
	{"amazon.com", domain.USD},
	{"amazon.ca", domain.CAD},
	{"amazon.co.uk", domain.GBP},
	{"amazon.de", domain.EUR},
	{"amazon.fr", domain.EUR},
	{"amazon.it", domain.EUR},
	{"amazon.es", domain.EUR},
	{"amazon.co.jp", domain.JPY},
	{"amazon.com.mx", domain.MXN},
	{"amazon.com.au", domain.AUD},
	{"ebay.com", domain.USD},
	{"ebay.co.uk", domain.GBP},
	{"ebay.de", domain.EUR},
	{"ebay.fr", domain.EUR},
	{"ebay.it", domain.EUR},
	{"ebay.es", domain.EUR},
	{"ebay.ca", domain.CAD},
	{"ebay.com.au", domain.AUD},
})

// longest suffix first, so amazon.com.br wins over amazon.com
func sortedBySpecificity(in []domainCurrency) []domainCurrency {
	sort.SliceStable(in, func(i, j int) bool { return len(in[i].suffix) > len(in[j].suffix) })
	return in
}

// DetectCurrencyFromDomain infers the store currency from the URL host.
// Anything unparseable or unknown yields USD.
func DetectCurrencyFromDomain(rawURL string) domain.Code {
	host := hostOf(rawURL)
	if host == "" {
		return domain.USD
	}
	for _, dc := range domainCurrencies {
		if host == dc.suffix || strings.HasSuffix(host, "."+dc.suffix) {
			return dc.currency
		}
	}
	return domain.USD
}

// SiteFromURL returns the registrable domain of the URL host, e.g.
// "amazon.com.br" for "https://www.amazon.com.br/p".
func SiteFromURL(rawURL string) string {
	host := hostOf(rawURL)
	if host == "" {
		return "unknown"
	}
	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return strings.TrimPrefix(host, "www.")
	}
	return site
}

func hostOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

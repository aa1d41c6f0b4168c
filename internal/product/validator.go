package product

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"gimie/internal/domain"
)

const (
	minURLLength         = 10
	maxURLLength         = 2048
	maxNameLength        = 255
	maxDescriptionLength = 1000
)

var (
	ErrCurrencyRequired    = errors.New("currency is required")
	ErrCurrencyUnsupported = domain.ErrUnsupportedCurrency
	ErrInvalidURL          = errors.New("url must be a valid http or https url between 10 and 2048 characters")
	ErrEmptyUpdate         = errors.New("at least one field must be provided")
	ErrInvalidName         = errors.New("product name must be between 1 and 255 characters")
	ErrInvalidDescription  = errors.New("description must be less than 1000 characters")
	ErrInvalidImage        = errors.New("image must be a valid url")
)

type Validator struct {
	supportedCodesSet map[domain.Code]struct{} // read only
	supportedCodesLst []domain.Code            // read only, canonical order
}

// ValidateCurrency parses raw and checks it is one of the supported codes.
func (v *Validator) ValidateCurrency(raw string) (domain.Code, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrCurrencyRequired
	}
	code, err := domain.ParseCode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrCurrencyUnsupported, strings.TrimSpace(raw))
	}
	if _, ok := v.supportedCodesSet[code]; !ok {
		return "", fmt.Errorf("%w: %q", ErrCurrencyUnsupported, code)
	}
	return code, nil
}

// ValidateURL accepts absolute http(s) URLs only and returns them trimmed.
func (v *Validator) ValidateURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) < minURLLength || len(s) > maxURLLength {
		return "", ErrInvalidURL
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return "", ErrInvalidURL
	}
	return s, nil
}

func (v *Validator) ValidateUpdate(upd domain.ProductUpdate) error {
	if upd.IsEmpty() {
		return ErrEmptyUpdate
	}
	if upd.Name != nil {
		n := utf8.RuneCountInString(strings.TrimSpace(*upd.Name))
		if n < 1 || n > maxNameLength {
			return ErrInvalidName
		}
	}
	if upd.Description != nil && utf8.RuneCountInString(*upd.Description) > maxDescriptionLength {
		return ErrInvalidDescription
	}
	if upd.Image != nil && *upd.Image != "" {
		u, err := url.Parse(*upd.Image)
		if err != nil || !u.IsAbs() || u.Hostname() == "" {
			return ErrInvalidImage
		}
	}
	return nil
}

func (v *Validator) SupportedCodes() []domain.Code {
	return slices.Clone(v.supportedCodesLst)
}

func NewValidator(supported []domain.Code) *Validator {
	set := make(map[domain.Code]struct{}, len(supported))
	for _, c := range supported {
		set[c] = struct{}{}
	}
	return &Validator{
		supportedCodesSet: set,
		supportedCodesLst: slices.Clone(supported),
	}
}

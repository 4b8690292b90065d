package phone

import (
	stderrors "errors"

	errs "github.com/vortex-fintech/zimphone/errors"
)

// ErrInvalidNumber is returned by the formatting functions for input that
// is neither a valid mobile nor a valid landline number.
var ErrInvalidNumber = stderrors.New("invalid phone number provided")

const (
	numberField         = "number"
	invalidNumberReason = "invalid_number"
)

func invalidNumber() error {
	return errs.DomainInvariantOf(ErrInvalidNumber, numberField, invalidNumberReason)
}

// Formats holds both canonical renderings of a number.
type Formats struct {
	Local         string `json:"local"`
	International string `json:"international"`
}

func validCore(raw string) (string, bool) {
	core := ExtractCore(raw)
	if classifyCore(core) == Invalid {
		return "", false
	}
	return core, true
}

// FormatLocal renders raw as "0" followed by the nine core digits.
func FormatLocal(raw string) (string, error) {
	core, ok := validCore(raw)
	if !ok {
		return "", invalidNumber()
	}
	return trunkPrefix + core, nil
}

// FormatInternational renders raw as "+263" followed by the nine core digits.
func FormatInternational(raw string) (string, error) {
	core, ok := validCore(raw)
	if !ok {
		return "", invalidNumber()
	}
	return internationalPrefix + core, nil
}

// FormatBoth returns the local and international forms together.
func FormatBoth(raw string) (Formats, error) {
	core, ok := validCore(raw)
	if !ok {
		return Formats{}, invalidNumber()
	}
	return Formats{
		Local:         trunkPrefix + core,
		International: internationalPrefix + core,
	}, nil
}

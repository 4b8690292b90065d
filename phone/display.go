package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// regionCode is the ISO 3166-1 region handed to the libphonenumber layout rules.
const regionCode = "ZW"

// DisplayStyle selects a human-readable layout for FormatDisplay.
type DisplayStyle int

const (
	StyleE164 DisplayStyle = iota
	StyleInternational
	StyleNational
	StyleRFC3966
)

var displayFormats = map[DisplayStyle]phonenumbers.PhoneNumberFormat{
	StyleE164:          phonenumbers.E164,
	StyleInternational: phonenumbers.INTERNATIONAL,
	StyleNational:      phonenumbers.NATIONAL,
	StyleRFC3966:       phonenumbers.RFC3966,
}

func (s DisplayStyle) String() string {
	switch s {
	case StyleE164:
		return "e164"
	case StyleInternational:
		return "international"
	case StyleNational:
		return "national"
	case StyleRFC3966:
		return "rfc3966"
	default:
		return fmt.Sprintf("DisplayStyle(%d)", int(s))
	}
}

// FormatDisplay validates raw with the local prefix tables and then lays it
// out in the requested style. Only digit grouping comes from libphonenumber.
// Input whose core does not survive parsing unchanged (letters in the
// subscriber part, say) is rejected with ErrInvalidNumber.
func FormatDisplay(raw string, style DisplayStyle) (string, error) {
	format, ok := displayFormats[style]
	if !ok {
		return "", fmt.Errorf("phone: unknown display style %s", style)
	}

	intl, err := FormatInternational(raw)
	if err != nil {
		return "", err
	}

	num, err := phonenumbers.Parse(intl, regionCode)
	if err != nil {
		return "", fmt.Errorf("phone: parse %s: %w", Mask(raw), err)
	}
	if phonenumbers.GetNationalSignificantNumber(num) != ExtractCore(raw) {
		return "", fmt.Errorf("phone: %s not representable: %w", Mask(raw), invalidNumber())
	}
	return phonenumbers.Format(num, format), nil
}

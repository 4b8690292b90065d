package phone

// NumberType is the classification of a number.
type NumberType string

const (
	Mobile   NumberType = "mobile"
	Landline NumberType = "landline"
	Invalid  NumberType = "invalid"
)

func (t NumberType) String() string { return string(t) }

func isMobileCore(core string) bool {
	if len(core) != coreLen || core[0] != '7' {
		return false
	}
	_, ok := mobilePrefixSet[discriminator(core)]
	return ok
}

func isLandlineCore(core string) bool {
	if len(core) != coreLen {
		return false
	}
	_, ok := areaCodeSet[discriminator(core)]
	return ok
}

func classifyCore(core string) NumberType {
	switch {
	case isMobileCore(core):
		return Mobile
	case isLandlineCore(core):
		return Landline
	default:
		return Invalid
	}
}

// IsValid reports whether raw is a valid Zimbabwean mobile or landline number.
func IsValid(raw string) bool {
	if raw == "" {
		return false
	}
	return classifyCore(ExtractCore(raw)) != Invalid
}

// IsValidValue is IsValid for dynamically typed input; non-strings are invalid.
func IsValidValue(v any) bool {
	return IsValid(ValueOf(v))
}

// NumberTypeOf classifies raw. Mobile wins over landline.
func NumberTypeOf(raw string) NumberType {
	return classifyCore(ExtractCore(raw))
}

// IsMobile reports whether raw classifies as Mobile.
func IsMobile(raw string) bool { return NumberTypeOf(raw) == Mobile }

// IsLandline reports whether raw classifies as Landline.
func IsLandline(raw string) bool { return NumberTypeOf(raw) == Landline }

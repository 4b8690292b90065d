package phone

// Info is the aggregate description of a number. String fields that do not
// apply are left empty.
type Info struct {
	IsValid       bool       `json:"isValid"`
	Type          NumberType `json:"type"`
	Local         string     `json:"local,omitempty"`
	International string     `json:"international,omitempty"`
	Carrier       string     `json:"carrier,omitempty"`
	Area          string     `json:"area,omitempty"`
}

// GetInfo classifies raw once and fills in the fields that apply: both
// formats for any valid number, plus Carrier for mobiles or Area for landlines.
func GetInfo(raw string) Info {
	core := ExtractCore(raw)
	typ := classifyCore(core)
	info := Info{IsValid: typ != Invalid, Type: typ}
	if !info.IsValid {
		return info
	}

	info.Local = trunkPrefix + core
	info.International = internationalPrefix + core

	switch typ {
	case Mobile:
		info.Carrier, _ = CarrierForPrefix(discriminator(core))
	case Landline:
		info.Area, _ = AreaForCode(discriminator(core))
	}
	return info
}

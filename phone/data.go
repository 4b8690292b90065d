package phone

// CountryCode is the Zimbabwean calling code without the leading '+'.
const CountryCode = "263"

const (
	internationalPrefix = "+" + CountryCode
	trunkPrefix         = "0"

	// coreLen is the subscriber number length once a prefix is stripped.
	coreLen = 9
)

type carrier struct {
	key      string
	name     string
	prefixes []string
}

type area struct {
	city string
	code string
}

// Order matters: DetectCarrier returns the first carrier whose prefix set matches.
var carriers = []carrier{
	{key: "econet", name: "Econet", prefixes: []string{"077", "078"}},
	{key: "netone", name: "NetOne", prefixes: []string{"071"}},
	{key: "telecel", name: "Telecel", prefixes: []string{"073"}},
}

var areas = []area{
	{city: "harare", code: "024"},
	{city: "bulawayo", code: "029"},
	{city: "gweru", code: "054"},
	{city: "mutare", code: "020"},
	{city: "masvingo", code: "039"},
	{city: "kwekwe", code: "055"},
	{city: "chinhoyi", code: "067"},
	{city: "marondera", code: "065"},
	{city: "bindura", code: "066"},
}

var (
	mobilePrefixSet = buildMobilePrefixSet()
	areaCodeSet     = buildAreaCodeSet()
)

func buildMobilePrefixSet() map[string]struct{} {
	out := make(map[string]struct{})
	for _, c := range carriers {
		for _, p := range c.prefixes {
			out[p] = struct{}{}
		}
	}
	return out
}

func buildAreaCodeSet() map[string]struct{} {
	out := make(map[string]struct{}, len(areas))
	for _, a := range areas {
		out[a.code] = struct{}{}
	}
	return out
}

// CarrierPrefixes returns a copy of the carrier prefix table keyed by
// lowercase carrier key (econet, netone, telecel).
func CarrierPrefixes() map[string][]string {
	out := make(map[string][]string, len(carriers))
	for _, c := range carriers {
		out[c.key] = append([]string(nil), c.prefixes...)
	}
	return out
}

// AreaCodes returns a copy of the landline area code table keyed by
// lowercase city name.
func AreaCodes() map[string]string {
	out := make(map[string]string, len(areas))
	for _, a := range areas {
		out[a.city] = a.code
	}
	return out
}

// CarrierForPrefix resolves a literal three character prefix such as "077".
func CarrierForPrefix(prefix string) (string, bool) {
	for _, c := range carriers {
		for _, p := range c.prefixes {
			if p == prefix {
				return c.name, true
			}
		}
	}
	return "", false
}

// AreaForCode resolves a literal three character area code such as "024".
func AreaForCode(code string) (string, bool) {
	for _, a := range areas {
		if a.code == code {
			return capitalize(a.city), true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

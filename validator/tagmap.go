package validator

var tagMap = map[string]string{
	"required":    "required",
	"zw_phone":    "invalid_zw_phone",
	"zw_mobile":   "invalid_zw_mobile",
	"zw_landline": "invalid_zw_landline",
	"e164":        "invalid_phone",
	"numeric":     "only_numbers_allowed",
	"max":         "too_long",
	"min":         "too_short",
	"len":         "invalid_length",
	"oneof":       "invalid_choice",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}

package phone

// DetectCarrier returns the carrier display name for a valid mobile number.
// Landlines and invalid input report false.
func DetectCarrier(raw string) (string, bool) {
	core := ExtractCore(raw)
	if !isMobileCore(core) {
		return "", false
	}
	return CarrierForPrefix(discriminator(core))
}

// DetectArea returns the capitalized city for a valid landline number.
// Mobiles and invalid input report false.
func DetectArea(raw string) (string, bool) {
	core := ExtractCore(raw)
	if !isLandlineCore(core) {
		return "", false
	}
	return AreaForCode(discriminator(core))
}

// Package phone validates, classifies and formats Zimbabwean telephone numbers.
//
// Input is free-form: spaces, '-', '(', ')' and '.' are ignored, and one of
// the prefixes "+263", "263" or "0" is stripped to get the nine digit core.
// The core is matched against fixed carrier prefix and landline area code
// tables:
//
//	phone.IsValid("077 212 3456")             // true
//	phone.FormatInternational("0242123456")   // "+263242123456", nil
//	phone.DetectCarrier("+263712123456")      // "NetOne", true
//	phone.GetInfo("0242123456").Area          // "Harare"
//
// The package functions are pure. Classifier wraps them with logging,
// metrics and optional full-width folding.
package phone

package validator

import "regexp"

var (
	// localpart@domain.tld with an optional two-letter country suffix (.co.uk).
	// Cases are spelled out: (?i) would fold ſ and the Kelvin sign into ASCII.
	emailRegex = regexp.MustCompile(`^([\w-]+(?:\.[\w-]+)*)@((?:[\w-]+\.)*\w[\w-]{0,66})\.([a-zA-Z]{2,6}(?:\.[a-zA-Z]{2})?)$`)

	englishRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
	digitRegex   = regexp.MustCompile(`^[0-9]+$`)

	// Mainland mobile numbers: 1, then 3/4/5/7/8, then nine digits
	chineseTelRegex = regexp.MustCompile(`^1[34578]\d{9}$`)

	visaCardRegex   = regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)
	masterCardRegex = regexp.MustCompile(`^5[1-5][0-9]{14}$`)

	// Unanchored: a URL embedded in text counts.
	linkRegex = regexp.MustCompile(`https?://([\w.?]+/?)+`)
)

// CJK Unified Ideographs subset accepted by IsAllChinese.
const (
	cjkFirst rune = 0x4E00
	cjkLast  rune = 0x9FA5
)

// IsEmail reports whether s is an email address of the form localpart@domain.tld.
// The top-level suffix is 2-6 letters, optionally followed by a two-letter
// country code. ASCII letters match in either case.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsAllChinese reports whether every rune of s is in the U+4E00..U+9FA5 range.
// The empty string has no offending rune and is therefore reported as true.
// Invalid UTF-8 decodes to U+FFFD and fails the check.
func IsAllChinese(s string) bool {
	for _, r := range s {
		if r < cjkFirst || r > cjkLast {
			return false
		}
	}
	return true
}

// IsAllEnglish reports whether s is non-empty and made of ASCII letters only.
func IsAllEnglish(s string) bool {
	return englishRegex.MatchString(s)
}

// IsAllDigit reports whether s is non-empty and made of ASCII digits only.
func IsAllDigit(s string) bool {
	return digitRegex.MatchString(s)
}

// IsChineseTel reports whether s is an 11-digit mainland mobile number.
func IsChineseTel(s string) bool {
	return chineseTelRegex.MatchString(s)
}

// IsVisaCard reports whether s looks like a 13 or 16 digit Visa number.
// Only the prefix and length are checked, the Luhn digit is not.
func IsVisaCard(s string) bool {
	return visaCardRegex.MatchString(s)
}

// IsMasterCard reports whether s looks like a 16 digit MasterCard number (51-55 prefix).
// Only the prefix and length are checked, the Luhn digit is not.
func IsMasterCard(s string) bool {
	return masterCardRegex.MatchString(s)
}

// IsLink reports whether s contains an http:// or https:// link anywhere in it.
func IsLink(s string) bool {
	return linkRegex.MatchString(s)
}

package validator

import "time"

const idCardLength = 18

var (
	// Position i weights digit i; only the first 17 entries take part in the sum.
	idCardWeights = [idCardLength]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2, 1}

	// Indexed by weighted sum mod 11. 10 stands for the letter X.
	idCardCheckCodes = [11]int{1, 0, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Gender encoded by the sequence digit of an ID number.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IDCardInfo holds the fields decoded from a valid 18-character resident ID number.
type IDCardInfo struct {
	Region    string    // administrative division code, digits 1-6
	BirthDate time.Time // UTC midnight
	Sequence  string    // digits 15-17
	Gender    Gender
	CheckCode string // "0".."9" or "X"
}

// IsChineseIDCard reports whether s is a valid 18-character Chinese resident ID
// number: the embedded birth date must exist on the calendar and the last
// character must match the mod-11 check code of the first 17 digits.
// A trailing x is accepted in either case.
func IsChineseIDCard(s string) bool {
	if len(s) != idCardLength {
		return false
	}
	_, ok := idCardBirthDate(s)
	return ok && idCardChecksumValid(s)
}

// ParseChineseIDCard decodes a resident ID number.
// It returns ErrInvalidIDCard for anything IsChineseIDCard rejects.
func ParseChineseIDCard(s string) (IDCardInfo, error) {
	if !IsChineseIDCard(s) {
		return IDCardInfo{}, ErrInvalidIDCard
	}

	birth, _ := idCardBirthDate(s)
	gender := GenderFemale
	if (s[16]-'0')%2 == 1 {
		gender = GenderMale
	}
	check := s[17:]
	if check == "x" {
		check = "X"
	}

	return IDCardInfo{
		Region:    s[:6],
		BirthDate: birth,
		Sequence:  s[14:17],
		Gender:    gender,
		CheckCode: check,
	}, nil
}

// idCardBirthDate extracts YYYYMMDD at offsets 6..13 and reports whether it is
// a real calendar date. Years below 100 are rejected.
func idCardBirthDate(s string) (time.Time, bool) {
	year, ok := parseDigits(s[6:10])
	if !ok || year < 100 {
		return time.Time{}, false
	}
	month, ok := parseDigits(s[10:12])
	if !ok || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, ok := parseDigits(s[12:14])
	if !ok || day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func idCardChecksumValid(s string) bool {
	sum := 0
	for i := range idCardLength - 1 {
		d, ok := digitValue(s[i])
		if !ok {
			return false
		}
		sum += idCardWeights[i] * d
	}

	var last int
	switch c := s[idCardLength-1]; c {
	case 'X', 'x':
		last = 10
	default:
		d, ok := digitValue(c)
		if !ok {
			return false
		}
		last = d
	}

	return last == idCardCheckCodes[sum%11]
}

// daysIn returns the number of days in month m of year y (Gregorian).
func daysIn(y int, m time.Month) int {
	// day 0 of the next month is the last day of m
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseDigits parses a short run of ASCII digits. Signs, spaces and any other
// byte make it fail, unlike strconv.Atoi which accepts a leading sign.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := range len(s) {
		d, ok := digitValue(s[i])
		if !ok {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

func digitValue(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

package identity

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// CheckPhone normalizes and validates a candidate phone number. Numbers
// without a country code are parsed against the default region.
func CheckPhone(phone, defaultRegion string) domain.PhoneSignals {
	if phone == "" {
		return domain.PhoneSignals{Error: "No phone number provided"}
	}
	res := domain.PhoneSignals{Provided: true, Flags: []string{}}

	raw := phone
	if raw[0] != '+' {
		raw = nonDigitRe.ReplaceAllString(raw, "")
	}
	parsed, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Valid = phonenumbers.IsValidNumber(parsed)
	res.Formatted = phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
	res.Region = phonenumbers.GetRegionCodeForNumber(parsed)

	switch phonenumbers.GetNumberType(parsed) {
	case phonenumbers.MOBILE:
		res.IsMobile = true
	case phonenumbers.VOIP:
		res.IsVOIP = true
		res.Flags = append(res.Flags, "VOIP number - commonly used in fraud schemes")
	}
	return res
}

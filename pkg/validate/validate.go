package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`)
	amountRe = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{0,2})?$`)

	// Frequent typos of common top-level domains. Rejected even when the
	// address shape is otherwise valid.
	mistypedTLDs = []string{".con", ".cmo", ".xom", ".co", ".cm"}

	fieldSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

const passwordSpecials = "!@#$%^&*()_+-=[]{}|;:,.<>?"

var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"letmein":     {},
	"welcome1":    {},
	"admin123":    {},
	"iloveyou":    {},
	"sunshine":    {},
	"princess":    {},
	"football":    {},
	"baseball":    {},
	"monkey123":   {},
	"abc12345":    {},
}

// stateCodes holds the 50 states, DC and the 5 inhabited territories.
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {},
	"DC": {},
	"AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {},
}

// Email normalizes the address (trim, lowercase) and checks its shape.
// The normalized form is returned so callers store exactly what was checked.
func Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", errors.New("email is required")
	}
	if !emailRe.MatchString(email) {
		return "", errors.New("invalid email format")
	}
	for _, tld := range mistypedTLDs {
		if strings.HasSuffix(email, tld) {
			return "", fmt.Errorf("email domain ending in %q looks mistyped", tld)
		}
	}
	return email, nil
}

// DateOfBirth parses a YYYY-MM-DD date and checks the 18..120 age window
// against now.
func DateOfBirth(raw string, now time.Time) (time.Time, error) {
	dob, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errors.New("date of birth must be in YYYY-MM-DD format")
	}
	if dob.After(now) {
		return time.Time{}, errors.New("date of birth cannot be in the future")
	}
	age := Age(dob, now)
	if age < 18 {
		return time.Time{}, errors.New("must be at least 18 years old")
	}
	if age > 120 {
		return time.Time{}, errors.New("age cannot exceed 120 years")
	}
	return dob, nil
}

// Age returns whole years between dob and now. The year ticks over on the
// birthday itself, not on January 1st.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if dob.AddDate(age, 0, 0).After(now) {
		age--
	}
	return age
}

// Phone strips spaces, hyphens and parentheses and requires exactly 10
// digits. The all-zero number is rejected as its own rule.
func Phone(raw string) (string, error) {
	phone := fieldSeparators.Replace(strings.TrimSpace(raw))
	if len(phone) != 10 || !isDigits(phone) {
		return "", errors.New("phone number must contain exactly 10 digits")
	}
	if phone == "0000000000" {
		return "", errors.New("phone number cannot be all zeros")
	}
	return phone, nil
}

// State checks membership in the 56-code set, case-insensitively, and
// returns the uppercase form.
func State(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := stateCodes[code]; !ok {
		return "", errors.New("invalid state or territory code")
	}
	return code, nil
}

// Amount accepts decimal text with no leading zeros and at most two
// fractional digits.
func Amount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if !amountRe.MatchString(s) {
		return decimal.Decimal{}, errors.New("amount must be a number with at most 2 decimal places and no leading zeros")
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(s, "."))
	if err != nil {
		return decimal.Decimal{}, errors.New("amount is not a valid number")
	}
	return d, nil
}

// FundingAmount applies the Amount pattern and additionally requires a
// strictly positive value: "0" passes the pattern but fails here.
func FundingAmount(raw string) (decimal.Decimal, error) {
	d, err := Amount(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, errors.New("amount must be greater than zero")
	}
	return d, nil
}

// Password enforces length and character-class rules and rejects entries
// from the common-password list (compared case-insensitively).
func Password(raw string) error {
	if len(raw) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	if _, ok := commonPasswords[strings.ToLower(raw)]; ok {
		return errors.New("password is too common")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errors.New("password must contain an uppercase letter, a lowercase letter, a digit and a special character")
	}
	return nil
}

// SSN strips separators and requires exactly 9 digits. Only the hash of
// the cleaned value is ever stored.
func SSN(raw string) (string, error) {
	ssn := fieldSeparators.Replace(strings.TrimSpace(raw))
	if len(ssn) != 9 || !isDigits(ssn) {
		return "", errors.New("ssn must contain exactly 9 digits")
	}
	if ssn == "000000000" {
		return "", errors.New("ssn cannot be all zeros")
	}
	return ssn, nil
}

// RoutingNumber requires exactly 9 digits after separator stripping and
// rejects the all-zero value.
func RoutingNumber(raw string) (string, error) {
	rn := fieldSeparators.Replace(strings.TrimSpace(raw))
	if len(rn) != 9 || !isDigits(rn) {
		return "", errors.New("routing number must contain exactly 9 digits")
	}
	if rn == "000000000" {
		return "", errors.New("routing number cannot be all zeros")
	}
	return rn, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

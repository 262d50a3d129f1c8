package validate

import (
	"errors"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

// Card network display names as reported to clients.
const (
	NetworkVisa       = "Visa"
	NetworkMastercard = "Mastercard"
	NetworkAmex       = "American Express"
	NetworkDiscover   = "Discover"
	NetworkDiners     = "Diners Club"
	NetworkJCB        = "JCB"
)

// CardNumber strips separators, requires exactly 16 digits and checks the
// Luhn digit. Returns the cleaned number.
func CardNumber(raw string) (string, error) {
	number := fieldSeparators.Replace(raw)
	if len(number) != 16 || !isDigits(number) {
		return "", errors.New("card number must contain exactly 16 digits")
	}
	if err := goluhn.Validate(number); err != nil {
		return "", errors.New("card number failed checksum validation")
	}
	return number, nil
}

// CardNetwork reports the display name of the network the prefix belongs
// to, or "" when no known range matches. Detection is independent of the
// checksum: a Luhn-invalid number still reports its network.
func CardNetwork(raw string) string {
	number := fieldSeparators.Replace(raw)
	if !isDigits(number) {
		return ""
	}
	switch {
	case hasPrefix(number, "4"):
		return NetworkVisa
	case hasPrefix(number, "34") || hasPrefix(number, "37"):
		return NetworkAmex
	case prefixInRange(number, 2, 51, 55) || prefixInRange(number, 4, 2221, 2720):
		return NetworkMastercard
	case hasPrefix(number, "6011") || hasPrefix(number, "65") ||
		prefixInRange(number, 3, 644, 649) || hasPrefix(number, "622"):
		return NetworkDiscover
	case prefixInRange(number, 3, 300, 305) || hasPrefix(number, "36") || hasPrefix(number, "38"):
		return NetworkDiners
	case prefixInRange(number, 4, 3528, 3589):
		return NetworkJCB
	default:
		return ""
	}
}

func hasPrefix(number, prefix string) bool {
	return len(number) >= len(prefix) && number[:len(prefix)] == prefix
}

// prefixInRange parses the first width digits of number and checks them
// against the inclusive [lo, hi] range.
func prefixInRange(number string, width, lo, hi int) bool {
	if len(number) < width {
		return false
	}
	n, err := strconv.Atoi(number[:width])
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

package utils

import (
	"strconv"
	"strings"
)

// FallbackBasePrice is substituted when a trip carries no canonical price
// and its display string cannot be parsed. Value in Algerian dinars.
const FallbackBasePrice int64 = 89000

// ParseDisplayPrice extracts the numeric amount from a currency-formatted
// display string such as "89,000 DA". All digit runs are concatenated, so
// thousands separators are tolerated. Returns FallbackBasePrice when the
// string yields no usable number.
func ParseDisplayPrice(display string) int64 {
	var b strings.Builder
	for _, r := range display {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return FallbackBasePrice
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil || n == 0 {
		return FallbackBasePrice
	}
	return n
}

// ComputeTotal is the whole pricing model: base price times traveler count.
func ComputeTotal(basePrice int64, travelerCount int) int64 {
	if travelerCount < 0 {
		travelerCount = 0
	}
	return basePrice * int64(travelerCount)
}

// FormatPriceDA renders an amount the way the catalog displays it,
// e.g. 89000 -> "89,000 DA".
func FormatPriceDA(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out + " DA"
}

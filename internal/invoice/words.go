package invoice

import (
	"math"
	"math/big"
	"strings"
)

var (
	ones = [...]string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
		"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tens = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// AmountInWords spells the integer part of n in the Indian numbering system
// followed by "Only", e.g. 1180 -> "One Thousand One Hundred Eighty Only".
// Zero is "Zero Only", negative amounts are prefixed with "Minus" and
// non-finite input yields "".
func AmountInWords(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	whole, _ := new(big.Float).SetFloat64(math.Floor(math.Abs(n))).Int(nil)
	words := spell(whole)
	if words == "" {
		words = "Zero"
	}
	if n < 0 && whole.Sign() > 0 {
		words = "Minus " + words
	}
	return words + " Only"
}

var croreBig = big.NewInt(10_000_000)

// spell renders n as crore, lakh, thousand and hundreds groups. A crore
// count above 999 is spelled recursively, so any magnitude is exact.
func spell(whole *big.Int) string {
	crore, below := new(big.Int).QuoRem(whole, croreBig, new(big.Int))
	n := below.Uint64()
	lakh := n / 100_000
	n %= 100_000
	thousand := n / 1000
	rest := n % 1000

	var parts []string
	if crore.Sign() > 0 {
		parts = append(parts, spell(crore)+" Crore")
	}
	if lakh > 0 {
		parts = append(parts, threeDigits(lakh)+" Lakh")
	}
	if thousand > 0 {
		parts = append(parts, threeDigits(thousand)+" Thousand")
	}
	if rest > 0 {
		parts = append(parts, threeDigits(rest))
	}
	return strings.Join(parts, " ")
}

func twoDigits(n uint64) string {
	if n < 20 {
		return ones[n]
	}
	return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
}

func threeDigits(n uint64) string {
	h, r := n/100, n%100
	switch {
	case h == 0:
		return twoDigits(r)
	case r == 0:
		return ones[h] + " Hundred"
	default:
		return ones[h] + " Hundred " + twoDigits(r)
	}
}

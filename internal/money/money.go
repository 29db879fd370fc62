// Package money holds the numeric coercion and INR display helpers shared by
// every form, export and document in the ledger.
package money

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Symbol is the rupee sign prefixed by Format.
const Symbol = "₹"

// ToNumber returns the finite numeric interpretation of v, or 0 when v is
// missing, blank, unparseable, NaN or infinite. It never panics.
func ToNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return 0
		}
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Format renders n as rupees with en-IN digit grouping and exactly two
// decimals, e.g. 1234567.891 -> "₹12,34,567.89" and -5 -> "-₹5.00".
func Format(n float64) string {
	amount := FormatAmount(n)
	if strings.HasPrefix(amount, "-") {
		return "-" + Symbol + amount[1:]
	}
	return Symbol + amount
}

// FormatAmount is Format without the currency sign.
func FormatAmount(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	s := strconv.FormatFloat(math.Abs(n), 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	grouped := groupIndian(intPart)
	if n < 0 && (intPart != "0" || strings.Trim(frac, "0") != "") {
		return "-" + grouped + "." + frac
	}
	return grouped + "." + frac
}

// groupIndian groups the last three digits, then every two digits above them.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}

// FormatNumber renders a quantity or plain amount in its shortest decimal
// form ("12.5", "100"), the way the ledger's exports print numbers.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// TodayISO returns now as a calendar date in YYYY-MM-DD form.
func TodayISO(now time.Time) string {
	return now.Format("2006-01-02")
}

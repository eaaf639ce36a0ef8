package svgo

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// decimalPrec is passed to minify.Decimal so that it never drops significant digits, numbers are rounded beforehand.
const decimalPrec = 20

// round rounds half up, ie. -2.5 becomes -2.
func round(f float64) float64 {
	return math.Floor(f + 0.5)
}

// ToFixed rounds f to prec digits after the decimal point.
func ToFixed(f float64, prec int) float64 {
	pow := math.Pow(10.0, float64(prec))
	return round(f*pow) / pow
}

// SmartRound rounds each number to prec digits, but uses one digit less when the difference stays below the tolerance of prec digits.
func SmartRound(prec int, data []float64) []float64 {
	tolerance := ToFixed(math.Pow(0.1, float64(prec)), prec)
	for i := len(data) - 1; 0 <= i; i-- {
		if ToFixed(data[i], prec) != data[i] {
			rounded := ToFixed(data[i], prec-1)
			if ToFixed(math.Abs(rounded-data[i]), prec+1) >= tolerance {
				data[i] = ToFixed(data[i], prec)
			} else {
				data[i] = rounded
			}
		}
	}
	return data
}

// RoundAll rounds all numbers to integers.
func RoundAll(data []float64) []float64 {
	for i := range data {
		data[i] = round(data[i])
	}
	return data
}

// FormatNumber returns the shortest decimal representation of f without a leading zero, ie. 0.5 becomes .5.
func FormatNumber(f float64) string {
	if f == 0.0 || math.IsNaN(f) {
		return "0"
	} else if math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	b := minify.Decimal([]byte(strconv.FormatFloat(f, 'f', -1, 64)), decimalPrec)
	return removeLeadingZero(string(b))
}

// FormatNumberPrec rounds f to prec digits after the decimal point and formats it. A negative prec does not round.
func FormatNumberPrec(f float64, prec int) string {
	if 0 <= prec {
		f = ToFixed(f, prec)
	}
	return FormatNumber(f)
}

func removeLeadingZero(s string) string {
	if strings.HasPrefix(s, "0.") {
		return s[1:]
	} else if strings.HasPrefix(s, "-0.") {
		return "-" + s[2:]
	}
	return s
}

// OutDataOptions controls how a list of numbers is joined.
type OutDataOptions struct {
	LeadingZero        bool // strip leading zeros
	NegativeExtraSpace bool // omit the space before a minus sign or before .5 after a fractional number
	NoSpaceAfterFlags  bool // omit the space after arc flags
}

// CleanupOutData joins numbers with the minimal amount of separators. Command is only used to detect arc flags.
func CleanupOutData(data []float64, opts OutDataOptions, command byte) string {
	sb := strings.Builder{}
	prev := 0.0
	for i, f := range data {
		delim := " "
		if i == 0 {
			delim = ""
		}
		if opts.NoSpaceAfterFlags && (command == 'A' || command == 'a') {
			if pos := i % 7; pos == 4 || pos == 5 {
				delim = ""
			}
		}
		var s string
		if opts.LeadingZero {
			s = FormatNumber(f)
		} else {
			s = strconv.FormatFloat(f, 'f', -1, 64)
			if f == 0.0 {
				s = "0"
			}
		}
		if opts.NegativeExtraSpace && delim != "" && (f < 0.0 || s[0] == '.' && math.Mod(prev, 1.0) != 0.0) {
			delim = ""
		}
		prev = f
		sb.WriteString(delim)
		sb.WriteString(s)
	}
	return sb.String()
}

package ast

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultFloatPrecision is the number of fractional digits used to encode
// floats.
const DefaultFloatPrecision = 6

// EncodeFloat formats f as "<integer part>.<fraction>" with exactly precision
// fractional digits, trailing zeros included. Precision is at least 1. The
// integer part is truncated and rounding the fraction never carries into it.
func EncodeFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if precision < 1 {
		precision = 1
	}

	ip := math.Trunc(f)

	// frac is in [0, 1), its rendering is "0.ddd" or "1.000" on carry.
	frac := strconv.FormatFloat(math.Abs(f-ip), 'f', precision, 64)
	digits := frac[2:]
	if frac[0] != '0' {
		digits = strings.Repeat("9", precision)
	}

	sign := ""
	if math.Signbit(f) {
		sign = "-"
	}
	return sign + strconv.FormatFloat(math.Abs(ip), 'f', 0, 64) + "." + digits
}

// Encode transforms a list of expressions into their text representation,
// separated by a single space.
func Encode(exprs []Expr) []byte {
	values := make([]string, 0, len(exprs))
	for i := range exprs {
		values = append(values, exprs[i].Encode())
	}
	return []byte(strings.Join(values, " "))
}

// Print writes a human-readable representation of each expression to w
func Print(w io.Writer, exprs []Expr) error {
	for i := range exprs {
		if _, err := fmt.Fprintf(w, "(%s): %#v\n", exprs[i].Type(), exprs[i].Value()); err != nil {
			return err
		}
	}
	return nil
}

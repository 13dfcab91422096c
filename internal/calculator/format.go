package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// thousandsSeparator is the no-break space used by the Russian locale.
	thousandsSeparator = "\u00a0"
	dateLayout         = "02.01.2006"
	emptyValue         = "—"

	// maxDecimals bounds the fraction digits so the scaled value stays an int64.
	maxDecimals = 6
	// maxExactInteger is 2^53, the largest range where float64 holds every integer.
	maxExactInteger = 1 << 53
)

// FormatQuantity formats v with Russian locale conventions: no-break space
// between thousands and comma as decimal separator. A zero fraction after
// rounding is omitted, so 1000.0 renders as "1 000" and 1234.5 with two
// decimals as "1 234,5".
func FormatQuantity(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return emptyValue
	}

	neg := v < 0
	if neg {
		v = -v
	}
	decimals = min(max(decimals, 0), maxDecimals)

	factor := math.Pow(10, float64(decimals))
	if v*factor >= maxExactInteger {
		return formatLarge(v, decimals, neg)
	}

	scaled := int64(math.Round(v * factor))
	intPart := scaled / int64(factor)
	fracPart := scaled % int64(factor)

	s := groupThousands(strconv.FormatInt(intPart, 10))

	prefix := ""
	if neg && scaled != 0 {
		prefix = "-"
	}

	if decimals == 0 || fracPart == 0 {
		return prefix + s
	}

	return prefix + s + "," + trimFraction(fmt.Sprintf("%0*d", decimals, fracPart))
}

// formatLarge renders values whose scaled form no longer fits an exact integer.
func formatLarge(v float64, decimals int, neg bool) string {
	intStr, fracStr, _ := strings.Cut(strconv.FormatFloat(v, 'f', decimals, 64), ".")

	s := groupThousands(intStr)
	if neg {
		s = "-" + s
	}
	if fracStr = trimFraction(fracStr); fracStr == "" || fracStr == "0" {
		return s
	}
	return s + "," + fracStr
}

func trimFraction(frac string) string {
	for len(frac) > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return frac
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	out := s[:head]
	for i := head; i < len(s); i += 3 {
		if out != "" {
			out += thousandsSeparator
		}
		out += s[i : i+3]
	}
	return out
}

// FormatDate renders t as DD.MM.YYYY, or a dash when t is nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return emptyValue
	}
	return t.Format(dateLayout)
}

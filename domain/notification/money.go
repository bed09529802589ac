package notification

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

// FormatMoney renders minor units as a display amount, e.g. 125000 usd as
// "$1,250.00" and 5000 jpy as "¥5,000". The decimal scale comes from the
// ISO 4217 rounding data. Currencies without a narrow symbol are prefixed
// with their code; an unknown or empty code renders a bare two-decimal
// number.
func FormatMoney(amount int64, code string) string {
	scale := 2
	prefix := ""
	if unit, err := currency.ParseISO(strings.TrimSpace(code)); err == nil && unit != currency.XXX {
		scale, _ = currency.Standard.Rounding(unit)
		prefix = fmt.Sprint(currency.NarrowSymbol(unit))
		if prefix == unit.String() {
			prefix += " "
		}
	}

	neg := amount < 0
	if neg {
		amount = -amount
	}

	var num string
	if scale == 0 {
		num = groupThousands(amount)
	} else {
		div := int64(1)
		for i := 0; i < scale; i++ {
			div *= 10
		}
		frac := strconv.FormatInt(amount%div, 10)
		num = groupThousands(amount/div) + "." + strings.Repeat("0", scale-len(frac)) + frac
	}

	if neg {
		prefix = "-" + prefix
	}
	return prefix + num
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// frenchLongDate renders "2 septembre 2026".
func frenchLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// frenchShortDate converts an ISO date to jj/mm/aaaa; anything else is
// returned as supplied.
func frenchShortDate(raw string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006")
}

// fmtEUR formats a positive amount the French way: space-grouped thousands,
// comma decimals, no decimals for integral values, trailing euro sign.
// Returns "" for non-positive or unparseable values.
func fmtEUR(n float64, ok bool) string {
	if !ok || n <= 0 {
		return ""
	}
	// Round the total to cents before splitting, so a fraction that rounds
	// to a whole euro carries into the integral part. The epsilon absorbs
	// binary representation error in decimal inputs (1240.995 stores as
	// 1240.99499…), keeping half-cent values on the round-up side.
	total := int64(n*100 + 0.5 + 1e-9)
	cents := total % 100
	grouped := groupThousands(strconv.FormatInt(total/100, 10))
	if cents == 0 {
		return grouped + " €"
	}
	return fmt.Sprintf("%s,%02d €", grouped, cents)
}

func groupThousands(digits string) string {
	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

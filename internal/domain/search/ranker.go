package search

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"photostock/internal/domain/entities"
)

// nasDatePattern matches the YYMMDD_ date fragment encoded in NAS
// locations, e.g. "W:\2024\241004_Photo".
var nasDatePattern = regexp.MustCompile(`(\d{2})(\d{2})(\d{2})_`)

// DateFromNasLocation extracts the storage date from a NAS location. The
// two-digit year is anchored to 2000. Locations without the fragment
// report ok=false.
func DateFromNasLocation(loc string) (time.Time, bool) {
	m := nasDatePattern.FindStringSubmatch(loc)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year+2000, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ParseTotalAmount converts a total like "RM7,660" to its numeric value,
// keeping only digits, '.' and '-'. Unparsable totals rank as 0 so the
// comparator stays total and NaN-free.
func ParseTotalAmount(total string) float64 {
	var b strings.Builder
	for _, r := range total {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// Sort orders results for display: dated locations before undated ones,
// dates newest first, ties broken by numeric total ascending and finally
// by invoice number so the order is independent of input permutation.
func Sort(results []entities.Result) {
	sort.Slice(results, func(i, j int) bool {
		return displayLess(results[i], results[j])
	})
}

func displayLess(a, b entities.Result) bool {
	da, aok := DateFromNasLocation(a.NasLocation)
	db, bok := DateFromNasLocation(b.NasLocation)

	if aok != bok {
		return aok
	}
	if aok && bok && !da.Equal(db) {
		return da.After(db)
	}

	ta := ParseTotalAmount(a.Total)
	tb := ParseTotalAmount(b.Total)
	if ta != tb {
		return ta < tb
	}

	return a.InvNumber < b.InvNumber
}

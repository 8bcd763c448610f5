package engine

import (
	"sort"
	"strconv"
	"strings"
)

// Record is one long-format observation: one (region, year-column) pair.
type Record struct {
	Region string
	Year   int
	Value  float64
}

// YearValue is one resolved point of a per-year aggregation.
type YearValue struct {
	Year  int
	Value float64
}

// parseYear expands a 2-digit token (<50 is 20xx, otherwise 19xx) and passes
// a 4-digit token through. Anything else fails.
func parseYear(token string) (int, bool) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	switch len(token) {
	case 2:
		if n < 50 {
			return 2000 + n, true
		}
		return 1900 + n, true
	case 4:
		return n, true
	}
	return 0, false
}

// parseValue coerces cell text to a float. The source sheets format large
// counts with thousands separators, so grouping commas are stripped first.
// Empty or non-numeric text is "no value".
func parseValue(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Extract reshapes the wide-format year columns of one indicator family into
// a long-format series over the given regions. Records with an unparseable
// year or value are dropped; one bad cell never invalidates the family.
// The result is sorted ascending by year (stable, so ties keep row/column
// encounter order) and may hold several records per (region, year) when the
// sheet carries duplicate year columns — the per-year mean absorbs those.
// No matching columns is a normal condition and yields an empty series.
func Extract(t *Table, regionKeys []string, indicator, rowKeyCol string) []Record {
	type yearCol struct {
		name string
		year int
	}
	var cols []yearCol
	for _, c := range t.Columns() {
		m := yearSuffix.FindStringSubmatch(c)
		if m == nil {
			continue
		}
		if BaseName(c) != indicator {
			continue
		}
		y, ok := parseYear(m[1])
		if !ok {
			continue
		}
		cols = append(cols, yearCol{name: c, year: y})
	}
	if len(cols) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(regionKeys))
	for _, k := range regionKeys {
		wanted[k] = struct{}{}
	}

	var out []Record
	for _, row := range t.Rows() {
		key := row[rowKeyCol]
		if key == "" {
			continue
		}
		if _, ok := wanted[key]; !ok {
			continue
		}
		for _, yc := range cols {
			v, ok := parseValue(row[yc.name])
			if !ok {
				continue
			}
			out = append(out, Record{Region: key, Year: yc.year, Value: v})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ResolveAggregate collapses a series to one value per year under the
// nationwide-or-mean policy: when the aggregate row has a value for a year it
// wins (a zero counts as present), otherwise the unweighted mean of the
// concrete regions stands in. A year with no data from either side is
// omitted, never zero-filled.
func ResolveAggregate(series []Record, aggregateKey string) []YearValue {
	type bucket struct {
		agg    float64
		hasAgg bool
		sum    float64
		n      int
	}
	buckets := make(map[int]*bucket)
	for _, r := range series {
		b := buckets[r.Year]
		if b == nil {
			b = &bucket{}
			buckets[r.Year] = b
		}
		if r.Region == aggregateKey {
			if !b.hasAgg {
				b.agg = r.Value
				b.hasAgg = true
			}
			continue
		}
		b.sum += r.Value
		b.n++
	}

	years := make([]int, 0, len(buckets))
	for y := range buckets {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearValue, 0, len(years))
	for _, y := range years {
		b := buckets[y]
		switch {
		case b.hasAgg:
			out = append(out, YearValue{Year: y, Value: b.agg})
		case b.n > 0:
			out = append(out, YearValue{Year: y, Value: b.sum / float64(b.n)})
		}
	}
	return out
}

// MeanByYear averages a series per year over every record, aggregate rows
// included. Used for the plain trend view when no aggregate key is selected.
func MeanByYear(series []Record) []YearValue {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range series {
		sums[r.Year] += r.Value
		counts[r.Year]++
	}
	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	sort.Ints(years)
	out := make([]YearValue, 0, len(years))
	for _, y := range years {
		out = append(out, YearValue{Year: y, Value: sums[y] / float64(counts[y])})
	}
	return out
}

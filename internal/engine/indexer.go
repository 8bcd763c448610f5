package engine

import (
	"regexp"
	"sort"
	"strings"
)

// Category groups indicator columns by keyword. A column belongs to the
// category if any keyword is a plain substring of its name; keyword sets may
// overlap, so a column can surface under several categories. RegionOnly
// categories have no data at sub-region granularity and are skipped there.
type Category struct {
	Name       string
	Keywords   []string
	RegionOnly bool
}

// DefaultCategories is the curated category map for the mental-health
// workbook. Supplied at construction so the same indexer serves other
// dataset schemas.
func DefaultCategories() []Category {
	return []Category{
		{Name: "1. 인구 및 사회경제적 배경", Keywords: []string{"총인구수", "근로소득"}},
		{Name: "2. 정신건강 결과 지표", Keywords: []string{"인구10만명당자살률_", "우울경험표준화율", "스트레스"}},
		{Name: "3. 정신질환 치료 및 의료 이용 현황", Keywords: []string{"치료_", "입원및외래_", "정신의료기관"}, RegionOnly: true},
		{Name: "4. 등록 장애인 현황", Keywords: []string{"등록정신장애인수"}, RegionOnly: true},
		{Name: "5. 인프라, 인력 및 예산", Keywords: []string{"정신건강_", "결산", "예산", "관리자"}},
		{Name: "6. 건강생활실태 및 기타", Keywords: []string{"비만", "건강수준", "현재흡연율"}},
	}
}

// yearSuffix matches a 2-4 digit year suffix anchored at the end of the
// column name. Anchoring matters: digits embedded mid-name (e.g. a
// "per 100,000" unit phrase) are not years.
var yearSuffix = regexp.MustCompile(`_(\d{2,4})$`)

// MatchesAny reports whether any keyword is a substring of column.
// Case-sensitive, no tokenization.
func MatchesAny(column string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(column, k) {
			return true
		}
	}
	return false
}

// BaseName strips one trailing year suffix and trims whitespace. Columns of
// the same indicator family (one column per year) collapse to one base name.
func BaseName(column string) string {
	return strings.TrimSpace(yearSuffix.ReplaceAllString(column, ""))
}

// UniqueIndicators returns the sorted unique base names of the table's
// columns matching the category. Empty when nothing matches; purely a
// function of its inputs.
func UniqueIndicators(cat Category, t *Table) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, col := range t.Columns() {
		if !MatchesAny(col, cat.Keywords) {
			continue
		}
		base := BaseName(col)
		if base == "" {
			continue
		}
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		out = append(out, base)
	}
	sort.Strings(out)
	return out
}

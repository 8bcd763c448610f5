package engine

import "sort"

// Table is an immutable row-oriented view over one loaded sheet. Rows map
// column name to the raw cell text; absent cells are simply missing keys.
// Built once at load time and shared read-only across requests.
type Table struct {
	columns []string
	rows    []map[string]string
}

func NewTable(columns []string, rows []map[string]string) *Table {
	return &Table{columns: columns, rows: rows}
}

func (t *Table) Columns() []string { return t.columns }

func (t *Table) Rows() []map[string]string { return t.rows }

func (t *Table) Len() int { return len(t.rows) }

// RowKeys returns the sorted unique values of the row-key column. Rows with
// an empty key are excluded from every lookup, here and in extraction.
func (t *Table) RowKeys(keyCol string) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, row := range t.rows {
		k := row[keyCol]
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeByKey outer-joins two independently sourced tables on keyCol, so a
// region missing from one source still appears in the result. On a column
// collision a's cell wins. This is a pre-core preparation step; extraction
// never joins.
func MergeByKey(a, b *Table, keyCol string) *Table {
	columns := make([]string, 0, len(a.columns)+len(b.columns))
	have := make(map[string]struct{})
	for _, c := range a.columns {
		columns = append(columns, c)
		have[c] = struct{}{}
	}
	for _, c := range b.columns {
		if _, ok := have[c]; !ok {
			columns = append(columns, c)
			have[c] = struct{}{}
		}
	}

	byKey := make(map[string]map[string]string)
	var rows []map[string]string
	for _, row := range a.rows {
		merged := make(map[string]string, len(row))
		for c, v := range row {
			merged[c] = v
		}
		rows = append(rows, merged)
		if k := row[keyCol]; k != "" {
			byKey[k] = merged
		}
	}
	for _, row := range b.rows {
		k := row[keyCol]
		if target, ok := byKey[k]; ok && k != "" {
			for c, v := range row {
				if _, exists := target[c]; !exists {
					target[c] = v
				}
			}
			continue
		}
		merged := make(map[string]string, len(row))
		for c, v := range row {
			merged[c] = v
		}
		rows = append(rows, merged)
		if k != "" {
			byKey[k] = merged
		}
	}
	return NewTable(columns, rows)
}

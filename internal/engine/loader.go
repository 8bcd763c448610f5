package engine

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the source workbook.
const (
	SheetRegion    = "시도"
	SheetSubRegion = "시군구"
)

// LoadWorkbook reads the two sheets of the statistics workbook into a
// Dataset. Any failure (missing file, missing sheet, unreadable content)
// returns an error and no Dataset; the caller must not proceed with a
// partial table pair.
func LoadWorkbook(path string, cats []Category) (*Dataset, error) {
	start := time.Now()
	log.Printf("Loading workbook %s ...", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	region, err := readSheet(f, SheetRegion)
	if err != nil {
		return nil, err
	}
	subRegion, err := readSheet(f, SheetSubRegion)
	if err != nil {
		return nil, err
	}

	log.Printf("Load Complete. %s: %d rows, %s: %d rows. Time: %v",
		SheetRegion, region.Len(), SheetSubRegion, subRegion.Len(), time.Since(start))
	return NewDataset(region, subRegion, cats), nil
}

// readSheet turns one sheet into a Table: first row is the header, every
// later row becomes a column→cell map. Cells beyond the header width and
// columns with a blank header are ignored.
func readSheet(f *excelize.File, name string) (*Table, error) {
	raw, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", name)
	}

	var columns []string
	header := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		h = strings.TrimSpace(h)
		header[i] = h
		if h != "" {
			columns = append(columns, h)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", name)
	}

	rows := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(columns))
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = strings.TrimSpace(cell)
		}
		rows = append(rows, row)
	}
	return NewTable(columns, rows), nil
}

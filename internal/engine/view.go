package engine

import (
	"fmt"

	"dashboard/internal/models"
)

// Row-key columns of the two sheets.
const (
	RegionKeyColumn    = "시도"
	SubRegionKeyColumn = "시군구"
)

// DefaultAggregateKey is the nationwide summary row.
const DefaultAggregateKey = "전국"

// Dataset holds the loaded table pair plus the category configuration. Built
// once after load and read-only from then on, so concurrent requests share it
// without locking.
type Dataset struct {
	Region       *Table
	SubRegion    *Table
	Categories   []Category
	AggregateKey string
}

func NewDataset(region, subRegion *Table, cats []Category) *Dataset {
	return &Dataset{
		Region:       region,
		SubRegion:    subRegion,
		Categories:   cats,
		AggregateKey: DefaultAggregateKey,
	}
}

func (d *Dataset) Table(granularity string) *Table {
	switch granularity {
	case models.GranularitySubRegion:
		return d.SubRegion
	default:
		return d.Region
	}
}

func (d *Dataset) RowKeyColumn(granularity string) string {
	if granularity == models.GranularitySubRegion {
		return SubRegionKeyColumn
	}
	return RegionKeyColumn
}

// Regions lists the selectable row keys at a granularity, sorted.
func (d *Dataset) Regions(granularity string) []string {
	return d.Table(granularity).RowKeys(d.RowKeyColumn(granularity))
}

// Catalog assembles what the selection UI needs: per-category indicator
// lists plus the region list. RegionOnly categories are dropped at
// sub-region granularity.
func (d *Dataset) Catalog(granularity string) models.Catalog {
	t := d.Table(granularity)
	cat := models.Catalog{
		Granularity: granularity,
		Regions:     d.Regions(granularity),
		Categories:  []models.CategoryIndicators{},
	}
	for _, c := range d.Categories {
		if c.RegionOnly && granularity == models.GranularitySubRegion {
			continue
		}
		cat.Categories = append(cat.Categories, models.CategoryIndicators{
			Category:   c.Name,
			Indicators: UniqueIndicators(c, t),
		})
	}
	return cat
}

// Compute derives the chart view for one Selection. Pure: the result depends
// only on the dataset and the selection, never on prior calls. An empty
// selection yields an empty ChartData, and an indicator with no matching
// columns at this granularity is silently skipped.
func (d *Dataset) Compute(sel models.Selection) models.ChartData {
	out := models.ChartData{Series: []models.Series{}}
	if len(sel.Indicators) == 0 || len(sel.Regions) == 0 {
		return out
	}
	t := d.Table(sel.Granularity)
	keyCol := d.RowKeyColumn(sel.Granularity)

	if sel.Mode == models.ModeCompare {
		// Per-region raw comparison uses the first selected indicator only.
		indicator := sel.Indicators[0]
		records := Extract(t, sel.Regions, indicator, keyCol)
		perRegion := make(map[string][]models.Point)
		for _, r := range records {
			perRegion[r.Region] = append(perRegion[r.Region], models.Point{Year: r.Year, Value: r.Value})
		}
		for _, region := range sel.Regions {
			pts := perRegion[region]
			if len(pts) == 0 {
				continue
			}
			out.Series = append(out.Series, models.Series{Label: region, Points: pts})
		}
		out.Title = fmt.Sprintf("지역별 %s 추이 비교", indicator)
		return out
	}

	// Trend mode: one averaged series per indicator, in selection order.
	// With the nationwide row selected the published figure wins and the
	// mean of the concrete regions only fills its gaps.
	useAggregate := false
	for _, r := range sel.Regions {
		if r == d.AggregateKey {
			useAggregate = true
			break
		}
	}
	for _, indicator := range sel.Indicators {
		records := Extract(t, sel.Regions, indicator, keyCol)
		if len(records) == 0 {
			continue
		}
		var resolved []YearValue
		if useAggregate {
			resolved = ResolveAggregate(records, d.AggregateKey)
		} else {
			resolved = MeanByYear(records)
		}
		pts := make([]models.Point, 0, len(resolved))
		for _, yv := range resolved {
			pts = append(pts, models.Point{Year: yv.Year, Value: yv.Value})
		}
		out.Series = append(out.Series, models.Series{
			Label:  indicator + " (평균)",
			Points: pts,
		})
	}
	out.Title = "선택 지역 지표별 평균 추이"
	return out
}

package models

// Granularity values for Selection.
const (
	GranularityRegion    = "region"
	GranularitySubRegion = "subregion"
)

// View modes. Trend averages each indicator across the selected regions;
// Compare shows the first selected indicator per region.
const (
	ModeTrend   = "trend"
	ModeCompare = "compare"
)

// Selection is one user interaction's worth of choices. It is a plain value:
// computing a view from it must not depend on any earlier Selection.
// Indicator order is preserved (the UI assigns axes by selection order).
type Selection struct {
	Granularity string   `json:"granularity"`
	Indicators  []string `json:"indicators"`
	Regions     []string `json:"regions"`
	Mode        string   `json:"mode"`
}

type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Series is one labeled line: ordered (year, value) pairs. No styling here;
// color, axis doubling and line width belong to the presentation layer.
type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

type ChartData struct {
	Title  string   `json:"title"`
	Series []Series `json:"series"`
}

// CategoryIndicators lists the unique indicator names discovered for one
// category at the requested granularity.
type CategoryIndicators struct {
	Category   string   `json:"category"`
	Indicators []string `json:"indicators"`
}

// Catalog is what the selection UI needs to populate its widgets.
type Catalog struct {
	Granularity string               `json:"granularity"`
	Regions     []string             `json:"regions"`
	Categories  []CategoryIndicators `json:"categories"`
}

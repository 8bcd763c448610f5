package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gotest.tools/assert"

	"dashboard/internal/engine"
	"dashboard/internal/models"
)

func testDataset() *engine.Dataset {
	region := engine.NewTable(
		[]string{"시도", "총인구수_20", "총인구수_21"},
		[]map[string]string{
			{"시도": "전국", "총인구수_20": "300", "총인구수_21": ""},
			{"시도": "서울", "총인구수_20": "100", "총인구수_21": "110"},
			{"시도": "부산", "총인구수_20": "50", "총인구수_21": "70"},
		},
	)
	subRegion := engine.NewTable(
		[]string{"시군구", "스트레스_20"},
		[]map[string]string{{"시군구": "강남구", "스트레스_20": "24"}},
	)
	return engine.NewDataset(region, subRegion, engine.DefaultCategories())
}

func request(t *testing.T, h *Handler, fn func(echo.Context) error, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	assert.NilError(t, fn(e.NewContext(req, rec)))
	return rec
}

func TestHealthWhileLoading(t *testing.T) {
	h := NewHandler(nil)
	rec := request(t, h, h.GetHealth, http.MethodGet, "/api/health", "")
	assert.Equal(t, rec.Code, http.StatusServiceUnavailable)

	h.SetDataset(testDataset())
	rec = request(t, h, h.GetHealth, http.MethodGet, "/api/health", "")
	assert.Equal(t, rec.Code, http.StatusOK)
}

func TestSeriesWhileLoading(t *testing.T) {
	h := NewHandler(nil)
	rec := request(t, h, h.GetSeries, http.MethodPost, "/api/series", `{}`)
	assert.Equal(t, rec.Code, http.StatusServiceUnavailable)
}

func TestGetCatalog(t *testing.T) {
	h := NewHandler(testDataset())
	rec := request(t, h, h.GetCatalog, http.MethodGet, "/api/catalog?granularity=region", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	var catalog models.Catalog
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.DeepEqual(t, catalog.Regions, []string{"부산", "서울", "전국"})
	assert.Equal(t, len(catalog.Categories), len(engine.DefaultCategories()))

	rec = request(t, h, h.GetCatalog, http.MethodGet, "/api/catalog?granularity=city", "")
	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestGetSeries(t *testing.T) {
	h := NewHandler(testDataset())
	body := `{"granularity":"region","indicators":["총인구수"],"regions":["전국","서울","부산"],"mode":"trend"}`
	rec := request(t, h, h.GetSeries, http.MethodPost, "/api/series", body)
	assert.Equal(t, rec.Code, http.StatusOK)

	var chart models.ChartData
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	assert.Equal(t, len(chart.Series), 1)
	assert.DeepEqual(t, chart.Series[0].Points, []models.Point{
		{Year: 2020, Value: 300},
		{Year: 2021, Value: 90},
	})
}

func TestGetSeriesEmptySelection(t *testing.T) {
	h := NewHandler(testDataset())
	rec := request(t, h, h.GetSeries, http.MethodPost, "/api/series", `{"indicators":[],"regions":[]}`)
	assert.Equal(t, rec.Code, http.StatusOK)

	var chart models.ChartData
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	assert.Equal(t, len(chart.Series), 0)
}

func TestGetSeriesBadMode(t *testing.T) {
	h := NewHandler(testDataset())
	rec := request(t, h, h.GetSeries, http.MethodPost, "/api/series", `{"mode":"pie"}`)
	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestGetChart(t *testing.T) {
	h := NewHandler(testDataset())
	body := `{"granularity":"region","indicators":["총인구수"],"regions":["서울","부산"],"mode":"compare"}`
	rec := request(t, h, h.GetChart, http.MethodPost, "/api/chart", body)
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, rec.Header().Get(echo.HeaderContentType), "image/png")
	// PNG signature
	assert.Assert(t, rec.Body.Len() > 8)
	assert.DeepEqual(t, rec.Body.Bytes()[:4], []byte{0x89, 'P', 'N', 'G'})
}

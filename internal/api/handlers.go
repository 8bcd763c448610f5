package api

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"dashboard/internal/engine"
	"dashboard/internal/models"
	"dashboard/internal/render"
)

type Handler struct {
	mu sync.RWMutex
	ds *engine.Dataset
}

// NewHandler may receive a nil dataset: the API is live immediately and
// answers 503 until SetDataset delivers the loaded workbook.
func NewHandler(ds *engine.Dataset) *Handler {
	return &Handler{ds: ds}
}

func (h *Handler) SetDataset(ds *engine.Dataset) {
	h.mu.Lock()
	h.ds = ds
	h.mu.Unlock()
}

func (h *Handler) dataset() *engine.Dataset {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ds
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/catalog", h.GetCatalog)
	api.POST("/series", h.GetSeries)
	api.POST("/chart", h.GetChart)
}

// --- HANDLERS ---

func (h *Handler) GetHealth(c echo.Context) error {
	if h.dataset() == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func granularityParam(c echo.Context) (string, bool) {
	g := c.QueryParam("granularity")
	switch g {
	case "":
		return models.GranularityRegion, true
	case models.GranularityRegion, models.GranularitySubRegion:
		return g, true
	}
	return "", false
}

// GetCatalog returns the per-category indicator lists and the region list
// the selection widgets are built from.
func (h *Handler) GetCatalog(c echo.Context) error {
	ds := h.dataset()
	if ds == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	g, ok := granularityParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown granularity"})
	}
	return c.JSON(http.StatusOK, ds.Catalog(g))
}

func (h *Handler) bindSelection(c echo.Context) (models.Selection, int, string) {
	var sel models.Selection
	if err := c.Bind(&sel); err != nil {
		return sel, http.StatusBadRequest, "malformed selection"
	}
	switch sel.Granularity {
	case "":
		sel.Granularity = models.GranularityRegion
	case models.GranularityRegion, models.GranularitySubRegion:
	default:
		return sel, http.StatusBadRequest, "unknown granularity"
	}
	switch sel.Mode {
	case "":
		sel.Mode = models.ModeTrend
	case models.ModeTrend, models.ModeCompare:
	default:
		return sel, http.StatusBadRequest, "unknown mode"
	}
	return sel, 0, ""
}

// GetSeries computes the chart series for a posted Selection. An empty
// selection is not an error: the response simply carries no series and the
// UI shows its prompt.
func (h *Handler) GetSeries(c echo.Context) error {
	ds := h.dataset()
	if ds == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	sel, code, msg := h.bindSelection(c)
	if code != 0 {
		return c.JSON(code, map[string]string{"error": msg})
	}
	return c.JSON(http.StatusOK, ds.Compute(sel))
}

// GetChart renders the same computation as a PNG line chart.
func (h *Handler) GetChart(c echo.Context) error {
	ds := h.dataset()
	if ds == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	sel, code, msg := h.bindSelection(c)
	if code != 0 {
		return c.JSON(code, map[string]string{"error": msg})
	}
	var buf bytes.Buffer
	if err := render.LinePNG(ds.Compute(sel), &buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dashboard/internal/api"
	"dashboard/internal/engine"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	data := flag.String("data", defaultDataPath(), "path to the statistics workbook")
	flag.Parse()

	// 1. Server is live immediately; handlers answer 503 until data lands.
	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	h := api.NewHandler(nil)
	h.RegisterRoutes(e)

	// 2. Load the workbook in the background and swap it in when ready.
	// On load failure the API stays in its loading state: a partial table
	// pair must never reach the engine.
	go func() {
		t0 := time.Now()
		ds, err := engine.LoadWorkbook(*data, engine.DefaultCategories())
		if err != nil {
			log.Printf("BACKGROUND: workbook load failed: %v", err)
			return
		}
		h.SetDataset(ds)
		log.Printf("BACKGROUND: load complete in %v. API is fully ready.", time.Since(t0))
	}()

	log.Printf("Server ready on %s (data loading in background...)", *addr)
	e.Logger.Fatal(e.Start(*addr))
}

func defaultDataPath() string {
	if p := os.Getenv("DASHBOARD_DATA"); p != "" {
		return p
	}
	return "data.xlsx"
}

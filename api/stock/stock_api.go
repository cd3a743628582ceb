package stock

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"multirex.GO/api"
	availabilityRepo "multirex.GO/model/repository/availability"
	"multirex.GO/service/importer"
	"multirex.GO/service/search"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

func RegisterStockRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/stock")
	repo := availabilityRepo.NewAvailabilityRepository(db)

	// GET /api/stock/engines – engine availability rows (public)
	g.GET("/engines", func(c echo.Context) error {
		start := time.Now()

		filter := availabilityRepo.EngineFilter{
			Code:          c.QueryParam("code"),
			OnlyAvailable: c.QueryParam("available") == "1" || c.QueryParam("available") == "true",
		}
		if raw := c.QueryParam("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a non-negative integer"})
			}
			filter.Limit = limit
		}

		rows, err := repo.ListEngines(filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, echo.Map{"items": rows, "count": len(rows)})
	})

	// GET /api/stock/engines/:id – one engine with availability (public)
	g.GET("/engines/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid engine id"})
		}
		row, err := repo.FindEngine(uint(id))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "engine not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, row)
	})

	// GET /api/stock/gearboxes – gearbox availability rows (public)
	g.GET("/gearboxes", func(c echo.Context) error {
		onlyAvailable := c.QueryParam("available") == "1" || c.QueryParam("available") == "true"
		limit := 0
		if raw := c.QueryParam("limit"); raw != "" {
			var err error
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a non-negative integer"})
			}
		}
		rows, err := repo.ListGearboxes(onlyAvailable, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": rows, "count": len(rows)})
	})

	// GET /api/stock/gearboxes/:id
	g.GET("/gearboxes/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gearbox id"})
		}
		row, err := repo.FindGearbox(uint(id))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "gearbox not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, row)
	})

	// GET /api/stock/search?q= – free-text engine search
	g.GET("/search", func(c echo.Context) error {
		q := strings.TrimSpace(c.QueryParam("q"))
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q parameter is required"})
		}
		limit := 20
		if raw := c.QueryParam("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		rows, err := search.GetSearchService(db).SearchEngines(c.Request().Context(), q, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": rows, "count": len(rows)})
	})

	// POST /api/stock/import – CSV engine import (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		opts := importer.ImportOptions{}
		if raw := c.QueryParam("batch_size"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				opts.BatchSize = parsed
			}
		}
		opts.DryRun = c.QueryParam("dry_run") == "1" || c.QueryParam("dry_run") == "true"

		res, err := importer.ImportEngines(db, c.Request().Body, opts)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"total_rows":          res.TotalRows,
			"created":             res.Created,
			"skipped":             res.Skipped,
			"receptions_created":  res.ReceptionsCreated,
			"warnings":            res.Warnings,
			"dry_run":             opts.DryRun,
			"request_duration_ms": duration,
		})
	})

	// POST /api/stock/reindex – push availability rows into the search index
	g.POST("/reindex", func(c echo.Context) error {
		count, err := search.GetSearchService(db).ReindexEngines(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"indexed": count})
	})
}

package stats

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"multirex.GO/api"
	"multirex.GO/config"
	"multirex.GO/service/matching"
	statsService "multirex.GO/service/stats"
)

func init() {
	api.RegisterModule(RegisterStatsRoutes)
}

func monthsParam(c echo.Context, def int) int {
	return posParam(c, "months", def)
}

func posParam(c echo.Context, name string, def int) int {
	if raw := c.QueryParam(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func RegisterStatsRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/stats")
	svc := statsService.NewStatsService(db, config.RedisClient)

	// GET /api/stats/kpis – stock counters from both availability views
	g.GET("/kpis", func(c echo.Context) error {
		start := time.Now()
		ctx := c.Request().Context()

		engines, err := svc.EngineKPIs(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		gearboxes, err := svc.GearboxKPIs(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, echo.Map{"moteurs": engines, "boites": gearboxes})
	})

	// GET /api/stats/sales/engines?months=3
	g.GET("/sales/engines", func(c echo.Context) error {
		sales, err := svc.RecentEngineSales(c.Request().Context(), monthsParam(c, 3))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": sales, "count": len(sales)})
	})

	// GET /api/stats/sales/gearboxes?months=3
	g.GET("/sales/gearboxes", func(c echo.Context) error {
		sales, err := svc.RecentGearboxSales(c.Request().Context(), monthsParam(c, 3))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": sales, "count": len(sales)})
	})

	// GET /api/stats/needs?top=50&q=search – urgency-ranked purchase needs.
	// q filters the ranking through the synonym-aware matcher.
	g.GET("/needs", func(c echo.Context) error {
		top := 50
		if raw := c.QueryParam("top"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				top = parsed
			}
		}
		needs, err := svc.EngineNeeds(c.Request().Context(), top)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if q := c.QueryParam("q"); q != "" {
			needs = matching.SmartMatch(q, needs)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": needs, "count": len(needs)})
	})

	// GET /api/stats/prices/sale-by-code – 3 month averages per engine code
	g.GET("/prices/sale-by-code", func(c echo.Context) error {
		prices, err := svc.AvgSalePricesByCode(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": prices, "count": len(prices)})
	})

	// GET /api/stats/prices/purchase?months=12&code=K9K702
	g.GET("/prices/purchase", func(c echo.Context) error {
		prices, err := svc.PurchasePriceByMonth(c.Request().Context(), monthsParam(c, 12), c.QueryParam("code"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": prices, "count": len(prices)})
	})

	// GET /api/stats/prices/sale?months=12&code=K9K702
	g.GET("/prices/sale", func(c echo.Context) error {
		prices, err := svc.SalePriceByMonth(c.Request().Context(), monthsParam(c, 12), c.QueryParam("code"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": prices, "count": len(prices)})
	})

	// GET /api/stats/prices/movers?type=vente&window=3&lookback=12&min=5
	// Codes whose average price shifted between the two windows.
	g.GET("/prices/movers", func(c echo.Context) error {
		kind := c.QueryParam("type")
		if kind == "" {
			kind = statsService.MoverSale
		}
		movers, err := svc.PriceMovers(c.Request().Context(), kind,
			posParam(c, "window", 3), posParam(c, "lookback", 12), posParam(c, "min", 5))
		if err != nil {
			if errors.Is(err, statsService.ErrUnknownMoverKind) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": movers, "count": len(movers)})
	})

	// GET /api/stats/stock/by-code – available engines per code
	g.GET("/stock/by-code", func(c echo.Context) error {
		stock, err := svc.AvailableStockByCode(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": stock, "count": len(stock)})
	})

	// GET /api/stats/stock/breakdown – available engines per brand and energy
	g.GET("/stock/breakdown", func(c echo.Context) error {
		breakdown, err := svc.AvailableStockBreakdown(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": breakdown, "count": len(breakdown)})
	})

	// POST /api/stats/invalidate – drop every cached stats result
	g.POST("/invalidate", func(c echo.Context) error {
		svc.InvalidateAll(c.Request().Context())
		return c.JSON(http.StatusOK, echo.Map{"status": "invalidated"})
	})
}

package breaker

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"multirex.GO/api"
	breakerService "multirex.GO/service/breaker"
)

func init() {
	api.RegisterModule(RegisterBreakerRoutes)
}

func isValidationError(err error) bool {
	return errors.Is(err, breakerService.ErrEmptyBreakerName) ||
		errors.Is(err, breakerService.ErrEmptyEngineCode) ||
		errors.Is(err, breakerService.ErrEmptyOfferText) ||
		errors.Is(err, breakerService.ErrInvalidQuantity) ||
		errors.Is(err, breakerService.ErrNegativePrice)
}

func limitParam(c echo.Context) int {
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 50
}

func RegisterBreakerRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/breaker")
	svc := breakerService.NewOfferService(db)

	// POST /api/breaker/offers/click – structured offer submission
	g.POST("/offers/click", func(c echo.Context) error {
		start := time.Now()

		var in breakerService.ClickOfferInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		offer, err := svc.SubmitClickOffer(in)
		if err != nil {
			if isValidationError(err) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusCreated, offer)
	})

	// POST /api/breaker/offers/free – free-text offer submission
	g.POST("/offers/free", func(c echo.Context) error {
		var in breakerService.FreeOfferInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		offer, err := svc.SubmitFreeOffer(in)
		if err != nil {
			if isValidationError(err) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, offer)
	})

	// GET /api/breaker/offers/click?limit=50 – latest structured offers
	g.GET("/offers/click", func(c echo.Context) error {
		items, err := svc.RecentClickOffers(limitParam(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
	})

	// GET /api/breaker/offers/free?limit=50 – latest free-text offers
	g.GET("/offers/free", func(c echo.Context) error {
		items, err := svc.RecentFreeOffers(limitParam(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
	})

	// GET /api/breaker/stats/today?casse=Name – submissions since midnight
	g.GET("/stats/today", func(c echo.Context) error {
		stats, err := svc.StatsToday(c.QueryParam("casse"))
		if err != nil {
			if isValidationError(err) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, stats)
	})
}

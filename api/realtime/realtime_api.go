package realtime

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"multirex.GO/api"
	"multirex.GO/config"
	inventoryRepo "multirex.GO/model/repository/inventory"
)

func init() {
	api.RegisterModule(RegisterRealtimeRoutes)
}

// Response for the combined availability+price endpoint
type CodeLookupResponse struct {
	EngineCode string   `json:"code_moteur"`
	Available  int64    `json:"nb_stock_dispo"`
	AvgSale3M  *float64 `json:"prix_vente_moy_3m,omitempty"`
}

// Singleton repository (created once per DB)
var (
	engineRepoInstance *inventoryRepo.EngineRepository
	repoOnce           sync.Once
	repoErr            error
)

func getEngineRepo(db *gorm.DB) (*inventoryRepo.EngineRepository, error) {
	repoOnce.Do(func() {
		engineRepoInstance, repoErr = inventoryRepo.NewEngineRepository(db)
	})
	return engineRepoInstance, repoErr
}

// verifyClientSignature validates HMAC-SHA256 signature using constant-time comparison
func verifyClientSignature(clientID, signature, cryptKey string) bool {
	if cryptKey == "" || clientID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(cryptKey))
	mac.Write([]byte(clientID))
	expected := mac.Sum(nil)
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, sig)
}

// RegisterRealtimeRoutes sets up the hot-path engine code lookup used by
// the dealer portal: current availability plus the recent price level,
// answered from two raw queries run in parallel.
func RegisterRealtimeRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/realtime")

	// GET /api/realtime/code-lookup?code=K9K702
	g.GET("/code-lookup", func(c echo.Context) error {
		start := time.Now()

		// Portal callers sign their client id; unsigned calls are
		// rejected only when a key is configured.
		clientID := c.Request().Header.Get("X-Client-ID")
		clientSig := c.Request().Header.Get("X-Client-Sig")
		cryptKey := config.PortalCryptKey()
		if cryptKey != "" && !verifyClientSignature(clientID, clientSig, cryptKey) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid signature"})
		}

		code := c.QueryParam("code")
		if code == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "code required"})
		}

		repo, err := getEngineRepo(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "repository init failed"})
		}

		var (
			available  int64
			avgPrice   float64
			priceFound bool
		)

		eg := new(errgroup.Group)
		eg.Go(func() error {
			var err error
			available, err = repo.AvailableCountByCode(code)
			return err
		})
		eg.Go(func() error {
			var err error
			avgPrice, priceFound, err = repo.AvgSalePriceByCode(code, time.Now().AddDate(0, -3, 0))
			return err
		})
		if err := eg.Wait(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))

		resp := CodeLookupResponse{EngineCode: code, Available: available}
		if priceFound {
			resp.AvgSale3M = &avgPrice
		}
		return c.JSON(http.StatusOK, resp)
	})

	// GET /api/realtime/availability?code=K9K702 - count only
	g.GET("/availability", func(c echo.Context) error {
		start := time.Now()

		code := c.QueryParam("code")
		if code == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "code required"})
		}
		repo, err := getEngineRepo(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "repository init failed"})
		}
		available, err := repo.AvailableCountByCode(code)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{"code_moteur": code, "nb_stock_dispo": available})
	})
}

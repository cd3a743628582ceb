//go:build !cli
// +build !cli

package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"multirex.GO/api"
	_ "multirex.GO/api/breaker"
	_ "multirex.GO/api/needs"
	_ "multirex.GO/api/realtime"
	_ "multirex.GO/api/stats"
	_ "multirex.GO/api/stock"
	"multirex.GO/config"
	"multirex.GO/core/auth"
	_ "multirex.GO/custom"
	"multirex.GO/database"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	config.InitRedis()
	redisStatus := "Redis not configured, stats caching falls back to in-process cache."
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil
			redisStatus = "Redis configured but not reachable, stats caching falls back to in-process cache."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	// Views are derived state and always recreated on boot so schema
	// changes cannot leave a stale availability rule behind.
	if err := database.EnsureViews(db); err != nil {
		log.Fatalf("failed to create availability views: %v", err)
	}
	log.Println("Availability views ready.")

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())

	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	e.GET("/health", func(c echo.Context) error {
		if err := sqldb.Ping(); err != nil {
			return c.JSON(503, echo.Map{"status": "down", "error": err.Error()})
		}
		return c.JSON(200, echo.Map{"status": "up"})
	})

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Multirex DMS", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}

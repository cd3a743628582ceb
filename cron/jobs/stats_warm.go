package jobs

import (
	"context"
	"log"

	"multirex.GO/config"
	"multirex.GO/service/stats"
)

// StatsWarmJob refreshes the heaviest stats caches so dashboard reads
// stay hot between cron runs.
func StatsWarmJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("statswarm: db connect failed: %v", err)
		return
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	ctx := context.Background()
	svc := stats.NewStatsService(db, config.RedisClient)
	svc.InvalidateAll(ctx)

	if _, err := svc.EngineKPIs(ctx); err != nil {
		log.Printf("statswarm: engine kpis: %v", err)
	}
	if _, err := svc.GearboxKPIs(ctx); err != nil {
		log.Printf("statswarm: gearbox kpis: %v", err)
	}
	if _, err := svc.EngineNeeds(ctx, 50); err != nil {
		log.Printf("statswarm: engine needs: %v", err)
	}
	if _, err := svc.RecentEngineSales(ctx, 3); err != nil {
		log.Printf("statswarm: engine sales: %v", err)
	}
	if _, err := svc.RecentGearboxSales(ctx, 3); err != nil {
		log.Printf("statswarm: gearbox sales: %v", err)
	}
}

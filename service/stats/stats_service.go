package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"multirex.GO/core/cache"
)

// StatsService computes stock KPIs, recent sales and purchase-need
// rankings over the availability views. Results are cached in Redis
// when a client is configured, otherwise in the in-process cache.
type StatsService struct {
	db    *gorm.DB
	redis *redis.Client
	mem   *cache.Cache
}

func NewStatsService(db *gorm.DB, rdb *redis.Client) *StatsService {
	return &StatsService{db: db, redis: rdb, mem: cache.GetInstance()}
}

// KPI summarises one availability view.
type KPI struct {
	Available int `json:"dispo" mapstructure:"dispo"`
	Sold      int `json:"vendus" mapstructure:"vendus"`
	Total     int `json:"total" mapstructure:"total"`
}

// EngineSale is one aggregated sales row, grouped by day and engine code.
type EngineSale struct {
	Day        string `json:"jour" mapstructure:"jour"`
	Month      string `json:"mois" mapstructure:"mois"`
	EngineCode string `json:"code_moteur" mapstructure:"code_moteur"`
	Brand      string `json:"marque" mapstructure:"marque"`
	Energy     string `json:"energie" mapstructure:"energie"`
	Sold       int    `json:"nb_vendus" mapstructure:"nb_vendus"`
}

// GearboxSale is one aggregated gearbox sales row.
type GearboxSale struct {
	Day         string `json:"jour" mapstructure:"jour"`
	Month       string `json:"mois" mapstructure:"mois"`
	GearboxCode string `json:"code_boite" mapstructure:"code_boite"`
	Sold        int    `json:"nb_vendus" mapstructure:"nb_vendus"`
}

// cached runs fill on a cache miss and stores the JSON-encoded result
// under key for ttl. out must be a pointer.
func (s *StatsService) cached(ctx context.Context, key string, ttl time.Duration, out interface{}, fill func() (interface{}, error)) error {
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			return json.Unmarshal(data, out)
		}
	} else if v, ok := s.mem.Get(key); ok {
		if data, isBytes := v.([]byte); isBytes {
			return json.Unmarshal(data, out)
		}
	}

	val, err := fill()
	if err != nil {
		return err
	}
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if s.redis != nil {
		s.redis.Set(ctx, key, data, ttl)
	} else {
		s.mem.Set(key, data, int64(ttl.Seconds()), []string{"stats"})
	}
	return json.Unmarshal(data, out)
}

// InvalidateAll drops every cached stats result.
func (s *StatsService) InvalidateAll(ctx context.Context) {
	if s.redis != nil {
		iter := s.redis.Scan(ctx, 0, "stats:*", 0).Iterator()
		for iter.Next(ctx) {
			s.redis.Del(ctx, iter.Val())
		}
		return
	}
	s.mem.DeleteByTag("stats")
}

func (s *StatsService) viewKPIs(ctx context.Context, key, view string) (KPI, error) {
	var out KPI
	err := s.cached(ctx, key, 2*time.Minute, &out, func() (interface{}, error) {
		var k KPI
		q := `
			SELECT
			  COALESCE(SUM(CASE WHEN est_disponible = 1 THEN 1 ELSE 0 END), 0) AS dispo,
			  COALESCE(SUM(CASE WHEN est_disponible = 0 THEN 1 ELSE 0 END), 0) AS vendus,
			  COUNT(*) AS total
			FROM ` + view
		if err := s.db.WithContext(ctx).Raw(q).Scan(&k).Error; err != nil {
			return nil, err
		}
		return k, nil
	})
	return out, err
}

// EngineKPIs returns available/sold/total counts over the engine view.
func (s *StatsService) EngineKPIs(ctx context.Context) (KPI, error) {
	return s.viewKPIs(ctx, "stats:kpis:engines", "v_moteurs_dispo")
}

// GearboxKPIs returns available/sold/total counts over the gearbox view.
func (s *StatsService) GearboxKPIs(ctx context.Context) (KPI, error) {
	return s.viewKPIs(ctx, "stats:kpis:gearboxes", "v_boites_dispo")
}

// RecentEngineSales aggregates validated shipment lines from the last
// months, grouped by day and engine code.
func (s *StatsService) RecentEngineSales(ctx context.Context, months int) ([]EngineSale, error) {
	var out []EngineSale
	key := compositeKey("stats:sales:engines", months)
	err := s.cached(ctx, key, 5*time.Minute, &out, func() (interface{}, error) {
		since := monthsAgo(months)
		rows, err := s.rawRows(ctx, `
			SELECT
			  SUBSTR(CAST(em.date_validation AS CHAR), 1, 10) AS jour,
			  SUBSTR(CAST(em.date_validation AS CHAR), 1, 7) AS mois,
			  UPPER(m.code_moteur) AS code_moteur,
			  COALESCE(vd.marque, '') AS marque,
			  COALESCE(vd.energie, '') AS energie,
			  COUNT(*) AS nb_vendus
			FROM tbl_expeditions_moteurs em
			JOIN tbl_moteurs m ON m.n_moteur = em.n_moteur
			LEFT JOIN v_moteurs_dispo vd ON vd.n_moteur = m.n_moteur
			WHERE em.date_validation >= ?
			  AND m.code_moteur IS NOT NULL
			  AND TRIM(m.code_moteur) <> ''
			GROUP BY jour, mois, code_moteur, marque, energie
			ORDER BY jour DESC`, since)
		if err != nil {
			return nil, err
		}
		var sales []EngineSale
		if err := decodeRows(rows, &sales); err != nil {
			return nil, err
		}
		return sales, nil
	})
	return out, err
}

// RecentGearboxSales aggregates validated gearbox shipment lines.
func (s *StatsService) RecentGearboxSales(ctx context.Context, months int) ([]GearboxSale, error) {
	var out []GearboxSale
	key := compositeKey("stats:sales:gearboxes", months)
	err := s.cached(ctx, key, 5*time.Minute, &out, func() (interface{}, error) {
		since := monthsAgo(months)
		rows, err := s.rawRows(ctx, `
			SELECT
			  SUBSTR(CAST(eb.date_validation AS CHAR), 1, 10) AS jour,
			  SUBSTR(CAST(eb.date_validation AS CHAR), 1, 7) AS mois,
			  CAST(eb.n_bv AS CHAR) AS code_boite,
			  COUNT(*) AS nb_vendus
			FROM tbl_expeditions_boites eb
			WHERE eb.date_validation >= ?
			GROUP BY jour, mois, code_boite
			ORDER BY jour DESC`, since)
		if err != nil {
			return nil, err
		}
		var sales []GearboxSale
		if err := decodeRows(rows, &sales); err != nil {
			return nil, err
		}
		return sales, nil
	})
	return out, err
}

func (s *StatsService) rawRows(ctx context.Context, q string, args ...interface{}) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := s.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func monthsAgo(months int) time.Time {
	return time.Now().AddDate(0, -months, 0)
}

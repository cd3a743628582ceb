package stats

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Mover kinds, naming the price series they compare.
const (
	MoverPurchase = "achat"
	MoverSale     = "vente"
)

var ErrUnknownMoverKind = errors.New("mover kind must be achat or vente")

// PriceMover compares a code's average price over the recent window
// against the preceding window of the same length.
type PriceMover struct {
	EngineCode string   `json:"code_moteur" mapstructure:"code_moteur"`
	RecentN    int      `json:"n_recent" mapstructure:"n_recent"`
	PrevN      int      `json:"n_prev" mapstructure:"n_prev"`
	AvgPrev    float64  `json:"avg_prev" mapstructure:"avg_prev"`
	AvgRecent  float64  `json:"avg_recent" mapstructure:"avg_recent"`
	Delta      float64  `json:"delta" mapstructure:"delta"`
	Pct        *float64 `json:"pct" mapstructure:"pct"`
}

// PriceMovers ranks engine codes by how much their average price moved:
// the last windowMonths against the preceding window of the same length,
// over rows no older than lookbackMonths. Codes with fewer than minCount
// data points in either window are left out. kind picks the series:
// purchase prices dated by reception, or validated sale prices.
func (s *StatsService) PriceMovers(ctx context.Context, kind string, windowMonths, lookbackMonths, minCount int) ([]PriceMover, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != MoverPurchase && kind != MoverSale {
		return nil, ErrUnknownMoverKind
	}
	if windowMonths <= 0 {
		windowMonths = 3
	}
	if lookbackMonths <= 0 {
		lookbackMonths = 12
	}
	if minCount <= 0 {
		minCount = 5
	}

	base := `
			    SELECT
			        UPPER(m.code_moteur) AS code_moteur,
			        r.date_achat AS dt,
			        m.prix_achat_moteur AS prix
			    FROM tbl_moteurs m
			    JOIN tbl_receptions r ON r.n_reception = m.num_reception
			    WHERE r.date_achat >= ?
			      AND m.prix_achat_moteur IS NOT NULL
			      AND m.prix_achat_moteur > 0
			      AND m.code_moteur IS NOT NULL
			      AND TRIM(m.code_moteur) <> ''`
	if kind == MoverSale {
		base = `
			    SELECT
			        UPPER(m.code_moteur) AS code_moteur,
			        em.date_validation AS dt,
			        em.prix_vente_moteur AS prix
			    FROM tbl_expeditions_moteurs em
			    JOIN tbl_moteurs m ON m.n_moteur = em.n_moteur
			    WHERE em.date_validation >= ?
			      AND em.prix_vente_moteur IS NOT NULL
			      AND em.prix_vente_moteur > 0
			      AND m.code_moteur IS NOT NULL
			      AND TRIM(m.code_moteur) <> ''`
	}

	var out []PriceMover
	key := compositeKey("stats:prices:movers", kind, windowMonths, lookbackMonths, minCount)
	err := s.cached(ctx, key, 5*time.Minute, &out, func() (interface{}, error) {
		recent := monthsAgo(windowMonths)
		prev := monthsAgo(windowMonths * 2)
		lookback := monthsAgo(lookbackMonths)
		rows, err := s.rawRows(ctx, `
			WITH base AS (`+base+`
			),
			agg AS (
			    SELECT
			        code_moteur,
			        AVG(CASE WHEN dt >= ? THEN prix END) AS avg_recent,
			        AVG(CASE WHEN dt < ? AND dt >= ? THEN prix END) AS avg_prev,
			        SUM(CASE WHEN dt >= ? THEN 1 ELSE 0 END) AS n_recent,
			        SUM(CASE WHEN dt < ? AND dt >= ? THEN 1 ELSE 0 END) AS n_prev
			    FROM base
			    GROUP BY code_moteur
			)
			SELECT
			    code_moteur,
			    n_recent,
			    n_prev,
			    ROUND(avg_prev, 2) AS avg_prev,
			    ROUND(avg_recent, 2) AS avg_recent,
			    ROUND(avg_recent - avg_prev, 2) AS delta,
			    CASE WHEN avg_prev IS NULL OR avg_prev = 0 THEN NULL
			         ELSE ROUND((avg_recent - avg_prev) / avg_prev * 100.0, 2)
			    END AS pct
			FROM agg
			WHERE n_recent >= ? AND n_prev >= ?
			  AND avg_recent IS NOT NULL AND avg_prev IS NOT NULL
			ORDER BY delta DESC, code_moteur`,
			lookback, recent, recent, prev, recent, recent, prev, minCount, minCount)
		if err != nil {
			return nil, err
		}
		var movers []PriceMover
		if err := decodeRows(rows, &movers); err != nil {
			return nil, err
		}
		return movers, nil
	})
	return out, err
}

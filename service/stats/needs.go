package stats

import (
	"context"
	"math"
	"sort"
	"time"
)

// EngineNeed ranks an engine code by purchase urgency: codes that sold
// in the last three months but have little available stock come first.
type EngineNeed struct {
	EngineCode     string   `json:"code_moteur" mapstructure:"code_moteur"`
	Brand          string   `json:"marque" mapstructure:"marque"`
	Energy         string   `json:"energie" mapstructure:"energie"`
	TypeYear       string   `json:"type_annee" mapstructure:"type_annee"`
	Sold3M         int      `json:"nb_vendus_3m" mapstructure:"nb_vendus_3m"`
	StockAvailable int      `json:"nb_stock_dispo" mapstructure:"nb_stock_dispo"`
	AvgBuy3M       *float64 `json:"prix_moy_achat_3m" mapstructure:"prix_moy_achat_3m"`
	AvgBuy6M       *float64 `json:"prix_moy_achat_6m" mapstructure:"prix_moy_achat_6m"`
	AvgBuy12M      *float64 `json:"prix_moy_achat_12m" mapstructure:"prix_moy_achat_12m"`
	UrgencyScore   float64  `json:"score_urgence" mapstructure:"-"`
}

// EngineNeeds returns the topN engine codes sold in the last three
// months, with available stock and purchase price averages, ordered by
// urgency score (nb_vendus_3m / (nb_stock_dispo + 1)).
func (s *StatsService) EngineNeeds(ctx context.Context, topN int) ([]EngineNeed, error) {
	if topN <= 0 {
		topN = 50
	}
	var out []EngineNeed
	key := compositeKey("stats:needs:engines", topN)
	err := s.cached(ctx, key, 5*time.Minute, &out, func() (interface{}, error) {
		since3 := monthsAgo(3)
		since6 := monthsAgo(6)
		since12 := monthsAgo(12)
		rows, err := s.rawRows(ctx, `
			WITH ventes AS (
			    SELECT
			        UPPER(m.code_moteur) AS code_moteur,
			        COUNT(*) AS nb_vendus_3m
			    FROM tbl_expeditions_moteurs em
			    JOIN tbl_moteurs m ON m.n_moteur = em.n_moteur
			    WHERE em.date_validation >= ?
			      AND m.code_moteur IS NOT NULL
			      AND TRIM(m.code_moteur) <> ''
			    GROUP BY UPPER(m.code_moteur)
			),
			achats AS (
			    SELECT
			        UPPER(m.code_moteur) AS code_moteur,
			        AVG(CASE WHEN r.date_achat >= ? THEN m.prix_achat_moteur END) AS prix_moy_3m,
			        AVG(CASE WHEN r.date_achat >= ? THEN m.prix_achat_moteur END) AS prix_moy_6m,
			        AVG(CASE WHEN r.date_achat >= ? THEN m.prix_achat_moteur END) AS prix_moy_12m
			    FROM tbl_moteurs m
			    JOIN tbl_receptions r ON r.n_reception = m.num_reception
			    WHERE m.prix_achat_moteur IS NOT NULL
			      AND r.date_achat IS NOT NULL
			    GROUP BY UPPER(m.code_moteur)
			),
			stock_dispo AS (
			    SELECT
			        UPPER(code_moteur) AS code_moteur,
			        COUNT(*) AS nb_stock_dispo
			    FROM v_moteurs_dispo
			    WHERE est_disponible = 1
			    GROUP BY UPPER(code_moteur)
			),
			infos AS (
			    SELECT
			        UPPER(code_moteur) AS code_moteur,
			        MAX(COALESCE(marque, '')) AS marque,
			        MAX(COALESCE(energie, '')) AS energie,
			        MAX(COALESCE(type_annee, '')) AS type_annee
			    FROM v_moteurs_dispo
			    WHERE code_moteur IS NOT NULL
			    GROUP BY UPPER(code_moteur)
			)
			SELECT
			    v.code_moteur,
			    COALESCE(i.marque, '') AS marque,
			    COALESCE(i.energie, '') AS energie,
			    COALESCE(i.type_annee, '') AS type_annee,
			    v.nb_vendus_3m,
			    COALESCE(s.nb_stock_dispo, 0) AS nb_stock_dispo,
			    ROUND(a.prix_moy_3m, 2) AS prix_moy_achat_3m,
			    ROUND(a.prix_moy_6m, 2) AS prix_moy_achat_6m,
			    ROUND(a.prix_moy_12m, 2) AS prix_moy_achat_12m
			FROM ventes v
			LEFT JOIN achats a ON a.code_moteur = v.code_moteur
			LEFT JOIN stock_dispo s ON s.code_moteur = v.code_moteur
			LEFT JOIN infos i ON i.code_moteur = v.code_moteur
			ORDER BY v.nb_vendus_3m DESC`, since3, since3, since6, since12)
		if err != nil {
			return nil, err
		}
		var needs []EngineNeed
		if err := decodeRows(rows, &needs); err != nil {
			return nil, err
		}
		for i := range needs {
			score := float64(needs[i].Sold3M) / float64(needs[i].StockAvailable+1)
			needs[i].UrgencyScore = math.Round(score*100) / 100
		}
		sort.SliceStable(needs, func(i, j int) bool {
			if needs[i].UrgencyScore != needs[j].UrgencyScore {
				return needs[i].UrgencyScore > needs[j].UrgencyScore
			}
			return needs[i].Sold3M > needs[j].Sold3M
		})
		if len(needs) > topN {
			needs = needs[:topN]
		}
		return needs, nil
	})
	return out, err
}

package stats

import (
	"context"
	"strings"
	"time"
)

// CodeSalePrice is the average validated sale price per engine code
// over the last three months.
type CodeSalePrice struct {
	EngineCode string  `json:"code_moteur" mapstructure:"code_moteur"`
	AvgSale3M  float64 `json:"prix_vente_moy_3m" mapstructure:"prix_vente_moy_3m"`
	Sales3M    int     `json:"nb_ventes_3m" mapstructure:"nb_ventes_3m"`
}

// CodeStock counts available engines per code.
type CodeStock struct {
	EngineCode string `json:"code_moteur" mapstructure:"code_moteur"`
	Available  int    `json:"nb_stock_dispo" mapstructure:"nb_stock_dispo"`
}

// StockBreakdown counts available engines per brand and energy.
type StockBreakdown struct {
	Brand  string `json:"marque" mapstructure:"marque"`
	Energy string `json:"energie" mapstructure:"energie"`
	Count  int    `json:"n" mapstructure:"n"`
}

// MonthlyPrice is an average price for one YYYY-MM month.
type MonthlyPrice struct {
	Month string  `json:"mois" mapstructure:"mois"`
	Price float64 `json:"prix_moy" mapstructure:"prix_moy"`
}

// AvgSalePricesByCode returns per-code average sale prices over the
// last three months.
func (s *StatsService) AvgSalePricesByCode(ctx context.Context) ([]CodeSalePrice, error) {
	var out []CodeSalePrice
	err := s.cached(ctx, "stats:prices:sale-by-code", 5*time.Minute, &out, func() (interface{}, error) {
		rows, err := s.rawRows(ctx, `
			SELECT
			  UPPER(m.code_moteur) AS code_moteur,
			  AVG(em.prix_vente_moteur) AS prix_vente_moy_3m,
			  COUNT(*) AS nb_ventes_3m
			FROM tbl_expeditions_moteurs em
			JOIN tbl_moteurs m ON m.n_moteur = em.n_moteur
			WHERE em.date_validation >= ?
			  AND em.prix_vente_moteur IS NOT NULL
			  AND em.prix_vente_moteur > 0
			  AND m.code_moteur IS NOT NULL
			  AND TRIM(m.code_moteur) <> ''
			GROUP BY UPPER(m.code_moteur)`, monthsAgo(3))
		if err != nil {
			return nil, err
		}
		var prices []CodeSalePrice
		if err := decodeRows(rows, &prices); err != nil {
			return nil, err
		}
		return prices, nil
	})
	return out, err
}

// AvailableStockByCode counts available engines per code.
func (s *StatsService) AvailableStockByCode(ctx context.Context) ([]CodeStock, error) {
	var out []CodeStock
	err := s.cached(ctx, "stats:stock:by-code", 5*time.Minute, &out, func() (interface{}, error) {
		rows, err := s.rawRows(ctx, `
			SELECT
			  UPPER(code_moteur) AS code_moteur,
			  COUNT(*) AS nb_stock_dispo
			FROM v_moteurs_dispo
			WHERE est_disponible = 1
			  AND code_moteur IS NOT NULL
			  AND TRIM(code_moteur) <> ''
			GROUP BY UPPER(code_moteur)`)
		if err != nil {
			return nil, err
		}
		var stock []CodeStock
		if err := decodeRows(rows, &stock); err != nil {
			return nil, err
		}
		return stock, nil
	})
	return out, err
}

// AvailableStockBreakdown counts available engines per brand and energy.
func (s *StatsService) AvailableStockBreakdown(ctx context.Context) ([]StockBreakdown, error) {
	var out []StockBreakdown
	err := s.cached(ctx, "stats:stock:breakdown", 5*time.Minute, &out, func() (interface{}, error) {
		rows, err := s.rawRows(ctx, `
			SELECT marque, energie, COUNT(*) AS n
			FROM v_moteurs_dispo
			WHERE est_disponible = 1
			GROUP BY marque, energie`)
		if err != nil {
			return nil, err
		}
		var breakdown []StockBreakdown
		if err := decodeRows(rows, &breakdown); err != nil {
			return nil, err
		}
		return breakdown, nil
	})
	return out, err
}

// PurchasePriceByMonth averages engine purchase prices per month over
// the last months, optionally restricted to one engine code.
func (s *StatsService) PurchasePriceByMonth(ctx context.Context, months int, code string) ([]MonthlyPrice, error) {
	var out []MonthlyPrice
	key := compositeKey("stats:prices:purchase-by-month", months, strings.ToUpper(code))
	err := s.cached(ctx, key, 5*time.Minute, &out, func() (interface{}, error) {
		q := `
			SELECT
			  SUBSTR(CAST(r.date_achat AS CHAR), 1, 7) AS mois,
			  AVG(m.prix_achat_moteur) AS prix_moy
			FROM tbl_moteurs m
			JOIN tbl_receptions r ON r.n_reception = m.num_reception
			WHERE r.date_achat >= ?
			  AND m.prix_achat_moteur IS NOT NULL
			  AND m.prix_achat_moteur > 0`
		args := []interface{}{monthsAgo(months)}
		if code != "" {
			q += `
			  AND UPPER(m.code_moteur) = ?`
			args = append(args, strings.ToUpper(code))
		}
		q += `
			GROUP BY mois
			ORDER BY mois`
		rows, err := s.rawRows(ctx, q, args...)
		if err != nil {
			return nil, err
		}
		var prices []MonthlyPrice
		if err := decodeRows(rows, &prices); err != nil {
			return nil, err
		}
		return prices, nil
	})
	return out, err
}

// SalePriceByMonth averages validated sale prices per month over the
// last months, optionally restricted to one engine code.
func (s *StatsService) SalePriceByMonth(ctx context.Context, months int, code string) ([]MonthlyPrice, error) {
	var out []MonthlyPrice
	key := compositeKey("stats:prices:sale-by-month", months, strings.ToUpper(code))
	err := s.cached(ctx, key, 5*time.Minute, &out, func() (interface{}, error) {
		q := `
			SELECT
			  SUBSTR(CAST(em.date_validation AS CHAR), 1, 7) AS mois,
			  AVG(em.prix_vente_moteur) AS prix_moy
			FROM tbl_expeditions_moteurs em`
		args := []interface{}{}
		if code != "" {
			q += `
			JOIN tbl_moteurs m ON m.n_moteur = em.n_moteur`
		}
		q += `
			WHERE em.date_validation >= ?
			  AND em.prix_vente_moteur IS NOT NULL
			  AND em.prix_vente_moteur > 0`
		args = append(args, monthsAgo(months))
		if code != "" {
			q += `
			  AND UPPER(m.code_moteur) = ?`
			args = append(args, strings.ToUpper(code))
		}
		q += `
			GROUP BY mois
			ORDER BY mois`
		rows, err := s.rawRows(ctx, q, args...)
		if err != nil {
			return nil, err
		}
		var prices []MonthlyPrice
		if err := decodeRows(rows, &prices); err != nil {
			return nil, err
		}
		return prices, nil
	})
	return out, err
}

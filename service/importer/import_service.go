package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	inventoryEntity "multirex.GO/model/entity/inventory"
)

// ImportOptions configures an engine import run.
type ImportOptions struct {
	BatchSize int
	DryRun    bool
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows         int
	Created           int
	Skipped           int
	ReceptionsCreated int
	Warnings          []string
	TotalTime         time.Duration
}

var engineColumns = map[string]bool{
	"n_moteur": true, "num_reception": true, "n_fournisseur": true,
	"date_achat": true, "code_moteur": true, "n_type_moteur": true,
	"num_serie": true, "modele_saisi": true, "compo_moteur": true,
	"prix_achat_moteur": true, "etat_moteur": true, "observations": true,
	"utilisateur": true,
}

// ImportEngines reads CSV rows and inserts engines, creating the
// receptions they reference when those do not exist yet. Rows whose
// engine number is already in the base are skipped.
func ImportEngines(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		colIndex[strings.TrimSpace(h)] = i
	}
	if _, ok := colIndex["n_moteur"]; !ok {
		return nil, fmt.Errorf("CSV must contain a 'n_moteur' column")
	}
	if _, ok := colIndex["num_reception"]; !ok {
		return nil, fmt.Errorf("CSV must contain a 'num_reception' column")
	}

	result := &ImportResult{}
	for _, h := range headers {
		if !engineColumns[strings.TrimSpace(h)] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: unknown, skipping", h))
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}
	result.TotalRows = len(rows)

	get := func(row []string, col string) string {
		if i, ok := colIndex[col]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	existingEngines, err := lookupIDs(db, "tbl_moteurs", "n_moteur")
	if err != nil {
		return nil, fmt.Errorf("lookup engines: %w", err)
	}
	existingReceptions, err := lookupIDs(db, "tbl_receptions", "n_reception")
	if err != nil {
		return nil, fmt.Errorf("lookup receptions: %w", err)
	}

	var receptions []inventoryEntity.Reception
	var engines []inventoryEntity.Engine

	for i, row := range rows {
		line := i + 2 // header is line 1

		engineID, err := parseUint(get(row, "n_moteur"))
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: bad n_moteur: %v", line, err))
			result.Skipped++
			continue
		}
		if existingEngines[engineID] {
			result.Skipped++
			continue
		}
		receptionID, err := parseUint(get(row, "num_reception"))
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: bad num_reception: %v", line, err))
			result.Skipped++
			continue
		}

		if !existingReceptions[receptionID] {
			supplierID, err := parseUint(get(row, "n_fournisseur"))
			if err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("line %d: reception %d unknown and no valid n_fournisseur to create it", line, receptionID))
				result.Skipped++
				continue
			}
			rec := inventoryEntity.Reception{ID: receptionID, SupplierID: supplierID}
			if raw := get(row, "date_achat"); raw != "" {
				if d, err := time.Parse("2006-01-02", raw); err == nil {
					date := datatypes.Date(d)
					rec.PurchaseDate = &date
				} else {
					result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: bad date_achat %q", line, raw))
				}
			}
			receptions = append(receptions, rec)
			existingReceptions[receptionID] = true
		}

		engine := inventoryEntity.Engine{ID: engineID, ReceptionID: receptionID}
		if v := get(row, "code_moteur"); v != "" {
			code := strings.ToUpper(v)
			engine.Code = &code
		}
		if v := get(row, "n_type_moteur"); v != "" {
			if typeID, err := parseUint(v); err == nil {
				engine.TypeID = &typeID
			} else {
				result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: bad n_type_moteur %q", line, v))
			}
		}
		if v := get(row, "num_serie"); v != "" {
			engine.SerialNo = &v
		}
		if v := get(row, "modele_saisi"); v != "" {
			engine.ModelEntered = &v
		}
		if v := get(row, "compo_moteur"); v != "" {
			engine.Composition = &v
		}
		if v := get(row, "etat_moteur"); v != "" {
			engine.EngineState = &v
		}
		if v := get(row, "observations"); v != "" {
			engine.Observations = &v
		}
		if v := get(row, "utilisateur"); v != "" {
			engine.User = &v
		}
		if v := get(row, "prix_achat_moteur"); v != "" {
			if price, err := decimal.NewFromString(v); err == nil {
				engine.PurchasePrice = &price
			} else {
				result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: bad prix_achat_moteur %q", line, v))
			}
		}
		engines = append(engines, engine)
		existingEngines[engineID] = true
	}

	if !opts.DryRun {
		err = db.Transaction(func(tx *gorm.DB) error {
			if len(receptions) > 0 {
				if err := tx.CreateInBatches(&receptions, opts.BatchSize).Error; err != nil {
					return fmt.Errorf("insert receptions: %w", err)
				}
			}
			if len(engines) > 0 {
				if err := tx.CreateInBatches(&engines, opts.BatchSize).Error; err != nil {
					return fmt.Errorf("insert engines: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	result.Created = len(engines)
	result.ReceptionsCreated = len(receptions)
	result.TotalTime = time.Since(start)
	return result, nil
}

// lookupIDs loads the full primary key set for a table into a map.
// Engine and reception numbers are dense legacy IDs, small enough to
// hold in memory for the duration of an import.
func lookupIDs(db *gorm.DB, table, column string) (map[uint]bool, error) {
	var ids []uint
	if err := db.Table(table).Pluck(column, &ids).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func parseUint(s string) (uint, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

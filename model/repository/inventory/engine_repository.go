package inventory

import (
	"database/sql"
	"strings"
	"time"

	"gorm.io/gorm"

	inventoryEntity "multirex.GO/model/entity/inventory"
)

type EngineRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewEngineRepository(db *gorm.DB) (*EngineRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &EngineRepository{db: db, sqlDB: sqlDB}, nil
}

func (r *EngineRepository) Create(e *inventoryEntity.Engine) error {
	return r.db.Create(e).Error
}

func (r *EngineRepository) FindByID(id uint) (*inventoryEntity.Engine, error) {
	var e inventoryEntity.Engine
	if err := r.db.First(&e, "n_moteur = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByCode returns engines with the given display code, newest first.
// Codes are stored upper-case; the lookup normalizes to match.
func (r *EngineRepository) FindByCode(code string) ([]inventoryEntity.Engine, error) {
	var out []inventoryEntity.Engine
	err := r.db.
		Where("code_moteur = ?", strings.ToUpper(strings.TrimSpace(code))).
		Order("n_moteur DESC").
		Find(&out).Error
	return out, err
}

func (r *EngineRepository) ListByReception(receptionID uint) ([]inventoryEntity.Engine, error) {
	var out []inventoryEntity.Engine
	err := r.db.Where("num_reception = ?", receptionID).Order("n_moteur").Find(&out).Error
	return out, err
}

func (r *EngineRepository) ListByShipment(shipmentID uint) ([]inventoryEntity.Engine, error) {
	var out []inventoryEntity.Engine
	err := r.db.Where("n_expedition = ?", shipmentID).Order("n_moteur").Find(&out).Error
	return out, err
}

// CountByReception avoids loading rows when only the lot size matters.
// Raw SQL, same shape the indexes were built for.
func (r *EngineRepository) CountByReception(receptionID uint) (int64, error) {
	const query = `SELECT COUNT(*) FROM tbl_moteurs WHERE num_reception = ?`
	var n int64
	err := r.sqlDB.QueryRow(query, receptionID).Scan(&n)
	return n, err
}

// AvailableCountByCode counts available engines for a code straight off
// the view. Raw SQL, hot path for the realtime lookup.
func (r *EngineRepository) AvailableCountByCode(code string) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM v_moteurs_dispo
		WHERE est_disponible = 1 AND UPPER(code_moteur) = ?`
	var n int64
	err := r.sqlDB.QueryRow(query, strings.ToUpper(strings.TrimSpace(code))).Scan(&n)
	return n, err
}

// AvgSalePriceByCode averages validated sale prices for a code since the
// cutoff. Returns false when no priced sale exists in the window.
func (r *EngineRepository) AvgSalePriceByCode(code string, since time.Time) (float64, bool, error) {
	const query = `
		SELECT AVG(em.prix_vente_moteur)
		FROM tbl_expeditions_moteurs em
		JOIN tbl_moteurs m ON m.n_moteur = em.n_moteur
		WHERE em.date_validation >= ?
		  AND em.prix_vente_moteur IS NOT NULL
		  AND em.prix_vente_moteur > 0
		  AND UPPER(m.code_moteur) = ?`
	var avg sql.NullFloat64
	err := r.sqlDB.QueryRow(query, since, strings.ToUpper(strings.TrimSpace(code))).Scan(&avg)
	if err != nil {
		return 0, false, err
	}
	return avg.Float64, avg.Valid, nil
}

// Reserve stamps the reservation fields. The engine stays available; a
// reservation is a note for the sales side, not a sale.
func (r *EngineRepository) Reserve(id uint, clientName string, at time.Time) error {
	return r.db.Model(&inventoryEntity.Engine{}).
		Where("n_moteur = ?", id).
		Updates(map[string]interface{}{
			"date_resa_moteur":   at,
			"resa_client_moteur": clientName,
		}).Error
}

func (r *EngineRepository) ClearReservation(id uint) error {
	return r.db.Model(&inventoryEntity.Engine{}).
		Where("n_moteur = ?", id).
		Updates(map[string]interface{}{
			"date_resa_moteur":   nil,
			"resa_client_moteur": nil,
		}).Error
}

// Archive flags the engine out of the sellable stock. Rows are never
// physically removed once created.
func (r *EngineRepository) Archive(id uint) error {
	return r.db.Model(&inventoryEntity.Engine{}).
		Where("n_moteur = ?", id).
		Update("archiver", true).Error
}

// SetShipment writes the denormalized shipment pointer. The junction table
// is maintained separately by the shipping repository.
func (r *EngineRepository) SetShipment(id uint, shipmentID *uint) error {
	return r.db.Model(&inventoryEntity.Engine{}).
		Where("n_moteur = ?", id).
		Update("n_expedition", shipmentID).Error
}

func (r *EngineRepository) Update(e *inventoryEntity.Engine) error {
	return r.db.Save(e).Error
}

func (r *EngineRepository) Delete(id uint) error {
	return r.db.Delete(&inventoryEntity.Engine{}, "n_moteur = ?", id).Error
}

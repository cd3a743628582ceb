package availability

import (
	"strings"

	"gorm.io/gorm"

	availabilityEntity "multirex.GO/model/entity/availability"
)

// AvailabilityRepository reads the two availability views. It never writes:
// availability is derived, and consumers must go through the views rather
// than re-deriving the rule.
type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// EngineFilter narrows ListEngines. Zero value lists everything.
type EngineFilter struct {
	Code          string
	OnlyAvailable bool
	Limit         int
}

func (r *AvailabilityRepository) FindEngine(id uint) (*availabilityEntity.EngineRow, error) {
	var row availabilityEntity.EngineRow
	if err := r.db.First(&row, "n_moteur = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *AvailabilityRepository) ListEngines(f EngineFilter) ([]availabilityEntity.EngineRow, error) {
	var out []availabilityEntity.EngineRow
	q := r.db.Order("n_moteur")
	if code := strings.ToUpper(strings.TrimSpace(f.Code)); code != "" {
		q = q.Where("code_moteur = ?", code)
	}
	if f.OnlyAvailable {
		q = q.Where("est_disponible = ?", 1)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *AvailabilityRepository) FindGearbox(id uint) (*availabilityEntity.GearboxRow, error) {
	var row availabilityEntity.GearboxRow
	if err := r.db.First(&row, "n_bv = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *AvailabilityRepository) ListGearboxes(onlyAvailable bool, limit int) ([]availabilityEntity.GearboxRow, error) {
	var out []availabilityEntity.GearboxRow
	q := r.db.Order("n_bv")
	if onlyAvailable {
		q = q.Where("est_disponible = ?", 1)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

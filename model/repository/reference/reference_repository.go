package reference

import (
	"gorm.io/gorm"

	referenceEntity "multirex.GO/model/entity/reference"
)

// ReferenceRepository serves the six lookup tables. The selectedOnly
// filters apply the legacy dropdown-visibility flag; treat it as display
// configuration, nothing more.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) Assignments(selectedOnly bool) ([]referenceEntity.Assignment, error) {
	var out []referenceEntity.Assignment
	q := r.db.Order("n_affectation")
	if selectedOnly {
		q = q.Where("selection_affectation = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) Locations(selectedOnly bool) ([]referenceEntity.Location, error) {
	var out []referenceEntity.Location
	q := r.db.Order("id_emplacement")
	if selectedOnly {
		q = q.Where("selection_emplacement = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) EnergyTypes() ([]referenceEntity.EnergyType, error) {
	var out []referenceEntity.EnergyType
	err := r.db.Order("n_energie").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) MiscStatuses(selectedOnly bool) ([]referenceEntity.MiscStatus, error) {
	var out []referenceEntity.MiscStatus
	q := r.db.Order("n_etat")
	if selectedOnly {
		q = q.Where("selection_etat = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) Brands(selectedOnly bool) ([]referenceEntity.Brand, error) {
	var out []referenceEntity.Brand
	q := r.db.Order("n_marque")
	if selectedOnly {
		q = q.Where("selection_marque = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) Countries(selectedOnly bool) ([]referenceEntity.Country, error) {
	var out []referenceEntity.Country
	q := r.db.Order("n_pays")
	if selectedOnly {
		q = q.Where("selection_pays = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) FindBrand(id uint) (*referenceEntity.Brand, error) {
	var b referenceEntity.Brand
	if err := r.db.First(&b, "n_marque = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

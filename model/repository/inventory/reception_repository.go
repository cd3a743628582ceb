package inventory

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	inventoryEntity "multirex.GO/model/entity/inventory"
)

type ReceptionRepository struct {
	db *gorm.DB
}

func NewReceptionRepository(db *gorm.DB) *ReceptionRepository {
	return &ReceptionRepository{db: db}
}

func (r *ReceptionRepository) Create(rec *inventoryEntity.Reception) error {
	return r.db.Create(rec).Error
}

func (r *ReceptionRepository) FindByID(id uint) (*inventoryEntity.Reception, error) {
	var rec inventoryEntity.Reception
	if err := r.db.First(&rec, "n_reception = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReceptionRepository) ListBySupplier(supplierID uint) ([]inventoryEntity.Reception, error) {
	var out []inventoryEntity.Reception
	err := r.db.Where("n_fournisseur = ?", supplierID).Order("n_reception").Find(&out).Error
	return out, err
}

// The paperwork flags advance one way: invoiced, then complete, then filed.
// Nothing in the schema enforces the order; these helpers are the one place
// in the application that mutates them.

func (r *ReceptionRepository) MarkInvoiced(id uint, invoiceDate datatypes.Date) error {
	return r.db.Model(&inventoryEntity.Reception{}).
		Where("n_reception = ?", id).
		Updates(map[string]interface{}{"facture": true, "date_facture_fourniss": invoiceDate}).Error
}

func (r *ReceptionRepository) MarkComplete(id uint) error {
	return r.db.Model(&inventoryEntity.Reception{}).
		Where("n_reception = ?", id).
		Update("reception_terminee", true).Error
}

func (r *ReceptionRepository) MarkFiled(id uint) error {
	return r.db.Model(&inventoryEntity.Reception{}).
		Where("n_reception = ?", id).
		Update("dossier_classe", true).Error
}

func (r *ReceptionRepository) Update(rec *inventoryEntity.Reception) error {
	return r.db.Save(rec).Error
}

func (r *ReceptionRepository) Delete(id uint) error {
	return r.db.Delete(&inventoryEntity.Reception{}, "n_reception = ?", id).Error
}

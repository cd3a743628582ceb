package party

import (
	"gorm.io/gorm"

	partyEntity "multirex.GO/model/entity/party"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create inserts a supplier with its caller-supplied id. A duplicate id or
// any other constraint violation comes back as the driver error, untouched.
func (r *SupplierRepository) Create(s *partyEntity.Supplier) error {
	return r.db.Create(s).Error
}

func (r *SupplierRepository) FindByID(id uint) (*partyEntity.Supplier, error) {
	var s partyEntity.Supplier
	if err := r.db.First(&s, "n_fournisseur = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) List(visibleOnly bool) ([]partyEntity.Supplier, error) {
	var out []partyEntity.Supplier
	q := r.db.Order("n_fournisseur")
	if visibleOnly {
		q = q.Where("afficher = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

// WreckSuppliers lists suppliers flagged as wreck sources (careco).
func (r *SupplierRepository) WreckSuppliers() ([]partyEntity.Supplier, error) {
	var out []partyEntity.Supplier
	err := r.db.Where("careco = ?", true).Order("n_fournisseur").Find(&out).Error
	return out, err
}

func (r *SupplierRepository) Update(s *partyEntity.Supplier) error {
	return r.db.Save(s).Error
}

// Delete removes a supplier. With receptions still attached the foreign
// key rejects the delete and the error is returned to the caller.
func (r *SupplierRepository) Delete(id uint) error {
	return r.db.Delete(&partyEntity.Supplier{}, "n_fournisseur = ?", id).Error
}

package inventory

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	inventoryEntity "multirex.GO/model/entity/inventory"
)

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create inserts a part line. The line total is computed from quantity and
// unit price when not supplied by the caller.
func (r *PartRepository) Create(p *inventoryEntity.Part) error {
	if p.LineTotal == nil && p.UnitPrice != nil {
		total := p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
		p.LineTotal = &total
	}
	return r.db.Create(p).Error
}

func (r *PartRepository) ListByReception(receptionID uint) ([]inventoryEntity.Part, error) {
	var out []inventoryEntity.Part
	err := r.db.Where("n_reception = ?", receptionID).Order("id_piece").Find(&out).Error
	return out, err
}

// ReceptionTotal sums the part line totals of one reception.
func (r *PartRepository) ReceptionTotal(receptionID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&inventoryEntity.Part{}).
		Where("n_reception = ?", receptionID).
		Select("SUM(total_ha_piece)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *PartRepository) Delete(id uint) error {
	return r.db.Delete(&inventoryEntity.Part{}, "id_piece = ?", id).Error
}

package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	inventoryEntity "multirex.GO/model/entity/inventory"
)

type GearboxRepository struct {
	db *gorm.DB
}

func NewGearboxRepository(db *gorm.DB) *GearboxRepository {
	return &GearboxRepository{db: db}
}

func (r *GearboxRepository) Create(g *inventoryEntity.Gearbox) error {
	return r.db.Create(g).Error
}

func (r *GearboxRepository) FindByID(id uint) (*inventoryEntity.Gearbox, error) {
	var g inventoryEntity.Gearbox
	if err := r.db.First(&g, "n_bv = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GearboxRepository) ListByReception(receptionID uint) ([]inventoryEntity.Gearbox, error) {
	var out []inventoryEntity.Gearbox
	err := r.db.Where("n_reception = ?", receptionID).Order("n_bv").Find(&out).Error
	return out, err
}

func (r *GearboxRepository) ListByLocation(locationID uint) ([]inventoryEntity.Gearbox, error) {
	var out []inventoryEntity.Gearbox
	err := r.db.Where("id_emplacement = ?", locationID).Order("n_bv").Find(&out).Error
	return out, err
}

// MarkSold records the sale on the gearbox row itself. The availability
// view reads these two flags; the shipment junction row is added
// separately when the box leaves in a container.
func (r *GearboxRepository) MarkSold(id uint, price decimal.Decimal, at time.Time) error {
	return r.db.Model(&inventoryEntity.Gearbox{}).
		Where("n_bv = ?", id).
		Updates(map[string]interface{}{
			"vendu":         true,
			"prix_vte_bv":   price,
			"date_vente_bv": at,
		}).Error
}

func (r *GearboxRepository) Update(g *inventoryEntity.Gearbox) error {
	return r.db.Save(g).Error
}

func (r *GearboxRepository) Delete(id uint) error {
	return r.db.Delete(&inventoryEntity.Gearbox{}, "n_bv = ?", id).Error
}

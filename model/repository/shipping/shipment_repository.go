package shipping

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	shippingEntity "multirex.GO/model/entity/shipping"
)

type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(s *shippingEntity.Shipment) error {
	return r.db.Create(s).Error
}

func (r *ShipmentRepository) FindByID(id uint) (*shippingEntity.Shipment, error) {
	var s shippingEntity.Shipment
	if err := r.db.First(&s, "n_expedition = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepository) ListByClient(clientID uint) ([]shippingEntity.Shipment, error) {
	var out []shippingEntity.Shipment
	err := r.db.Where("n_client = ?", clientID).Order("n_expedition").Find(&out).Error
	return out, err
}

func (r *ShipmentRepository) Open() ([]shippingEntity.Shipment, error) {
	var out []shippingEntity.Shipment
	err := r.db.Where("cloture_dossier = ?", false).Order("n_expedition").Find(&out).Error
	return out, err
}

// AddEngine records the sale of one engine in this shipment, with its
// realized price and validation time. The row's mere existence makes the
// engine unavailable; the caller decides separately whether to also stamp
// the engine's denormalized pointer.
func (r *ShipmentRepository) AddEngine(shipmentID, engineID uint, salePrice decimal.Decimal, validatedAt time.Time) (*shippingEntity.ShipmentEngine, error) {
	link := &shippingEntity.ShipmentEngine{
		ShipmentID:  shipmentID,
		EngineID:    engineID,
		SalePrice:   &salePrice,
		ValidatedAt: &validatedAt,
	}
	if err := r.db.Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *ShipmentRepository) AddGearbox(shipmentID, gearboxID uint, salePrice decimal.Decimal, validatedAt time.Time) (*shippingEntity.ShipmentGearbox, error) {
	link := &shippingEntity.ShipmentGearbox{
		ShipmentID:  shipmentID,
		GearboxID:   gearboxID,
		SalePrice:   &salePrice,
		ValidatedAt: &validatedAt,
	}
	if err := r.db.Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *ShipmentRepository) EngineLinks(shipmentID uint) ([]shippingEntity.ShipmentEngine, error) {
	var out []shippingEntity.ShipmentEngine
	err := r.db.Where("n_expedition = ?", shipmentID).Order("id_expedition_moteur").Find(&out).Error
	return out, err
}

func (r *ShipmentRepository) GearboxLinks(shipmentID uint) ([]shippingEntity.ShipmentGearbox, error) {
	var out []shippingEntity.ShipmentGearbox
	err := r.db.Where("n_expedition = ?", shipmentID).Order("id_expedition_boite").Find(&out).Error
	return out, err
}

// LinksForEngine returns the sale rows of one engine, newest validation
// first. More than one row means double-validated history data.
func (r *ShipmentRepository) LinksForEngine(engineID uint) ([]shippingEntity.ShipmentEngine, error) {
	var out []shippingEntity.ShipmentEngine
	err := r.db.Where("n_moteur = ?", engineID).Order("date_validation DESC").Find(&out).Error
	return out, err
}

func (r *ShipmentRepository) Close(id uint) error {
	return r.db.Model(&shippingEntity.Shipment{}).
		Where("n_expedition = ?", id).
		Updates(map[string]interface{}{"expedition_terminee": true, "cloture_dossier": true}).Error
}

func (r *ShipmentRepository) Update(s *shippingEntity.Shipment) error {
	return r.db.Save(s).Error
}

func (r *ShipmentRepository) Delete(id uint) error {
	return r.db.Delete(&shippingEntity.Shipment{}, "n_expedition = ?", id).Error
}

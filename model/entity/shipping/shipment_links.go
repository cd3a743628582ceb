package shipping

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentEngine represents the tbl_expeditions_moteurs junction table: one
// engine sold within one shipment, with the realized sale price and the
// validation timestamp. Presence of a row makes the engine unavailable.
type ShipmentEngine struct {
	ID          uint             `gorm:"column:id_expedition_moteur;primaryKey;autoIncrement" json:"id_expedition_moteur"`
	ShipmentID  uint             `gorm:"column:n_expedition;not null;index:idx_exped_moteurs_expedition" json:"n_expedition"`
	EngineID    uint             `gorm:"column:n_moteur;not null;index:idx_exped_moteurs_moteur" json:"n_moteur"`
	SalePrice   *decimal.Decimal `gorm:"column:prix_vente_moteur;type:decimal(12,2)" json:"prix_vente_moteur,omitempty"`
	ValidatedAt *time.Time       `gorm:"column:date_validation;index:idx_exped_moteurs_validation" json:"date_validation,omitempty"`
}

func (ShipmentEngine) TableName() string {
	return "tbl_expeditions_moteurs"
}

// ShipmentGearbox represents the tbl_expeditions_boites junction table.
type ShipmentGearbox struct {
	ID          uint             `gorm:"column:id_expedition_boite;primaryKey;autoIncrement" json:"id_expedition_boite"`
	ShipmentID  uint             `gorm:"column:n_expedition;not null;index:idx_exped_boites_expedition" json:"n_expedition"`
	GearboxID   uint             `gorm:"column:n_bv;not null;index:idx_exped_boites_bv" json:"n_bv"`
	SalePrice   *decimal.Decimal `gorm:"column:prix_vente_bv;type:decimal(12,2)" json:"prix_vente_bv,omitempty"`
	ValidatedAt *time.Time       `gorm:"column:date_validation;index:idx_exped_boites_validation" json:"date_validation,omitempty"`
}

func (ShipmentGearbox) TableName() string {
	return "tbl_expeditions_boites"
}

package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gearbox represents the tbl_boites table. Same lifecycle as Engine but
// availability is carried by the stock/vendu pair instead of an archive
// flag; both are nullable in the legacy data, NULL meaning "never set".
type Gearbox struct {
	ID            uint             `gorm:"column:n_bv;primaryKey" json:"n_bv"`
	InternalRef   *string          `gorm:"column:num_interne_bv;type:varchar(40)" json:"num_interne_bv,omitempty"`
	ReceptionID   uint             `gorm:"column:n_reception;not null;index:idx_boites_reception" json:"n_reception"`
	Type          *string          `gorm:"column:type_bv;type:varchar(60)" json:"type_bv,omitempty"`
	Ref           *string          `gorm:"column:ref_bv;type:varchar(60)" json:"ref_bv,omitempty"`
	EngineRef     *string          `gorm:"column:num_interne_moteur;type:varchar(40)" json:"num_interne_moteur,omitempty"`
	PurchasePrice *decimal.Decimal `gorm:"column:achat_bv;type:decimal(12,2)" json:"achat_bv,omitempty"`
	ReservedAt    *time.Time       `gorm:"column:date_resa_bv" json:"date_resa_bv,omitempty"`
	ReservedFor   *string          `gorm:"column:resa_client_bv;type:varchar(120)" json:"resa_client_bv,omitempty"`
	Observations  *string          `gorm:"column:observations_bv;type:text" json:"observations_bv,omitempty"`
	User          *string          `gorm:"column:utilisateur;type:varchar(60)" json:"utilisateur,omitempty"`
	ModifiedAt    *time.Time       `gorm:"column:date_modif" json:"date_modif,omitempty"`
	LocationID    *uint            `gorm:"column:id_emplacement" json:"id_emplacement,omitempty"`
	SalePrice     *decimal.Decimal `gorm:"column:prix_vte_bv;type:decimal(12,2)" json:"prix_vte_bv,omitempty"`
	SoldAt        *time.Time       `gorm:"column:date_vente_bv" json:"date_vente_bv,omitempty"`
	InStock       *bool            `gorm:"column:stock" json:"stock,omitempty"`
	Sold          *bool            `gorm:"column:vendu" json:"vendu,omitempty"`
	StockCheck    *int16           `gorm:"column:pointage_inventaire" json:"pointage_inventaire,omitempty"`
}

func (Gearbox) TableName() string {
	return "tbl_boites"
}

package shipping

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Shipment represents the tbl_expeditions table: one outgoing container/lot
// to a client.
type Shipment struct {
	ID              uint             `gorm:"column:n_expedition;primaryKey" json:"n_expedition"`
	ClientID        uint             `gorm:"column:n_client;not null;index:idx_expeditions_client" json:"n_client"`
	LoadDate        *datatypes.Date  `gorm:"column:date_chargement" json:"date_chargement,omitempty"`
	ContainerType   *string          `gorm:"column:type_container;type:varchar(40)" json:"type_container,omitempty"`
	ContainerRef    *string          `gorm:"column:ref_container;type:varchar(60)" json:"ref_container,omitempty"`
	SealNo          *string          `gorm:"column:n_plomb;type:varchar(40)" json:"n_plomb,omitempty"`
	CartonCount     *int             `gorm:"column:nb_cartons" json:"nb_cartons,omitempty"`
	PalletCount     *int             `gorm:"column:nb_palettes" json:"nb_palettes,omitempty"`
	Weight          *decimal.Decimal `gorm:"column:poids;type:decimal(12,2)" json:"poids,omitempty"`
	ContainerTare   *decimal.Decimal `gorm:"column:tare_container;type:decimal(12,2)" json:"tare_container,omitempty"`
	TransitAgentNo  *uint            `gorm:"column:n_transitaire" json:"n_transitaire,omitempty"`
	AmountExclTax   *decimal.Decimal `gorm:"column:montant_ht;type:decimal(12,2)" json:"montant_ht,omitempty"`
	OtherInfo       *string          `gorm:"column:autres_info;type:text" json:"autres_info,omitempty"`
	InvoiceNo       *string          `gorm:"column:num_facture;type:varchar(40)" json:"num_facture,omitempty"`
	Complete        bool             `gorm:"column:expedition_terminee;not null;default:false" json:"expedition_terminee"`
	Closed          bool             `gorm:"column:cloture_dossier;not null;default:false" json:"cloture_dossier"`
	EnginesComplete bool             `gorm:"column:moteurs_completes;not null;default:false" json:"moteurs_completes"`
	HandlingFee     *decimal.Decimal `gorm:"column:frais_manut;type:decimal(12,2)" json:"frais_manut,omitempty"`
	CFR             *decimal.Decimal `gorm:"column:cfr;type:decimal(12,2)" json:"cfr,omitempty"`
	SmallParts      bool             `gorm:"column:petites_pieces;not null;default:false" json:"petites_pieces"`
}

func (Shipment) TableName() string {
	return "tbl_expeditions"
}

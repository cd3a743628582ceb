package billing

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice represents the tbl_factures table. The primary key is the
// caller-supplied document number (a text code, not a surrogate id): the
// accounting side assigns it and every external document carries it.
type Invoice struct {
	DocumentNo   string          `gorm:"column:num_piece;type:varchar(40);primaryKey" json:"num_piece"`
	ClientID     uint            `gorm:"column:n_client;not null;index:idx_factures_client" json:"n_client"`
	ShipmentID   *uint           `gorm:"column:n_expedition;index:idx_factures_expedition" json:"n_expedition,omitempty"`
	PieceType    *string         `gorm:"column:type_de_piece;type:varchar(40)" json:"type_de_piece,omitempty"`
	InvoiceDate  *datatypes.Date `gorm:"column:date_facture" json:"date_facture,omitempty"`
	InvoiceYear  *int            `gorm:"column:annee_fact" json:"annee_fact,omitempty"`
	ContainerRef *string         `gorm:"column:ref_container;type:varchar(60)" json:"ref_container,omitempty"`

	// Tax/export amount breakdown.
	Export        *decimal.Decimal `gorm:"column:export;type:decimal(12,2)" json:"export,omitempty"`
	ExportEU      *decimal.Decimal `gorm:"column:exp_cee;type:decimal(12,2)" json:"exp_cee,omitempty"`
	ExportVAT     *decimal.Decimal `gorm:"column:exp_tva;type:decimal(12,2)" json:"exp_tva,omitempty"`
	DomesticVAT   *decimal.Decimal `gorm:"column:r_tva;type:decimal(12,2)" json:"r_tva,omitempty"`
	DomesticEU    *decimal.Decimal `gorm:"column:r_cee;type:decimal(12,2)" json:"r_cee,omitempty"`
	SuspendedVAT  *decimal.Decimal `gorm:"column:susp_tva;type:decimal(12,2)" json:"susp_tva,omitempty"`
	OtherService  *decimal.Decimal `gorm:"column:autre_prest;type:decimal(12,2)" json:"autre_prest,omitempty"`
	FreightVAT    *decimal.Decimal `gorm:"column:port_tva;type:decimal(12,2)" json:"port_tva,omitempty"`
	FreightExempt *decimal.Decimal `gorm:"column:port_exo;type:decimal(12,2)" json:"port_exo,omitempty"`

	// Customs/workflow.
	ExANumber      *string          `gorm:"column:ex_a_num1;type:varchar(60)" json:"ex_a_num1,omitempty"`
	ExAReceived    bool             `gorm:"column:ex_a;not null;default:false" json:"ex_a"`
	BillsOfLading  bool             `gorm:"column:connaissements;not null;default:false" json:"connaissements"`
	DEBDeclared    bool             `gorm:"column:deb;not null;default:false" json:"deb"`
	Acquitted      bool             `gorm:"column:facture_acquittee;not null;default:false" json:"facture_acquittee"`
	Outstanding    *decimal.Decimal `gorm:"column:reste_a_solder;type:decimal(12,2)" json:"reste_a_solder,omitempty"`
	TransitAgent   *string          `gorm:"column:transitaire;type:varchar(120)" json:"transitaire,omitempty"`
	TransitAgentAd *string          `gorm:"column:transitaire_hors_liste;type:varchar(120)" json:"transitaire_hors_liste,omitempty"`
	Observations   *string          `gorm:"column:observations_facture;type:text" json:"observations_facture,omitempty"`
	Filed          bool             `gorm:"column:dossier_classe;not null;default:false" json:"dossier_classe"`
	TransitChased  bool             `gorm:"column:relance_transit;not null;default:false" json:"relance_transit"`
}

func (Invoice) TableName() string {
	return "tbl_factures"
}

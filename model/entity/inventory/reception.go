package inventory

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	partyEntity "multirex.GO/model/entity/party"
)

// Reception represents the tbl_receptions table: one incoming purchase lot
// from a supplier. The flags record how far the paperwork has progressed
// (invoiced, reception complete, folder filed); they are mutated in place
// as the lot moves along, the row itself is never deleted once assets
// reference it.
type Reception struct {
	ID              uint                  `gorm:"column:n_reception;primaryKey" json:"n_reception"`
	SupplierID      uint                  `gorm:"column:n_fournisseur;not null;index:idx_receptions_fournisseur" json:"n_fournisseur"`
	Supplier        *partyEntity.Supplier `gorm:"foreignKey:SupplierID" json:"-"`
	PurchaseDate    *datatypes.Date       `gorm:"column:date_achat" json:"date_achat,omitempty"`
	AmountExclTax   *decimal.Decimal      `gorm:"column:montant_ht;type:decimal(12,2)" json:"montant_ht,omitempty"`
	Invoiced        bool                  `gorm:"column:facture;not null;default:false" json:"facture"`
	SupplierInvDate *datatypes.Date       `gorm:"column:date_facture_fourniss" json:"date_facture_fourniss,omitempty"`
	Complete        bool                  `gorm:"column:reception_terminee;not null;default:false" json:"reception_terminee"`
	Filed           bool                  `gorm:"column:dossier_classe;not null;default:false" json:"dossier_classe"`
	CrushedList     *string               `gorm:"column:liste_grillages;type:text" json:"liste_grillages,omitempty"`
	OtherInfo       *string               `gorm:"column:autres_info;type:text" json:"autres_info,omitempty"`
}

func (Reception) TableName() string {
	return "tbl_receptions"
}

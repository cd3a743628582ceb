package inventory

import "github.com/shopspring/decimal"

// Part represents the tbl_pieces table: a quantity line of loose parts in a
// reception. Unlike engines and gearboxes the legacy table had no business
// key, so rows get a generated surrogate id.
type Part struct {
	ID          uint             `gorm:"column:id_piece;primaryKey;autoIncrement" json:"id_piece"`
	ReceptionID uint             `gorm:"column:n_reception;not null;index:idx_pieces_reception" json:"n_reception"`
	Quantity    int              `gorm:"column:qte;not null;default:0" json:"qte"`
	TypeID      *uint            `gorm:"column:n_type_piece" json:"n_type_piece,omitempty"`
	Model       *string          `gorm:"column:modele_piece;type:varchar(120)" json:"modele_piece,omitempty"`
	UnitPrice   *decimal.Decimal `gorm:"column:pu_piece;type:decimal(12,2)" json:"pu_piece,omitempty"`
	LineTotal   *decimal.Decimal `gorm:"column:total_ha_piece;type:decimal(12,2)" json:"total_ha_piece,omitempty"`
}

func (Part) TableName() string {
	return "tbl_pieces"
}

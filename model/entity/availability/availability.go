package availability

import (
	inventoryEntity "multirex.GO/model/entity/inventory"
)

// Read-only row models for the two availability views. Never migrate or
// write through these; the views are the single source of truth for the
// availability rule and re-evaluate on every read.

// EngineRow is one v_moteurs_dispo row: the full tbl_moteurs row plus the
// derived columns.
type EngineRow struct {
	inventoryEntity.Engine `gorm:"embedded"`

	// marque/energie come from placeholder joins carried over from the
	// legacy base; the mapping is unconfirmed (see DESIGN.md).
	Brand     *string `gorm:"column:marque;->" json:"marque,omitempty"`
	Energy    *string `gorm:"column:energie;->" json:"energie,omitempty"`
	TypeYear  *string `gorm:"column:type_annee;->" json:"type_annee,omitempty"`
	Available int     `gorm:"column:est_disponible;->" json:"est_disponible"`
}

func (EngineRow) TableName() string {
	return "v_moteurs_dispo"
}

// GearboxRow is one v_boites_dispo row.
type GearboxRow struct {
	inventoryEntity.Gearbox `gorm:"embedded"`

	Available int `gorm:"column:est_disponible;->" json:"est_disponible"`
}

func (GearboxRow) TableName() string {
	return "v_boites_dispo"
}

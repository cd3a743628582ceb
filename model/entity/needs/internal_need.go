package needs

import "time"

// InternalNeed represents the internal_needs table: a wanted-engine request
// captured by the sales side, matched later against incoming stock and
// breaker offers. All descriptive fields are free text on purpose.
type InternalNeed struct {
	ID         uint64    `gorm:"column:need_id;primaryKey;autoIncrement" json:"need_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ClientName *string   `gorm:"column:client_name;type:varchar(200)" json:"client_name,omitempty"`
	EngineCode *string   `gorm:"column:code_moteur;type:varchar(40)" json:"code_moteur,omitempty"`
	Brand      *string   `gorm:"column:marque;type:varchar(120)" json:"marque,omitempty"`
	Energy     *string   `gorm:"column:energie;type:varchar(60)" json:"energie,omitempty"`
	Year       *string   `gorm:"column:annee;type:varchar(20)" json:"annee,omitempty"`
	ModelText  *string   `gorm:"column:modele_text;type:varchar(200)" json:"modele_text,omitempty"`
	Comment    *string   `gorm:"column:comment;type:text" json:"comment,omitempty"`
}

func (InternalNeed) TableName() string {
	return "internal_needs"
}

package breaker

import "time"

// ClickOffer represents the breaker_click_offers table: a structured
// listing built by picking an engine code plus descriptive fields. The
// photo/audio columns store opaque paths; file storage lives elsewhere.
type ClickOffer struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BreakerID       uint64    `gorm:"column:breaker_id;not null;index" json:"breaker_id"`
	EngineCode      string    `gorm:"column:code_moteur;type:varchar(40);not null" json:"code_moteur"`
	Brand           *string   `gorm:"column:marque;type:varchar(120)" json:"marque,omitempty"`
	Energy          *string   `gorm:"column:energie;type:varchar(60)" json:"energie,omitempty"`
	TypeName        *string   `gorm:"column:type_nom;type:varchar(120)" json:"type_nom,omitempty"`
	TypeModel       *string   `gorm:"column:type_modele;type:varchar(120)" json:"type_modele,omitempty"`
	TypeYear        *string   `gorm:"column:type_annee;type:varchar(20)" json:"type_annee,omitempty"`
	AskingPrice     *float64  `gorm:"column:prix_demande" json:"prix_demande,omitempty"`
	Quantity        int       `gorm:"column:qty;not null;default:1" json:"qty"`
	Note            *string   `gorm:"column:note;type:text" json:"note,omitempty"`
	PlateNo         *string   `gorm:"column:immatriculation;type:varchar(20)" json:"immatriculation,omitempty"`
	VIN             *string   `gorm:"column:vin;type:varchar(30)" json:"vin,omitempty"`
	EnginePhotoPath *string   `gorm:"column:photo_moteur_path;type:varchar(250)" json:"photo_moteur_path,omitempty"`
	PlatePhotoPath  *string   `gorm:"column:photo_plaque_path;type:varchar(250)" json:"photo_plaque_path,omitempty"`
	AudioPath       *string   `gorm:"column:audio_path;type:varchar(250)" json:"audio_path,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ClickOffer) TableName() string {
	return "breaker_click_offers"
}

// FreeOffer represents the breaker_free_offers table: a free-text listing
// with the same price/identification/media tail as ClickOffer.
type FreeOffer struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BreakerID       uint64    `gorm:"column:breaker_id;not null;index" json:"breaker_id"`
	Text            string    `gorm:"column:texte;type:text;not null" json:"texte"`
	AskingPrice     *float64  `gorm:"column:prix_demande" json:"prix_demande,omitempty"`
	Note            *string   `gorm:"column:note;type:text" json:"note,omitempty"`
	PlateNo         *string   `gorm:"column:immatriculation;type:varchar(20)" json:"immatriculation,omitempty"`
	VIN             *string   `gorm:"column:vin;type:varchar(30)" json:"vin,omitempty"`
	EnginePhotoPath *string   `gorm:"column:photo_moteur_path;type:varchar(250)" json:"photo_moteur_path,omitempty"`
	PlatePhotoPath  *string   `gorm:"column:photo_plaque_path;type:varchar(250)" json:"photo_plaque_path,omitempty"`
	AudioPath       *string   `gorm:"column:audio_path;type:varchar(250)" json:"audio_path,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FreeOffer) TableName() string {
	return "breaker_free_offers"
}

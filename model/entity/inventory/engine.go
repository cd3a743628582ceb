package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Engine represents the tbl_moteurs table.
//
// The component-presence columns (alternateur .. autre) are boolean-ish
// smallints as imported from the legacy base, not real booleans: historical
// exports carry 0/1/NULL and downstream spreadsheets read them as numbers.
//
// ShipmentID duplicates the tbl_expeditions_moteurs relation. Both are kept
// and both are consulted by the availability view; collapsing them would
// change the availability of historical rows where only one side was set.
type Engine struct {
	ID            uint             `gorm:"column:n_moteur;primaryKey" json:"n_moteur"`
	InternalRef   *string          `gorm:"column:num_interne_moteur;type:varchar(40)" json:"num_interne_moteur,omitempty"`
	ReceptionID   uint             `gorm:"column:num_reception;not null;index:idx_moteurs_reception" json:"num_reception"`
	TypeID        *uint            `gorm:"column:n_type_moteur" json:"n_type_moteur,omitempty"`
	SerialNo      *string          `gorm:"column:num_serie;type:varchar(60)" json:"num_serie,omitempty"`
	ModelEntered  *string          `gorm:"column:modele_saisi;type:varchar(120)" json:"modele_saisi,omitempty"`
	Composition   *string          `gorm:"column:compo_moteur;type:varchar(60)" json:"compo_moteur,omitempty"`
	GearboxInfo   *string          `gorm:"column:info_bv;type:varchar(120)" json:"info_bv,omitempty"`
	GearboxType   *string          `gorm:"column:type_bv;type:varchar(60)" json:"type_bv,omitempty"`
	GearboxRef    *string          `gorm:"column:num_interne_bv;type:varchar(40)" json:"num_interne_bv,omitempty"`
	AssignmentID  *uint            `gorm:"column:n_affectation" json:"n_affectation,omitempty"`
	PartRef       *string          `gorm:"column:ref_pi;type:varchar(60)" json:"ref_pi,omitempty"`
	PartType      *string          `gorm:"column:type_pi;type:varchar(60)" json:"type_pi,omitempty"`
	EngineState   *string          `gorm:"column:etat_moteur;type:varchar(60)" json:"etat_moteur,omitempty"`
	CasingState   *string          `gorm:"column:etat_carter;type:varchar(60)" json:"etat_carter,omitempty"`
	Observations  *string          `gorm:"column:observations;type:text" json:"observations,omitempty"`
	PurchasePrice *decimal.Decimal `gorm:"column:prix_achat_moteur;type:decimal(12,2)" json:"prix_achat_moteur,omitempty"`
	ReservedAt    *time.Time       `gorm:"column:date_resa_moteur" json:"date_resa_moteur,omitempty"`
	ReservedFor   *string          `gorm:"column:resa_client_moteur;type:varchar(120)" json:"resa_client_moteur,omitempty"`
	User          *string          `gorm:"column:utilisateur;type:varchar(60)" json:"utilisateur,omitempty"`
	ModifiedAt    *time.Time       `gorm:"column:date_modif" json:"date_modif,omitempty"`
	StockCheck    *int16           `gorm:"column:pointage_inventaire" json:"pointage_inventaire,omitempty"`
	StockCheck2   *int16           `gorm:"column:pointage2" json:"pointage2,omitempty"`

	// Component presence flags.
	Alternator   int16 `gorm:"column:alternateur;not null;default:0" json:"alternateur"`
	Starter      int16 `gorm:"column:demarreur;not null;default:0" json:"demarreur"`
	Carburetor   int16 `gorm:"column:carburateur;not null;default:0" json:"carburateur"`
	Distributor  int16 `gorm:"column:allumeur;not null;default:0" json:"allumeur"`
	PAV          int16 `gorm:"column:pav;not null;default:0" json:"pav"`
	InjectorPump int16 `gorm:"column:pompe_inj;not null;default:0" json:"pompe_inj"`
	Turbo        int16 `gorm:"column:turbo;not null;default:0" json:"turbo"`
	Injectors    int16 `gorm:"column:injecteurs;not null;default:0" json:"injecteurs"`
	Compressor   int16 `gorm:"column:compresseur;not null;default:0" json:"compresseur"`
	PDA          int16 `gorm:"column:pda;not null;default:0" json:"pda"`
	Clutch       int16 `gorm:"column:embrayage;not null;default:0" json:"embrayage"`
	Other        int16 `gorm:"column:autre;not null;default:0" json:"autre"`

	GeoLocation  *string          `gorm:"column:geloc_mot;type:varchar(60)" json:"geloc_mot,omitempty"`
	InitialCompo *string          `gorm:"column:compo_init;type:varchar(60)" json:"compo_init,omitempty"`
	Weight       *decimal.Decimal `gorm:"column:poids_moteur;type:decimal(12,2)" json:"poids_moteur,omitempty"`
	ModifiedAt2  *time.Time       `gorm:"column:date_modif2" json:"date_modif2,omitempty"`
	ModifiedBy   *string          `gorm:"column:utilisateur_modif;type:varchar(60)" json:"utilisateur_modif,omitempty"`
	Selected     *bool            `gorm:"column:selection_moteur_tble" json:"selection_moteur_tble,omitempty"`
	Code         *string          `gorm:"column:code_moteur;type:varchar(40);index:idx_moteurs_code" json:"code_moteur,omitempty"`
	ExitDate     *time.Time       `gorm:"column:date_sortie" json:"date_sortie,omitempty"`
	Archived     *bool            `gorm:"column:archiver" json:"archiver,omitempty"`
	ShipmentID   *uint            `gorm:"column:n_expedition;index:idx_moteurs_expedition" json:"n_expedition,omitempty"`
}

func (Engine) TableName() string {
	return "tbl_moteurs"
}

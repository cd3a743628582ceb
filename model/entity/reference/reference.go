package reference

// Reference tables. Rows are administrator-maintained lookup data with
// caller-supplied ids; they are referenced by the inventory tables and
// never cascade-deleted. The selection_* flags drive dropdown visibility
// in consuming applications and carry no business meaning here.

// Assignment represents the tbl_affectations table (engine assignment categories).
type Assignment struct {
	ID       uint    `gorm:"column:n_affectation;primaryKey" json:"n_affectation"`
	Name     *string `gorm:"column:nom_affectation;type:varchar(120)" json:"nom_affectation,omitempty"`
	Selected *bool   `gorm:"column:selection_affectation" json:"selection_affectation,omitempty"`
}

func (Assignment) TableName() string {
	return "tbl_affectations"
}

// Location represents the tbl_emplacements table (storage locations).
type Location struct {
	ID       uint    `gorm:"column:id_emplacement;primaryKey" json:"id_emplacement"`
	Name     *string `gorm:"column:nom_emplacement;type:varchar(120)" json:"nom_emplacement,omitempty"`
	Selected *bool   `gorm:"column:selection_emplacement" json:"selection_emplacement,omitempty"`
}

func (Location) TableName() string {
	return "tbl_emplacements"
}

// EnergyType represents the tbl_energie table (fuel/energy types).
type EnergyType struct {
	ID          uint    `gorm:"column:n_energie;primaryKey" json:"n_energie"`
	Name        *string `gorm:"column:nom_energie;type:varchar(120)" json:"nom_energie,omitempty"`
	NameEnglish *string `gorm:"column:nom_energie_anglais;type:varchar(120)" json:"nom_energie_anglais,omitempty"`
}

func (EnergyType) TableName() string {
	return "tbl_energie"
}

// MiscStatus represents the tbl_etats_divers table (miscellaneous status codes).
type MiscStatus struct {
	ID           uint    `gorm:"column:n_etat;primaryKey" json:"n_etat"`
	Label        *string `gorm:"column:etat;type:varchar(120)" json:"etat,omitempty"`
	LabelEnglish *string `gorm:"column:etat_anglais;type:varchar(120)" json:"etat_anglais,omitempty"`
	Selected     *bool   `gorm:"column:selection_etat" json:"selection_etat,omitempty"`
	Abbreviation *string `gorm:"column:abreviation;type:varchar(30)" json:"abreviation,omitempty"`
}

func (MiscStatus) TableName() string {
	return "tbl_etats_divers"
}

// Brand represents the tbl_marques table (vehicle brands).
type Brand struct {
	ID       uint    `gorm:"column:n_marque;primaryKey" json:"n_marque"`
	Name     *string `gorm:"column:nom_marque;type:varchar(120)" json:"nom_marque,omitempty"`
	Selected *bool   `gorm:"column:selection_marque" json:"selection_marque,omitempty"`
}

func (Brand) TableName() string {
	return "tbl_marques"
}

// Country represents the tbl_pays table.
type Country struct {
	ID       uint    `gorm:"column:n_pays;primaryKey" json:"n_pays"`
	Name     *string `gorm:"column:nom_pays;type:varchar(120)" json:"nom_pays,omitempty"`
	Selected *bool   `gorm:"column:selection_pays" json:"selection_pays,omitempty"`
}

func (Country) TableName() string {
	return "tbl_pays"
}

package party

// Client represents the tbl_clients table.
//
// GroupingNo points to another client row (buying-group head) but the
// original schema declares no foreign key for it, so none is declared here
// either; integrity is the application's problem, as it always was.
type Client struct {
	ID           uint    `gorm:"column:n_client;primaryKey" json:"n_client"`
	Company      *string `gorm:"column:societe;type:varchar(200)" json:"societe,omitempty"`
	ContactTitle *string `gorm:"column:titre_contact;type:varchar(40)" json:"titre_contact,omitempty"`
	ContactLast  *string `gorm:"column:nom_contact;type:varchar(120)" json:"nom_contact,omitempty"`
	ContactFirst *string `gorm:"column:prenom_contact;type:varchar(120)" json:"prenom_contact,omitempty"`
	CommonName   *string `gorm:"column:nom_usage;type:varchar(120)" json:"nom_usage,omitempty"`
	Address      *string `gorm:"column:adresse;type:varchar(250)" json:"adresse,omitempty"`
	City         *string `gorm:"column:ville;type:varchar(120)" json:"ville,omitempty"`
	PostalCode   *string `gorm:"column:code_postal;type:varchar(20)" json:"code_postal,omitempty"`
	CountryID    *uint   `gorm:"column:pays" json:"pays,omitempty"`
	Phone        *string `gorm:"column:tel;type:varchar(40)" json:"tel,omitempty"`
	Fax          *string `gorm:"column:fax;type:varchar(40)" json:"fax,omitempty"`
	Email        *string `gorm:"column:email;type:varchar(120)" json:"email,omitempty"`
	Remarks      *string `gorm:"column:remarques;type:text" json:"remarques,omitempty"`
	ExportRegime *string `gorm:"column:e_r;type:varchar(10)" json:"e_r,omitempty"`
	InDropdown   bool    `gorm:"column:afficher_deroulant;not null;default:true" json:"afficher_deroulant"`
	VATNumber    *string `gorm:"column:ident_tva;type:varchar(40)" json:"ident_tva,omitempty"`
	GroupingNo   *uint   `gorm:"column:n_regroup_clt" json:"n_regroup_clt,omitempty"`
}

func (Client) TableName() string {
	return "tbl_clients"
}

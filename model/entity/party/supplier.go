package party

// Supplier represents the tbl_fournisseurs table. Ids are assigned by the
// back office, not auto-generated: external spreadsheets reference them.
type Supplier struct {
	ID            uint    `gorm:"column:n_fournisseur;primaryKey" json:"n_fournisseur"`
	Name          *string `gorm:"column:nom_fournisseur;type:varchar(200)" json:"nom_fournisseur,omitempty"`
	Contact       *string `gorm:"column:contact_fourniss;type:varchar(120)" json:"contact_fourniss,omitempty"`
	Address1      *string `gorm:"column:adresse1_fourniss;type:varchar(200)" json:"adresse1_fourniss,omitempty"`
	Address2      *string `gorm:"column:adresse2_fourniss;type:varchar(200)" json:"adresse2_fourniss,omitempty"`
	PostalCode    *string `gorm:"column:cp_fourniss;type:varchar(20)" json:"cp_fourniss,omitempty"`
	City          *string `gorm:"column:ville_fourniss;type:varchar(120)" json:"ville_fourniss,omitempty"`
	Phone         *string `gorm:"column:tel_fourniss;type:varchar(40)" json:"tel_fourniss,omitempty"`
	Fax           *string `gorm:"column:fax_fourniss;type:varchar(40)" json:"fax_fourniss,omitempty"`
	Mobile        *string `gorm:"column:port_fourniss;type:varchar(40)" json:"port_fourniss,omitempty"`
	Email         *string `gorm:"column:mail_fourniss;type:varchar(120)" json:"mail_fourniss,omitempty"`
	OtherInfo     *string `gorm:"column:autres_infos;type:text" json:"autres_infos,omitempty"`
	IsShareholder bool    `gorm:"column:actionnaire;not null;default:false" json:"actionnaire"`
	WreckSupplier bool    `gorm:"column:careco;not null;default:false" json:"careco"`
	AssignedNo    *string `gorm:"column:n_attribue;type:varchar(40)" json:"n_attribue,omitempty"`
	Visible       bool    `gorm:"column:afficher;not null;default:true" json:"afficher"`
}

func (Supplier) TableName() string {
	return "tbl_fournisseurs"
}

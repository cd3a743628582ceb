package party

import (
	"gorm.io/gorm"

	partyEntity "multirex.GO/model/entity/party"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(c *partyEntity.Client) error {
	return r.db.Create(c).Error
}

func (r *ClientRepository) FindByID(id uint) (*partyEntity.Client, error) {
	var c partyEntity.Client
	if err := r.db.First(&c, "n_client = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListDropdown returns the clients shown in selection dropdowns.
func (r *ClientRepository) ListDropdown() ([]partyEntity.Client, error) {
	var out []partyEntity.Client
	err := r.db.Where("afficher_deroulant = ?", true).Order("n_client").Find(&out).Error
	return out, err
}

func (r *ClientRepository) List() ([]partyEntity.Client, error) {
	var out []partyEntity.Client
	err := r.db.Order("n_client").Find(&out).Error
	return out, err
}

// Group returns all clients sharing a grouping number, the head included.
// The grouping column has no declared foreign key; rows pointing at a
// missing head simply come back as a group of one.
func (r *ClientRepository) Group(groupNo uint) ([]partyEntity.Client, error) {
	var out []partyEntity.Client
	err := r.db.
		Where("n_regroup_clt = ? OR n_client = ?", groupNo, groupNo).
		Order("n_client").
		Find(&out).Error
	return out, err
}

func (r *ClientRepository) Update(c *partyEntity.Client) error {
	return r.db.Save(c).Error
}

func (r *ClientRepository) Delete(id uint) error {
	return r.db.Delete(&partyEntity.Client{}, "n_client = ?", id).Error
}

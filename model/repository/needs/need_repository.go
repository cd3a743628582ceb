package needs

import (
	"gorm.io/gorm"

	needsEntity "multirex.GO/model/entity/needs"
)

type NeedRepository struct {
	db *gorm.DB
}

func NewNeedRepository(db *gorm.DB) *NeedRepository {
	return &NeedRepository{db: db}
}

func (r *NeedRepository) Create(n *needsEntity.InternalNeed) error {
	return r.db.Create(n).Error
}

func (r *NeedRepository) Recent(limit int) ([]needsEntity.InternalNeed, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []needsEntity.InternalNeed
	err := r.db.Order("need_id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *NeedRepository) Delete(id uint64) error {
	return r.db.Delete(&needsEntity.InternalNeed{}, "need_id = ?", id).Error
}

package breaker

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	breakerEntity "multirex.GO/model/entity/breaker"
)

type BreakerRepository struct {
	db *gorm.DB
}

func NewBreakerRepository(db *gorm.DB) *BreakerRepository {
	return &BreakerRepository{db: db}
}

// GetOrCreate resolves a breaker by name, inserting it on first sight.
// Names are the breaker identity; empty names are rejected upstream.
func (r *BreakerRepository) GetOrCreate(name string) (*breakerEntity.Breaker, error) {
	name = strings.TrimSpace(name)
	var b breakerEntity.Breaker
	err := r.db.First(&b, "name = ?", name).Error
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	b = breakerEntity.Breaker{Name: name}
	if err := r.db.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BreakerRepository) FindByID(id uint64) (*breakerEntity.Breaker, error) {
	var b breakerEntity.Breaker
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BreakerRepository) InsertClickOffer(o *breakerEntity.ClickOffer) error {
	return r.db.Create(o).Error
}

func (r *BreakerRepository) InsertFreeOffer(o *breakerEntity.FreeOffer) error {
	return r.db.Create(o).Error
}

// ClickOfferFeedItem is one recent-offers row joined with its breaker name.
type ClickOfferFeedItem struct {
	breakerEntity.ClickOffer
	BreakerName string `gorm:"column:breaker_name" json:"breaker_name"`
}

// FreeOfferFeedItem is the free-offer counterpart.
type FreeOfferFeedItem struct {
	breakerEntity.FreeOffer
	BreakerName string `gorm:"column:breaker_name" json:"breaker_name"`
}

func (r *BreakerRepository) RecentClickOffers(limit int) ([]ClickOfferFeedItem, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []ClickOfferFeedItem
	err := r.db.Table("breaker_click_offers o").
		Select("o.*, b.name AS breaker_name").
		Joins("JOIN breakers b ON b.id = o.breaker_id").
		Order("o.id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *BreakerRepository) RecentFreeOffers(limit int) ([]FreeOfferFeedItem, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []FreeOfferFeedItem
	err := r.db.Table("breaker_free_offers o").
		Select("o.*, b.name AS breaker_name").
		Joins("JOIN breakers b ON b.id = o.breaker_id").
		Order("o.id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DayStats counts one breaker's offers posted since the start of day.
type DayStats struct {
	Click int64 `json:"click"`
	Free  int64 `json:"free"`
	Total int64 `json:"total"`
}

func (r *BreakerRepository) StatsToday(breakerID uint64, now time.Time) (*DayStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var s DayStats
	err := r.db.Model(&breakerEntity.ClickOffer{}).
		Where("breaker_id = ? AND created_at >= ?", breakerID, dayStart).
		Count(&s.Click).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&breakerEntity.FreeOffer{}).
		Where("breaker_id = ? AND created_at >= ?", breakerID, dayStart).
		Count(&s.Free).Error
	if err != nil {
		return nil, err
	}
	s.Total = s.Click + s.Free
	return &s, nil
}

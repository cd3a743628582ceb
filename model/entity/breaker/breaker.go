package breaker

import "time"

// The breaker subsystem is a classified-offer feature for dismantlers. It
// is deliberately disconnected from the inventory tables: offers describe
// engines by free-text code/brand/energy, not by foreign keys, because they
// come from outside sellers whose stock is not in this base.

// Breaker represents the breakers table: a dismantler/seller identity.
type Breaker struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(200);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Breaker) TableName() string {
	return "breakers"
}

package servicetest

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"multirex.GO/database"
	inventoryEntity "multirex.GO/model/entity/inventory"
	partyEntity "multirex.GO/model/entity/party"
	shippingEntity "multirex.GO/model/entity/shipping"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.EnsureViews(db); err != nil {
		t.Fatalf("create views: %v", err)
	}
	return db
}

// seedSaleHistory builds a small but complete sale history: one supplier
// lot of K9K702 engines bought a month ago, one client shipment where two
// of them sold last month, and a third engine still on the shelf.
func seedSaleHistory(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Create(&partyEntity.Supplier{ID: 1, Name: strPtr("CASSE AUTO 93")}).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	bought := datatypes.Date(time.Now().AddDate(0, -1, 0))
	if err := db.Create(&inventoryEntity.Reception{ID: 100, SupplierID: 1, PurchaseDate: &bought}).Error; err != nil {
		t.Fatalf("seed reception: %v", err)
	}
	if err := db.Create(&partyEntity.Client{ID: 1, Company: strPtr("AMANDE EXPORT")}).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	engines := []inventoryEntity.Engine{
		{ID: 1, ReceptionID: 100, Code: strPtr("K9K702"), PurchasePrice: decPtr(300)},
		{ID: 2, ReceptionID: 100, Code: strPtr("K9K702"), PurchasePrice: decPtr(500)},
		{ID: 3, ReceptionID: 100, Code: strPtr("K9K702"), PurchasePrice: decPtr(400)},
	}
	if err := db.Create(&engines).Error; err != nil {
		t.Fatalf("seed engines: %v", err)
	}
	if err := db.Create(&shippingEntity.Shipment{ID: 500, ClientID: 1}).Error; err != nil {
		t.Fatalf("seed shipment: %v", err)
	}
	validated := time.Now().AddDate(0, -1, 0)
	links := []shippingEntity.ShipmentEngine{
		{ShipmentID: 500, EngineID: 1, SalePrice: decPtr(800), ValidatedAt: &validated},
		{ShipmentID: 500, EngineID: 2, SalePrice: decPtr(1000), ValidatedAt: &validated},
	}
	if err := db.Create(&links).Error; err != nil {
		t.Fatalf("seed sale links: %v", err)
	}
}

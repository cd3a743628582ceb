package modeltest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"multirex.GO/database"
	inventoryEntity "multirex.GO/model/entity/inventory"
	partyEntity "multirex.GO/model/entity/party"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func uintPtr(u uint) *uint    { return &u }

// seedLot creates the supplier and reception every stock row hangs off.
func seedLot(t *testing.T, db *gorm.DB, supplierID, receptionID uint) {
	t.Helper()
	if err := db.Create(&partyEntity.Supplier{ID: supplierID, Name: strPtr("CASSE AUTO 93")}).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	if err := db.Create(&inventoryEntity.Reception{ID: receptionID, SupplierID: supplierID}).Error; err != nil {
		t.Fatalf("seed reception: %v", err)
	}
}

func seedClient(t *testing.T, db *gorm.DB, id uint) uint {
	t.Helper()
	if err := db.Create(&partyEntity.Client{ID: id, Company: strPtr("AMANDE EXPORT")}).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return id
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

package modeltest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"multirex.GO/database"
	inventoryEntity "multirex.GO/model/entity/inventory"
	shippingEntity "multirex.GO/model/entity/shipping"
	availabilityRepo "multirex.GO/model/repository/availability"
)

func TestEngineAvailability_FreshEngineIsAvailable(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	if err := db.Create(&inventoryEntity.Engine{ID: 1, ReceptionID: 100, Code: strPtr("K9K702")}).Error; err != nil {
		t.Fatalf("seed engine: %v", err)
	}

	repo := availabilityRepo.NewAvailabilityRepository(db)
	row, err := repo.FindEngine(1)
	if err != nil {
		t.Fatalf("FindEngine: %v", err)
	}
	if row.Available != 1 {
		t.Errorf("est_disponible = %d, want 1", row.Available)
	}
}

func TestEngineAvailability_ArchivedIsNotAvailable(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	if err := db.Create(&inventoryEntity.Engine{ID: 1, ReceptionID: 100, Archived: boolPtr(true)}).Error; err != nil {
		t.Fatalf("seed engine: %v", err)
	}

	repo := availabilityRepo.NewAvailabilityRepository(db)
	row, err := repo.FindEngine(1)
	if err != nil {
		t.Fatalf("FindEngine: %v", err)
	}
	if row.Available != 0 {
		t.Errorf("est_disponible = %d, want 0 for archived engine", row.Available)
	}
}

func TestEngineAvailability_ShipmentPointerIsNotAvailable(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	if err := db.Create(&shippingEntity.Shipment{ID: 500, ClientID: seedClient(t, db, 1)}).Error; err != nil {
		t.Fatalf("seed shipment: %v", err)
	}
	if err := db.Create(&inventoryEntity.Engine{ID: 1, ReceptionID: 100, ShipmentID: uintPtr(500)}).Error; err != nil {
		t.Fatalf("seed engine: %v", err)
	}

	repo := availabilityRepo.NewAvailabilityRepository(db)
	row, err := repo.FindEngine(1)
	if err != nil {
		t.Fatalf("FindEngine: %v", err)
	}
	if row.Available != 0 {
		t.Errorf("est_disponible = %d, want 0 for engine on a shipment", row.Available)
	}
}

func TestEngineAvailability_JunctionRowIsNotAvailable(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	clientID := seedClient(t, db, 1)
	if err := db.Create(&shippingEntity.Shipment{ID: 500, ClientID: clientID}).Error; err != nil {
		t.Fatalf("seed shipment: %v", err)
	}
	// No denormalized pointer on the engine itself: the junction row
	// alone must flip availability.
	if err := db.Create(&inventoryEntity.Engine{ID: 1, ReceptionID: 100}).Error; err != nil {
		t.Fatalf("seed engine: %v", err)
	}
	price := decimal.NewFromInt(900)
	at := time.Now()
	if err := db.Create(&shippingEntity.ShipmentEngine{ShipmentID: 500, EngineID: 1, SalePrice: &price, ValidatedAt: &at}).Error; err != nil {
		t.Fatalf("seed junction: %v", err)
	}

	repo := availabilityRepo.NewAvailabilityRepository(db)
	row, err := repo.FindEngine(1)
	if err != nil {
		t.Fatalf("FindEngine: %v", err)
	}
	if row.Available != 0 {
		t.Errorf("est_disponible = %d, want 0 for engine with junction row", row.Available)
	}
}

func TestEngineAvailability_ListOnlyAvailable(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	engines := []inventoryEntity.Engine{
		{ID: 1, ReceptionID: 100, Code: strPtr("K9K702")},
		{ID: 2, ReceptionID: 100, Code: strPtr("K9K702"), Archived: boolPtr(true)},
		{ID: 3, ReceptionID: 100, Code: strPtr("OM651")},
	}
	if err := db.Create(&engines).Error; err != nil {
		t.Fatalf("seed engines: %v", err)
	}

	repo := availabilityRepo.NewAvailabilityRepository(db)
	rows, err := repo.ListEngines(availabilityRepo.EngineFilter{OnlyAvailable: true})
	if err != nil {
		t.Fatalf("ListEngines: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListEngines(available) = %d rows, want 2", len(rows))
	}

	byCode, err := repo.ListEngines(availabilityRepo.EngineFilter{Code: "k9k702", OnlyAvailable: true})
	if err != nil {
		t.Fatalf("ListEngines by code: %v", err)
	}
	if len(byCode) != 1 || byCode[0].ID != 1 {
		t.Errorf("ListEngines(K9K702, available) = %v, want only engine 1", byCode)
	}
}

func TestGearboxAvailability(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	boxes := []inventoryEntity.Gearbox{
		{ID: 1, ReceptionID: 100, InStock: boolPtr(true)},                        // vendu NULL: available
		{ID: 2, ReceptionID: 100, InStock: boolPtr(true), Sold: boolPtr(false)}, // available
		{ID: 3, ReceptionID: 100, InStock: boolPtr(true), Sold: boolPtr(true)},  // sold
		{ID: 4, ReceptionID: 100, InStock: boolPtr(false)},                      // not in stock
		{ID: 5, ReceptionID: 100},                                               // stock NULL
	}
	if err := db.Create(&boxes).Error; err != nil {
		t.Fatalf("seed gearboxes: %v", err)
	}

	repo := availabilityRepo.NewAvailabilityRepository(db)
	want := map[uint]int{1: 1, 2: 1, 3: 0, 4: 0, 5: 0}
	for id, expect := range want {
		row, err := repo.FindGearbox(id)
		if err != nil {
			t.Fatalf("FindGearbox(%d): %v", id, err)
		}
		if row.Available != expect {
			t.Errorf("gearbox %d est_disponible = %d, want %d", id, row.Available, expect)
		}
	}

	available, err := repo.ListGearboxes(true, 0)
	if err != nil {
		t.Fatalf("ListGearboxes: %v", err)
	}
	if len(available) != 2 {
		t.Errorf("ListGearboxes(available) = %d rows, want 2", len(available))
	}
}

func TestEnsureViews_ReinstallKeepsViewsReadable(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	if err := db.Create(&inventoryEntity.Engine{ID: 1, ReceptionID: 100, Code: strPtr("K9K702")}).Error; err != nil {
		t.Fatalf("seed engine: %v", err)
	}

	// second install drops, re-creates and sanity-checks every view model
	if err := database.EnsureViews(db); err != nil {
		t.Fatalf("reinstall views: %v", err)
	}

	repo := availabilityRepo.NewAvailabilityRepository(db)
	row, err := repo.FindEngine(1)
	if err != nil {
		t.Fatalf("FindEngine after reinstall: %v", err)
	}
	if row.Available != 1 {
		t.Errorf("est_disponible = %d, want 1", row.Available)
	}
}

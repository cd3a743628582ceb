package modeltest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	inventoryEntity "multirex.GO/model/entity/inventory"
	partyEntity "multirex.GO/model/entity/party"
	referenceEntity "multirex.GO/model/entity/reference"
	inventoryRepo "multirex.GO/model/repository/inventory"
	partyRepo "multirex.GO/model/repository/party"
	referenceRepo "multirex.GO/model/repository/reference"
)

func TestSupplierRepository_CreateAndList(t *testing.T) {
	db := testDB(t)
	repo := partyRepo.NewSupplierRepository(db)

	if err := repo.Create(&partyEntity.Supplier{ID: 10, Name: strPtr("CASSE NORD"), WreckSupplier: true}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(&partyEntity.Supplier{ID: 11, Name: strPtr("ANCIEN FOURNISSEUR")}); err != nil {
		t.Fatalf("Create hidden: %v", err)
	}
	// Zero-valued fields with a column default are skipped on insert,
	// so hide the supplier with an explicit update.
	if err := db.Model(&partyEntity.Supplier{ID: 11}).Update("afficher", false).Error; err != nil {
		t.Fatalf("hide supplier: %v", err)
	}

	found, err := repo.FindByID(10)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Name == nil || *found.Name != "CASSE NORD" {
		t.Errorf("Name = %v, want CASSE NORD", found.Name)
	}

	visible, err := repo.List(true)
	if err != nil {
		t.Fatalf("List visible: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != 10 {
		t.Errorf("List(visible) = %v, want only supplier 10", visible)
	}

	wrecks, err := repo.WreckSuppliers()
	if err != nil {
		t.Fatalf("WreckSuppliers: %v", err)
	}
	if len(wrecks) != 1 || wrecks[0].ID != 10 {
		t.Errorf("WreckSuppliers = %v, want only supplier 10", wrecks)
	}
}

func TestClientRepository_Group(t *testing.T) {
	db := testDB(t)
	repo := partyRepo.NewClientRepository(db)

	head := &partyEntity.Client{ID: 1, Company: strPtr("GROUPE EXPORT")}
	member := &partyEntity.Client{ID: 2, Company: strPtr("FILIALE SUD"), GroupingNo: uintPtr(1)}
	other := &partyEntity.Client{ID: 3, Company: strPtr("INDEPENDANT")}
	for _, c := range []*partyEntity.Client{head, member, other} {
		if err := repo.Create(c); err != nil {
			t.Fatalf("Create client %d: %v", c.ID, err)
		}
	}

	group, err := repo.Group(1)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if len(group) != 2 {
		t.Fatalf("Group(1) = %d clients, want 2", len(group))
	}
	ids := map[uint]bool{}
	for _, c := range group {
		ids[c.ID] = true
	}
	if !ids[1] || !ids[2] {
		t.Errorf("Group(1) ids = %v, want 1 and 2", ids)
	}
}

func TestReceptionRepository_Workflow(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	repo := inventoryRepo.NewReceptionRepository(db)

	invoiceDate := datatypes.Date(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if err := repo.MarkInvoiced(100, invoiceDate); err != nil {
		t.Fatalf("MarkInvoiced: %v", err)
	}
	if err := repo.MarkComplete(100); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if err := repo.MarkFiled(100); err != nil {
		t.Fatalf("MarkFiled: %v", err)
	}

	rec, err := repo.FindByID(100)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !rec.Invoiced || !rec.Complete || !rec.Filed {
		t.Errorf("flags = invoiced:%v complete:%v filed:%v, want all true", rec.Invoiced, rec.Complete, rec.Filed)
	}
	if rec.SupplierInvDate == nil {
		t.Error("SupplierInvDate not set by MarkInvoiced")
	}
}

func TestEngineRepository_FindByCode_Normalizes(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	repo, err := inventoryRepo.NewEngineRepository(db)
	if err != nil {
		t.Fatalf("NewEngineRepository: %v", err)
	}

	if err := repo.Create(&inventoryEntity.Engine{ID: 1, ReceptionID: 100, Code: strPtr("K9K702")}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByCode(" k9k702 ")
	if err != nil {
		t.Fatalf("FindByCode: %v", err)
	}
	if len(found) != 1 || found[0].ID != 1 {
		t.Errorf("FindByCode = %v, want engine 1", found)
	}
}

func TestEngineRepository_ReserveAndClear(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	repo, err := inventoryRepo.NewEngineRepository(db)
	if err != nil {
		t.Fatalf("NewEngineRepository: %v", err)
	}
	if err := repo.Create(&inventoryEntity.Engine{ID: 1, ReceptionID: 100}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Reserve(1, "GARAGE MARTIN", time.Now()); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	e, err := repo.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if e.ReservedFor == nil || *e.ReservedFor != "GARAGE MARTIN" {
		t.Errorf("ReservedFor = %v, want GARAGE MARTIN", e.ReservedFor)
	}
	if e.ReservedAt == nil {
		t.Error("ReservedAt not set")
	}

	if err := repo.ClearReservation(1); err != nil {
		t.Fatalf("ClearReservation: %v", err)
	}
	e, _ = repo.FindByID(1)
	if e.ReservedFor != nil || e.ReservedAt != nil {
		t.Error("reservation fields not cleared")
	}
}

func TestEngineRepository_CountByReception(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	repo, err := inventoryRepo.NewEngineRepository(db)
	if err != nil {
		t.Fatalf("NewEngineRepository: %v", err)
	}
	for i := uint(1); i <= 3; i++ {
		if err := repo.Create(&inventoryEntity.Engine{ID: i, ReceptionID: 100}); err != nil {
			t.Fatalf("Create engine %d: %v", i, err)
		}
	}
	n, err := repo.CountByReception(100)
	if err != nil {
		t.Fatalf("CountByReception: %v", err)
	}
	if n != 3 {
		t.Errorf("CountByReception = %d, want 3", n)
	}
}

func TestGearboxRepository_MarkSold(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	repo := inventoryRepo.NewGearboxRepository(db)

	if err := repo.Create(&inventoryEntity.Gearbox{ID: 1, ReceptionID: 100, InStock: boolPtr(true)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := decimal.NewFromInt(350)
	soldAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	if err := repo.MarkSold(1, price, soldAt); err != nil {
		t.Fatalf("MarkSold: %v", err)
	}

	g, err := repo.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if g.Sold == nil || !*g.Sold {
		t.Error("Sold flag not set")
	}
	if g.SalePrice == nil || !g.SalePrice.Equal(price) {
		t.Errorf("SalePrice = %v, want %v", g.SalePrice, price)
	}
	if g.SoldAt == nil {
		t.Error("SoldAt not set")
	}
}

func TestPartRepository_LineTotalAndReceptionTotal(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	repo := inventoryRepo.NewPartRepository(db)

	unit := decimal.NewFromFloat(12.50)
	p := &inventoryEntity.Part{ReceptionID: 100, Quantity: 4, UnitPrice: &unit}
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Error("ID not set after Create")
	}
	if p.LineTotal == nil || !p.LineTotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("LineTotal = %v, want 50", p.LineTotal)
	}

	other := decimal.NewFromInt(30)
	if err := repo.Create(&inventoryEntity.Part{ReceptionID: 100, Quantity: 1, UnitPrice: &other}); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	total, err := repo.ReceptionTotal(100)
	if err != nil {
		t.Fatalf("ReceptionTotal: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(80)) {
		t.Errorf("ReceptionTotal = %v, want 80", total)
	}
}

func TestReferenceRepository_SelectedOnly(t *testing.T) {
	db := testDB(t)
	repo := referenceRepo.NewReferenceRepository(db)

	rows := []referenceEntity.Brand{
		{ID: 1, Name: strPtr("RENAULT"), Selected: boolPtr(true)},
		{ID: 2, Name: strPtr("PEUGEOT"), Selected: boolPtr(false)},
		{ID: 3, Name: strPtr("FIAT")},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed brands: %v", err)
	}

	all, err := repo.Brands(false)
	if err != nil {
		t.Fatalf("Brands(false): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Brands(false) = %d rows, want 3", len(all))
	}

	selected, err := repo.Brands(true)
	if err != nil {
		t.Fatalf("Brands(true): %v", err)
	}
	if len(selected) != 1 || selected[0].ID != 1 {
		t.Errorf("Brands(true) = %v, want only RENAULT", selected)
	}
}

func TestSupplierRepository_FindMissing(t *testing.T) {
	db := testDB(t)
	repo := partyRepo.NewSupplierRepository(db)
	_, err := repo.FindByID(999)
	if err != gorm.ErrRecordNotFound {
		t.Errorf("FindByID missing = %v, want ErrRecordNotFound", err)
	}
}

func TestEngineRepository_ComponentFlagsRoundTrip(t *testing.T) {
	db := testDB(t)
	seedLot(t, db, 1, 100)
	repo, err := inventoryRepo.NewEngineRepository(db)
	if err != nil {
		t.Fatalf("NewEngineRepository: %v", err)
	}

	in := inventoryEntity.Engine{
		ID:           1,
		ReceptionID:  100,
		Code:         strPtr("K9K702"),
		Alternator:   1,
		Starter:      1,
		Turbo:        1,
		InjectorPump: 1,
		Injectors:    1,
		Clutch:       1,
	}
	if err := repo.Create(&in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	out, err := repo.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if out.Alternator != 1 || out.Starter != 1 || out.Turbo != 1 ||
		out.InjectorPump != 1 || out.Injectors != 1 || out.Clutch != 1 {
		t.Errorf("set flags not preserved: %+v", out)
	}
	if out.Carburetor != 0 || out.Distributor != 0 || out.PAV != 0 ||
		out.Compressor != 0 || out.PDA != 0 || out.Other != 0 {
		t.Errorf("unset flags not zero: %+v", out)
	}
}

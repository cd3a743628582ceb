package database

import (
	availabilityEntity "multirex.GO/model/entity/availability"
	billingEntity "multirex.GO/model/entity/billing"
	breakerEntity "multirex.GO/model/entity/breaker"
	inventoryEntity "multirex.GO/model/entity/inventory"
	needsEntity "multirex.GO/model/entity/needs"
	partyEntity "multirex.GO/model/entity/party"
	referenceEntity "multirex.GO/model/entity/reference"
	shippingEntity "multirex.GO/model/entity/shipping"
)

// AllModels returns every table-backed model in foreign-key dependency
// order: parents before children. View models are excluded on purpose;
// views are installed by EnsureViews, never migrated.
func AllModels() []interface{} {
	return []interface{}{
		// Reference tables, no outward keys.
		&referenceEntity.Assignment{},
		&referenceEntity.Location{},
		&referenceEntity.EnergyType{},
		&referenceEntity.MiscStatus{},
		&referenceEntity.Brand{},
		&referenceEntity.Country{},

		// Parties.
		&partyEntity.Supplier{},
		&partyEntity.Client{},

		// Transactions.
		&inventoryEntity.Reception{},
		&shippingEntity.Shipment{},
		&billingEntity.Invoice{},

		// Assets.
		&inventoryEntity.Engine{},
		&inventoryEntity.Gearbox{},
		&inventoryEntity.Part{},

		// Junctions.
		&shippingEntity.ShipmentEngine{},
		&shippingEntity.ShipmentGearbox{},

		// Breaker subsystem and internal needs.
		&breakerEntity.Breaker{},
		&breakerEntity.ClickOffer{},
		&breakerEntity.FreeOffer{},
		&needsEntity.InternalNeed{},
	}
}

// ViewModels returns the read-only view row models, for callers that need
// to enumerate the computed read surface.
func ViewModels() []interface{} {
	return []interface{}{
		&availabilityEntity.EngineRow{},
		&availabilityEntity.GearboxRow{},
	}
}

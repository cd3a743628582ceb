package billing

import (
	"gorm.io/gorm"

	billingEntity "multirex.GO/model/entity/billing"
)

// InvoiceRepository is keyed by the accounting document number, not a
// surrogate id.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(inv *billingEntity.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *InvoiceRepository) FindByNumber(documentNo string) (*billingEntity.Invoice, error) {
	var inv billingEntity.Invoice
	if err := r.db.First(&inv, "num_piece = ?", documentNo).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListByClient(clientID uint) ([]billingEntity.Invoice, error) {
	var out []billingEntity.Invoice
	err := r.db.Where("n_client = ?", clientID).Order("num_piece").Find(&out).Error
	return out, err
}

func (r *InvoiceRepository) ListByShipment(shipmentID uint) ([]billingEntity.Invoice, error) {
	var out []billingEntity.Invoice
	err := r.db.Where("n_expedition = ?", shipmentID).Order("num_piece").Find(&out).Error
	return out, err
}

// Unpaid lists invoices not yet acquitted, for the transit chase-up round.
func (r *InvoiceRepository) Unpaid() ([]billingEntity.Invoice, error) {
	var out []billingEntity.Invoice
	err := r.db.Where("facture_acquittee = ?", false).Order("num_piece").Find(&out).Error
	return out, err
}

func (r *InvoiceRepository) MarkAcquitted(documentNo string) error {
	return r.db.Model(&billingEntity.Invoice{}).
		Where("num_piece = ?", documentNo).
		Update("facture_acquittee", true).Error
}

func (r *InvoiceRepository) MarkTransitChased(documentNo string) error {
	return r.db.Model(&billingEntity.Invoice{}).
		Where("num_piece = ?", documentNo).
		Update("relance_transit", true).Error
}

func (r *InvoiceRepository) Update(inv *billingEntity.Invoice) error {
	return r.db.Save(inv).Error
}

func (r *InvoiceRepository) Delete(documentNo string) error {
	return r.db.Delete(&billingEntity.Invoice{}, "num_piece = ?", documentNo).Error
}

package invoicing

import (
	"github.com/mobilitree/backend/internal/domain/shared/valueobject"
)

// Invoice is the billed total for one customer at one facility over all
// their sessions in the queried set. Invoices are computed fresh on every
// query and never persisted.
type Invoice struct {
	FacilityID string            `json:"facility_id"`
	CustomerID string            `json:"customer_id"`
	Amount     valueobject.Money `json:"amount"`
}

// NewInvoice creates an invoice for a (facility, customer) pair
func NewInvoice(facilityID, customerID string, amount valueobject.Money) Invoice {
	return Invoice{
		FacilityID: facilityID,
		CustomerID: customerID,
		Amount:     amount,
	}
}

package model

import (
	"fmt"
	"time"
)

// PaymentStatus tracks reconciliation state for a vendor payout.
type PaymentStatus string

const (
	// PaymentUnsettled indicates a payout awaiting reconciliation.
	PaymentUnsettled PaymentStatus = "unsettled"
	// PaymentSettled indicates a payout confirmed against the ledger.
	PaymentSettled PaymentStatus = "settled"
	// PaymentFailed indicates a payout that bounced.
	PaymentFailed PaymentStatus = "failed"
)

// Payment represents one vendor payout to reconcile.
type Payment struct {
	PaidAt     time.Time     `json:"paidAt"`
	ID         string        `json:"id"`
	VendorID   string        `json:"vendorId"`
	VendorName string        `json:"vendorName"`
	Method     string        `json:"method"` // e.g. card, bank, wallet
	Reference  string        `json:"reference"`
	Status     PaymentStatus `json:"status"`
	Amount     float64       `json:"amount"`
}

// DisplayAmount formats the payout amount for tables and exports.
func (p Payment) DisplayAmount() string {
	return fmt.Sprintf("%.2f", p.Amount)
}

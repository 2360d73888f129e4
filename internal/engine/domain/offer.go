package domain

import "time"

// Offer status constants
const (
	OfferStatusPending  = "PENDING"
	OfferStatusAccepted = "ACCEPTED"
	OfferStatusRejected = "REJECTED"
)

// Offer is a provider's priced bid on a pending job. A provider holds at most
// one pending offer per job. When the customer accepts one offer, every other
// offer on that job is rejected in the same operation.
type Offer struct {
	ID         int64     `json:"id"`
	JobID      int64     `json:"job_id"`
	ProviderID int64     `json:"provider_id"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

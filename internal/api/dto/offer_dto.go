package dto

import (
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

type CreateOfferRequest struct {
	JobID int64   `json:"job_id" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

type OfferDTO struct {
	ID         int64   `json:"id"`
	JobID      int64   `json:"job_id"`
	ProviderID int64   `json:"provider_id"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type ListOffersResponse struct {
	Offers []OfferDTO `json:"offers"`
}

type NotificationDTO struct {
	ID        int64  `json:"id"`
	JobID     int64  `json:"job_id"`
	Kind      string `json:"kind"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
}

func NewOfferDTO(o domain.Offer) OfferDTO {
	return OfferDTO{
		ID:         o.ID,
		JobID:      o.JobID,
		ProviderID: o.ProviderID,
		Price:      o.Price,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}

func NewOfferDTOs(offers []domain.Offer) []OfferDTO {
	out := make([]OfferDTO, len(offers))
	for i, o := range offers {
		out[i] = NewOfferDTO(o)
	}
	return out
}

func NewNotificationDTOs(items []domain.Notification) []NotificationDTO {
	out := make([]NotificationDTO, len(items))
	for i, n := range items {
		out[i] = NotificationDTO{
			ID:        n.ID,
			JobID:     n.JobID,
			Kind:      n.Kind,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}

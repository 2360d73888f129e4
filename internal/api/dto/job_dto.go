package dto

import (
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

type CreateJobRequest struct {
	ServiceType   string    `json:"service_type" binding:"required"`
	Address       string    `json:"address" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	PaymentMethod string    `json:"payment_method"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SubmitReviewRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Text   string `json:"text"`
}

type JobDTO struct {
	ID             int64   `json:"id"`
	CustomerID     int64   `json:"customer_id"`
	ProviderID     int64   `json:"provider_id,omitempty"`
	ServiceType    string  `json:"service_type"`
	Address        string  `json:"address"`
	ScheduledAt    string  `json:"scheduled_at"`
	Price          float64 `json:"price,omitempty"`
	PaymentMethod  string  `json:"payment_method,omitempty"`
	Status         string  `json:"status"`
	CustomerRating int     `json:"customer_rating,omitempty"`
	CustomerReview string  `json:"customer_review,omitempty"`
	ProviderRating int     `json:"provider_rating,omitempty"`
	ProviderReview string  `json:"provider_review,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ListJobsResponse struct {
	Jobs []JobDTO `json:"jobs"`
}

func NewJobDTO(j domain.Job) JobDTO {
	return JobDTO{
		ID:             j.ID,
		CustomerID:     j.CustomerID,
		ProviderID:     j.ProviderID,
		ServiceType:    j.ServiceType,
		Address:        j.Address,
		ScheduledAt:    j.ScheduledAt.Format(time.RFC3339),
		Price:          j.Price,
		PaymentMethod:  j.PaymentMethod,
		Status:         j.Status,
		CustomerRating: j.CustomerRating,
		CustomerReview: j.CustomerReview,
		ProviderRating: j.ProviderRating,
		ProviderReview: j.ProviderReview,
		CreatedAt:      j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      j.UpdatedAt.Format(time.RFC3339),
	}
}

func NewJobDTOs(jobs []domain.Job) []JobDTO {
	out := make([]JobDTO, len(jobs))
	for i, j := range jobs {
		out[i] = NewJobDTO(j)
	}
	return out
}

package dto

import "github.com/cuongbtq/cleanmatch-be/internal/engine/domain"

type RegisterRequest struct {
	Name               string             `json:"name" binding:"required"`
	Email              string             `json:"email" binding:"required,email"`
	Role               string             `json:"role" binding:"required"`
	IdentityDocRef     string             `json:"identity_doc_ref"`
	BackgroundCheckRef string             `json:"background_check_ref"`
	PaymentMethods     []PaymentMethodDTO `json:"payment_methods"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name           string             `json:"name" binding:"required"`
	Email          string             `json:"email" binding:"omitempty,email"`
	PaymentMethods []PaymentMethodDTO `json:"payment_methods"`
}

type PaymentMethodDTO struct {
	Type    string `json:"type" binding:"required"`
	Details string `json:"details" binding:"required"`
}

type SetVerificationRequest struct {
	Status string `json:"status" binding:"required"`
}

type UserDTO struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Role               string             `json:"role"`
	AvgRating          float64            `json:"avg_rating"`
	RatingsCount       int                `json:"ratings_count"`
	VerificationStatus string             `json:"verification_status"`
	PaymentMethods     []PaymentMethodDTO `json:"payment_methods,omitempty"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func NewUserDTO(u domain.User) UserDTO {
	dto := UserDTO{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		AvgRating:          u.AvgRating,
		RatingsCount:       u.RatingsCount,
		VerificationStatus: u.VerificationStatus,
	}
	for _, pm := range u.PaymentMethods {
		dto.PaymentMethods = append(dto.PaymentMethods, PaymentMethodDTO{Type: pm.Type, Details: pm.Details})
	}
	return dto
}

func (r RegisterRequest) PaymentMethodsDomain() []domain.PaymentMethod {
	return paymentMethodsDomain(r.PaymentMethods)
}

func (r UpdateUserRequest) PaymentMethodsDomain() []domain.PaymentMethod {
	return paymentMethodsDomain(r.PaymentMethods)
}

func paymentMethodsDomain(methods []PaymentMethodDTO) []domain.PaymentMethod {
	if methods == nil {
		return nil
	}
	out := make([]domain.PaymentMethod, len(methods))
	for i, m := range methods {
		out[i] = domain.PaymentMethod{Type: m.Type, Details: m.Details}
	}
	return out
}

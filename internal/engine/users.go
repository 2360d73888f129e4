package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// RegisterRequest carries a new user's profile. IdentityDocRef and
// BackgroundCheckRef are opaque handles into the external document store; the
// engine only checks that providers supplied both.
type RegisterRequest struct {
	Name               string
	Email              string
	Role               string
	IdentityDocRef     string
	BackgroundCheckRef string
	PaymentMethods     []domain.PaymentMethod
}

// Register creates a user, starts a session for it, and returns both.
// Providers start with verification PENDING and must supply both document
// references; customers are NOT_APPLICABLE and verified implicitly.
func (e *Engine) Register(req RegisterRequest) (domain.User, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if req.Name == "" || req.Email == "" {
		return domain.User{}, "", fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}

	var verification string
	switch req.Role {
	case domain.RoleCustomer:
		verification = domain.VerificationNotApplicable
	case domain.RoleProvider:
		if req.IdentityDocRef == "" || req.BackgroundCheckRef == "" {
			return domain.User{}, "", fmt.Errorf(
				"%w: provider registration requires identity and background-check documents",
				domain.ErrValidation,
			)
		}
		verification = domain.VerificationPending
	default:
		return domain.User{}, "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, req.Role)
	}

	if _, exists := e.store.userByEmail(req.Email); exists {
		return domain.User{}, "", fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}

	user := &domain.User{
		Name:               req.Name,
		Email:              strings.TrimSpace(req.Email),
		Role:               req.Role,
		VerificationStatus: verification,
		IdentityDocRef:     req.IdentityDocRef,
		BackgroundCheckRef: req.BackgroundCheckRef,
		PaymentMethods:     req.PaymentMethods,
	}
	e.store.createUser(user)
	token := e.newSession(user.ID)

	e.logger.Info("User registered",
		slog.Int64("user_id", user.ID),
		slog.String("role", user.Role),
	)

	return *user, token, nil
}

// Login looks up a user by exact email match and starts a session. No
// credential check is modeled.
func (e *Engine) Login(email string) (domain.User, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.store.userByEmail(email)
	if !ok {
		return domain.User{}, "", fmt.Errorf("%w: no user with that email", domain.ErrNotFound)
	}

	token := e.newSession(user.ID)

	e.logger.Info("User logged in", slog.Int64("user_id", user.ID))

	return *user, token, nil
}

// UpdateUserRequest carries the user-writable profile fields. Identity and
// derived fields (id, role, ratings, verification) are not writable here.
// An empty Email leaves the stored email unchanged.
type UpdateUserRequest struct {
	Name           string
	Email          string
	PaymentMethods []domain.PaymentMethod
}

// UpdateUser replaces the writable fields of the session user's record.
func (e *Engine) UpdateUser(token string, req UpdateUserRequest) (domain.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.User{}, err
	}

	if req.Name == "" {
		return domain.User{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if req.PaymentMethods != nil && user.Role != domain.RoleCustomer {
		return domain.User{}, fmt.Errorf("%w: only customers manage payment methods", domain.ErrPermission)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !strings.EqualFold(email, user.Email) {
		if _, exists := e.store.userByEmail(email); exists {
			return domain.User{}, fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
	}

	user.Name = req.Name
	if email != "" {
		user.Email = email
	}
	if req.PaymentMethods != nil {
		user.PaymentMethods = req.PaymentMethods
	}

	return *user, nil
}

// FindUserByID is a plain lookup; absence is not an error.
func (e *Engine) FindUserByID(id int64) (domain.User, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.store.userByID(id)
	if !ok {
		return domain.User{}, false
	}
	return *user, true
}

// AddPaymentMethod appends a payment label to the session customer's list.
func (e *Engine) AddPaymentMethod(token string, method domain.PaymentMethod) (domain.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.User{}, err
	}

	if user.Role != domain.RoleCustomer {
		return domain.User{}, fmt.Errorf("%w: only customers manage payment methods", domain.ErrPermission)
	}
	if method.Type == "" || method.Details == "" {
		return domain.User{}, fmt.Errorf("%w: payment method type and details are required", domain.ErrValidation)
	}

	user.PaymentMethods = append(user.PaymentMethods, method)
	return *user, nil
}

// RemovePaymentMethod removes the payment label at index from the session
// customer's list.
func (e *Engine) RemovePaymentMethod(token string, index int) (domain.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.User{}, err
	}

	if user.Role != domain.RoleCustomer {
		return domain.User{}, fmt.Errorf("%w: only customers manage payment methods", domain.ErrPermission)
	}
	if index < 0 || index >= len(user.PaymentMethods) {
		return domain.User{}, fmt.Errorf("%w: payment method %d", domain.ErrNotFound, index)
	}

	user.PaymentMethods = append(user.PaymentMethods[:index], user.PaymentMethods[index+1:]...)
	return *user, nil
}

// SetVerificationStatus is the seam to the external admin verification
// authority: it moves a pending provider to VERIFIED or REJECTED. The engine
// itself never initiates this transition.
func (e *Engine) SetVerificationStatus(userID int64, status string) (domain.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if status != domain.VerificationVerified && status != domain.VerificationRejected {
		return domain.User{}, fmt.Errorf("%w: verification status must be VERIFIED or REJECTED", domain.ErrValidation)
	}

	user, ok := e.store.userByID(userID)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	if user.Role != domain.RoleProvider {
		return domain.User{}, fmt.Errorf("%w: only providers are verified", domain.ErrValidation)
	}
	if user.VerificationStatus != domain.VerificationPending {
		return domain.User{}, fmt.Errorf("%w: provider is already %s", domain.ErrInvalidState, user.VerificationStatus)
	}

	user.VerificationStatus = status

	e.logger.Info("Provider verification updated",
		slog.Int64("user_id", user.ID),
		slog.String("status", status),
	)

	return *user, nil
}

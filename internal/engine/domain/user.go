package domain

// User roles
const (
	RoleCustomer = "CUSTOMER"
	RoleProvider = "PROVIDER"
)

// Provider verification statuses. Customers are always NOT_APPLICABLE;
// providers start PENDING and are moved by the admin verification authority.
const (
	VerificationNotApplicable = "NOT_APPLICABLE"
	VerificationPending       = "PENDING"
	VerificationVerified      = "VERIFIED"
	VerificationRejected      = "REJECTED"
)

// PaymentMethod is a customer-managed payment label. The engine never
// processes payments; Details is opaque display text ("Visa **** 4242").
type PaymentMethod struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

// User represents a marketplace participant.
//
// AvgRating is derived state: it is always the mean of all ratings this user
// has received, rounded to 2 decimal places, maintained incrementally (the
// full rating history is never stored).
type User struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               string          `json:"role"`
	AvgRating          float64         `json:"avg_rating"`
	RatingsCount       int             `json:"ratings_count"`
	VerificationStatus string          `json:"verification_status"`
	IdentityDocRef     string          `json:"identity_doc_ref,omitempty"`
	BackgroundCheckRef string          `json:"background_check_ref,omitempty"`
	PaymentMethods     []PaymentMethod `json:"payment_methods,omitempty"`
}

// IsVerifiedProvider reports whether the user may transact as a provider.
func (u *User) IsVerifiedProvider() bool {
	return u.Role == RoleProvider && u.VerificationStatus == VerificationVerified
}

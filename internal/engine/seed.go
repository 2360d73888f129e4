package engine

import (
	"log/slog"
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// SeedDemoData loads the demo fixture set: two customers, a verified and a
// pending provider, and jobs across the lifecycle, so the API is explorable
// without any setup. Intended for development environments only.
func (e *Engine) SeedDemoData() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()

	users := []*domain.User{
		{
			Name: "Alice Customer", Email: "alice@email.com",
			Role: domain.RoleCustomer, VerificationStatus: domain.VerificationNotApplicable,
			AvgRating: 4.8, RatingsCount: 10,
			PaymentMethods: []domain.PaymentMethod{
				{Type: "Card", Details: "Visa **** 4242"},
				{Type: "PayPal", Details: "alice@email.com"},
			},
		},
		{
			Name: "Bob Provider", Email: "bob@email.com",
			Role: domain.RoleProvider, VerificationStatus: domain.VerificationVerified,
			AvgRating: 4.9, RatingsCount: 25,
			IdentityDocRef: "docs/bob-passport", BackgroundCheckRef: "docs/bob-dbs",
		},
		{
			Name: "Charlie Customer", Email: "charlie@email.com",
			Role: domain.RoleCustomer, VerificationStatus: domain.VerificationNotApplicable,
			AvgRating: 5.0, RatingsCount: 2,
		},
		{
			Name: "Diana Provider", Email: "diana@email.com",
			Role: domain.RoleProvider, VerificationStatus: domain.VerificationPending,
			AvgRating: 4.7, RatingsCount: 15,
			IdentityDocRef: "docs/diana-passport", BackgroundCheckRef: "docs/diana-dbs",
		},
	}
	for _, u := range users {
		e.store.createUser(u)
	}

	jobs := []*domain.Job{
		{
			CustomerID: 1, ProviderID: 2,
			ServiceType: "Standard Clean", Address: "123 Main St, Anytown",
			ScheduledAt: now.AddDate(0, 0, 2), Price: 75,
			PaymentMethod: "Card", Status: domain.JobStatusAccepted,
		},
		{
			CustomerID:  3,
			ServiceType: "Deep Clean", Address: "456 Oak Ave, Anytown",
			ScheduledAt: now.AddDate(0, 0, 3),
			PaymentMethod: "PayPal", Status: domain.JobStatusPending,
		},
		{
			CustomerID: 1, ProviderID: 4,
			ServiceType: "End of Tenancy Clean", Address: "789 Pine Ln, Anytown",
			ScheduledAt: now.AddDate(0, 0, -5), Price: 250,
			PaymentMethod: "Card", Status: domain.JobStatusReviewed,
			CustomerRating: 5, CustomerReview: "Spotless apartment, very professional.",
			ProviderRating: 5, ProviderReview: "House was prepared, great communication.",
		},
		{
			CustomerID: 3, ProviderID: 2,
			ServiceType: "Window Cleaning", Address: "101 Skyview Rd, Anytown",
			ScheduledAt: now.AddDate(0, 0, -2), Price: 60,
			PaymentMethod: "Cash", Status: domain.JobStatusCompleted,
		},
	}
	for _, j := range jobs {
		j.CreatedAt = now
		j.UpdatedAt = now
		e.store.createJob(j)
	}

	e.logger.Info("Demo data seeded",
		slog.Int("users", len(users)),
		slog.Int("jobs", len(jobs)),
	)
}

package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/stretchr/testify/require"
)

var testCatalog = []CatalogItem{
	{Name: "Standard Clean", Price: 75, Description: "General tidying"},
	{Name: "Deep Clean", Price: 150, Description: "Detailed work"},
}

func newTestEngine(t *testing.T, mode string) *Engine {
	t.Helper()

	return New(Config{
		Mode:    mode,
		Catalog: testCatalog,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func registerCustomer(t *testing.T, e *Engine, name, email string) (domain.User, string) {
	t.Helper()

	user, token, err := e.Register(RegisterRequest{
		Name:  name,
		Email: email,
		Role:  domain.RoleCustomer,
	})
	require.NoError(t, err)
	return user, token
}

func registerProvider(t *testing.T, e *Engine, name, email string) (domain.User, string) {
	t.Helper()

	user, token, err := e.Register(RegisterRequest{
		Name:               name,
		Email:              email,
		Role:               domain.RoleProvider,
		IdentityDocRef:     "docs/" + name + "-passport",
		BackgroundCheckRef: "docs/" + name + "-dbs",
	})
	require.NoError(t, err)
	return user, token
}

func registerVerifiedProvider(t *testing.T, e *Engine, name, email string) (domain.User, string) {
	t.Helper()

	user, token := registerProvider(t, e, name, email)
	verified, err := e.SetVerificationStatus(user.ID, domain.VerificationVerified)
	require.NoError(t, err)
	return verified, token
}

func createPendingJob(t *testing.T, e *Engine, customerToken string) domain.Job {
	t.Helper()

	job, err := e.CreateJob(customerToken, CreateJobRequest{
		ServiceType:   "Standard Clean",
		Address:       "123 Main St",
		ScheduledAt:   time.Now().AddDate(0, 0, 2),
		PaymentMethod: "Card",
	})
	require.NoError(t, err)
	return job
}

// createCompletedJob walks a job through offer acceptance and the provider's
// forward transitions, ending at COMPLETED.
func createCompletedJob(t *testing.T, e *Engine, customerToken, providerToken string) domain.Job {
	t.Helper()

	job := createPendingJob(t, e, customerToken)

	offer, err := e.CreateOffer(providerToken, job.ID, 120)
	require.NoError(t, err)

	_, err = e.AcceptOffer(customerToken, offer.ID)
	require.NoError(t, err)

	_, err = e.UpdateJobStatus(providerToken, job.ID, domain.JobStatusInProgress)
	require.NoError(t, err)

	job2, err := e.UpdateJobStatus(providerToken, job.ID, domain.JobStatusCompleted)
	require.NoError(t, err)

	return job2
}

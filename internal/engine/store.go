package engine

import (
	"sort"
	"strings"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// store owns the in-memory collections. It is not safe for concurrent use on
// its own; the engine serializes access under its mutex so that operations
// touching several collections together (accepting an offer mutates both Jobs
// and Offers) stay atomic.
type store struct {
	users         map[int64]*domain.User
	jobs          map[int64]*domain.Job
	offers        map[int64]*domain.Offer
	notifications map[int64]*domain.Notification

	nextUserID         int64
	nextJobID          int64
	nextOfferID        int64
	nextNotificationID int64
}

func newStore() *store {
	return &store{
		users:         make(map[int64]*domain.User),
		jobs:          make(map[int64]*domain.Job),
		offers:        make(map[int64]*domain.Offer),
		notifications: make(map[int64]*domain.Notification),
	}
}

func (s *store) createUser(u *domain.User) {
	s.nextUserID++
	u.ID = s.nextUserID
	s.users[u.ID] = u
}

func (s *store) userByID(id int64) (*domain.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

func (s *store) userByEmail(email string) (*domain.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return nil, false
}

func (s *store) createJob(j *domain.Job) {
	s.nextJobID++
	j.ID = s.nextJobID
	s.jobs[j.ID] = j
}

func (s *store) jobByID(id int64) (*domain.Job, bool) {
	j, ok := s.jobs[id]
	return j, ok
}

// jobFilter selects jobs for listing. Zero fields match everything.
type jobFilter struct {
	CustomerID int64
	ProviderID int64
	Status     string
}

// listJobs returns jobs matching the filter, newest first.
func (s *store) listJobs(filter jobFilter) []domain.Job {
	var jobs []domain.Job
	for _, j := range s.jobs {
		if filter.CustomerID != 0 && j.CustomerID != filter.CustomerID {
			continue
		}
		if filter.ProviderID != 0 && j.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		jobs = append(jobs, *j)
	}

	sort.Slice(jobs, func(i, k int) bool { return jobs[i].ID > jobs[k].ID })
	return jobs
}

func (s *store) createOffer(o *domain.Offer) {
	s.nextOfferID++
	o.ID = s.nextOfferID
	s.offers[o.ID] = o
}

func (s *store) offerByID(id int64) (*domain.Offer, bool) {
	o, ok := s.offers[id]
	return o, ok
}

// offerFilter selects offers for listing. Zero fields match everything.
type offerFilter struct {
	JobID      int64
	ProviderID int64
	Status     string
}

func (s *store) listOffers(filter offerFilter) []domain.Offer {
	var offers []domain.Offer
	for _, o := range s.offers {
		if filter.JobID != 0 && o.JobID != filter.JobID {
			continue
		}
		if filter.ProviderID != 0 && o.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		offers = append(offers, *o)
	}

	sort.Slice(offers, func(i, k int) bool { return offers[i].ID > offers[k].ID })
	return offers
}

// pendingOfferExists reports whether provider already has an actionable offer
// on the job.
func (s *store) pendingOfferExists(jobID, providerID int64) bool {
	for _, o := range s.offers {
		if o.JobID == jobID && o.ProviderID == providerID && o.Status == domain.OfferStatusPending {
			return true
		}
	}
	return false
}

func (s *store) createNotification(n *domain.Notification) {
	s.nextNotificationID++
	n.ID = s.nextNotificationID
	s.notifications[n.ID] = n
}

func (s *store) notificationByID(id int64) (*domain.Notification, bool) {
	n, ok := s.notifications[id]
	return n, ok
}

func (s *store) listNotifications(userID int64) []domain.Notification {
	var out []domain.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}

	sort.Slice(out, func(i, k int) bool { return out[i].ID > out[k].ID })
	return out
}

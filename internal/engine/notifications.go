package engine

import (
	"fmt"
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// notify appends a feed entry for the user. Caller must hold e.mu.
func (e *Engine) notify(userID, jobID int64, kind string) {
	e.store.createNotification(&domain.Notification{
		UserID:    userID,
		JobID:     jobID,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
}

// ListNotifications returns the session user's feed, newest first.
func (e *Engine) ListNotifications(token string) ([]domain.Notification, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return nil, err
	}
	return e.store.listNotifications(user.ID), nil
}

// MarkNotificationRead marks one of the session user's feed entries as read.
func (e *Engine) MarkNotificationRead(token string, id int64) (domain.Notification, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.Notification{}, err
	}

	n, ok := e.store.notificationByID(id)
	if !ok || n.UserID != user.ID {
		return domain.Notification{}, fmt.Errorf("%w: notification %d", domain.ErrNotFound, id)
	}

	n.Read = true
	return *n, nil
}

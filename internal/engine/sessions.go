package engine

import (
	"fmt"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/google/uuid"
)

// newSession registers a session for the user and returns its token.
// Caller must hold e.mu.
func (e *Engine) newSession(userID int64) string {
	token := uuid.New().String()
	e.sessions[token] = userID
	return token
}

// sessionUser resolves a session token to its user. Caller must hold e.mu.
func (e *Engine) sessionUser(token string) (*domain.User, error) {
	userID, ok := e.sessions[token]
	if !ok {
		return nil, fmt.Errorf("%w: no active session", domain.ErrPermission)
	}

	user, ok := e.store.userByID(userID)
	if !ok {
		return nil, fmt.Errorf("%w: session user %d", domain.ErrNotFound, userID)
	}

	return user, nil
}

// SessionUser returns the user owning the session token.
func (e *Engine) SessionUser(token string) (domain.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.User{}, err
	}
	return *user, nil
}

// Logout clears the session identity for the token. Unknown tokens are a
// no-op: logging out twice is harmless.
func (e *Engine) Logout(token string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.sessions, token)
}

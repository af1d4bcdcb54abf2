// Package ctxutil carries request-scoped identities through context.Context.
package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	callerKey    ctxKey = "caller"
)

// WithUserID stores the user ID in the context. If the context carries a
// Caller, the user is noted there as well.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	CallerFromCtx(ctx).SetUser(id)
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Caller collects who a request acted as: the session user on the
// management API, the project on the API-key surface. Outer middleware
// installs it and reads it back after the handler returns, when the
// derived contexts of inner handlers are already gone.
type Caller struct {
	mu        sync.Mutex
	userID    uuid.UUID
	projectID uuid.UUID
}

// WithCaller installs an empty Caller in the context.
func WithCaller(ctx context.Context) (context.Context, *Caller) {
	c := &Caller{}
	return context.WithValue(ctx, callerKey, c), c
}

// CallerFromCtx returns the context's Caller, or nil. All Caller methods
// accept a nil receiver.
func CallerFromCtx(ctx context.Context) *Caller {
	c, _ := ctx.Value(callerKey).(*Caller)
	return c
}

// SetProjectID notes the project a request was authorized for.
func SetProjectID(ctx context.Context, id uuid.UUID) {
	CallerFromCtx(ctx).SetProject(id)
}

func (c *Caller) SetUser(id uuid.UUID) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.userID = id
	c.mu.Unlock()
}

func (c *Caller) SetProject(id uuid.UUID) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.projectID = id
	c.mu.Unlock()
}

// User returns the noted user, or uuid.Nil.
func (c *Caller) User() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

// Project returns the noted project, or uuid.Nil.
func (c *Caller) Project() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectID
}

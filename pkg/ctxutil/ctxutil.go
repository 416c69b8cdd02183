package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey     ctxKey = "user_id"
	requestIDKey  ctxKey = "request_id"
	userHolderKey ctxKey = "user_holder"
)

// WithUserID stores the user ID in the context. An enclosing UserHolder,
// if any, records it as well.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if h, ok := ctx.Value(userHolderKey).(*UserHolder); ok {
		h.set(id)
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserHolder lets outer middleware see the user ID resolved further down
// the handler chain.
type UserHolder struct {
	mu sync.Mutex
	id uuid.UUID
}

// WithUserHolder returns a context carrying a new, empty UserHolder.
func WithUserHolder(ctx context.Context) (context.Context, *UserHolder) {
	h := &UserHolder{}
	return context.WithValue(ctx, userHolderKey, h), h
}

func (h *UserHolder) set(id uuid.UUID) {
	h.mu.Lock()
	h.id = id
	h.mu.Unlock()
}

// UserID returns the recorded user ID, if a non-nil one was set.
func (h *UserHolder) UserID() (uuid.UUID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id, h.id != uuid.Nil
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

package store

import (
	"context"

	"backend/internal/models"
)

// ListOptions carries optional pagination for the orders listing. The zero
// value means "no pagination": return everything.
type ListOptions struct {
	Page  int64
	Limit int64
}

// OrderStore is the document-store surface the handlers depend on. The Mongo
// implementation is the production one; tests use fakes.
type OrderStore interface {
	// CreateOrder persists the order and returns the generated document id.
	CreateOrder(ctx context.Context, order models.Order) (string, error)

	// OrdersByUser returns the user's orders, newest first. A user with no
	// orders yields an empty slice, not an error.
	OrdersByUser(ctx context.Context, userID string, opts ListOptions) ([]models.OrderSummary, error)

	// HasOrderForSession reports whether an order was already written for
	// the given checkout session id.
	HasOrderForSession(ctx context.Context, sessionID string) (bool, error)
}

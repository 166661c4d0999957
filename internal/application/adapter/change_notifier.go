package adapter

import (
	"context"
	"time"
)

// Collection names carried by change events.
const (
	CollectionTransactions  = "transactions"
	CollectionFixedExpenses = "fixed_expenses"
	CollectionCategories    = "categories"
)

// Change operations carried by change events.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// ChangeEvent announces a successful mutation of a collection.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Operation  string    `json:"operation"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

// ChangeNotifier transports change events between writers and observers.
type ChangeNotifier interface {
	// Publish announces a change. Delivery is best effort.
	Publish(ctx context.Context, event ChangeEvent) error

	// Subscribe returns a stream of events that closes when ctx is done.
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)

	// Close releases the notifier resources.
	Close() error
}

package handlers

import (
	"context"

	"signal-webhook/models"
)

// SignalStore is the persistence the handlers need. *database.SignalStore
// satisfies it.
type SignalStore interface {
	Append(ctx context.Context, sig models.Signal) (models.Signal, error)
	ListAll(ctx context.Context) ([]models.Signal, error)
	ClearAll(ctx context.Context) error
	Stats(ctx context.Context) (models.SignalStats, error)
	Ping(ctx context.Context) error
}

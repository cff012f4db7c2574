package services

import "context"

// Notifier delivers a text message to one user. Implementations must be safe
// for concurrent use: command replies and scheduled broadcasts share it.
type Notifier interface {
	Notify(ctx context.Context, userID string, text string) error
}

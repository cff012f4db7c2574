package services

import "context"

// ReminderSvc runs the recurring start-of-work and end-of-work broadcasts.
type ReminderSvc interface {
	// Start registers both triggers and starts the timer loop. It is a no-op when already running.
	Start() error

	// Stop halts the timer loop; the returned context is done when running jobs finish.
	Stop() context.Context

	// BroadcastStartOfWork sends the start-of-work reminder to every employee now.
	BroadcastStartOfWork(ctx context.Context) BroadcastResult

	// BroadcastEndOfWork sends the end-of-work reminder to every employee now.
	BroadcastEndOfWork(ctx context.Context) BroadcastResult
}

// BroadcastResult summarises one broadcast firing.
type BroadcastResult struct {
	Recipients int
	Delivered  int
	Failed     int
}

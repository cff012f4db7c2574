package repositories

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves every user in store order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
// Users are created and removed outside the bot, so there is no writer.
type UserRepositoryFacade interface {
	UserReader
}

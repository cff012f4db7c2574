package services

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID resolves a user. Returns apperrors.ErrNotRegistered for unknown ids.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersByRole returns the users holding role, read fresh from the store.
	ListUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
}

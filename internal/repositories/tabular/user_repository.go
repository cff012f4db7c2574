package tabular

import (
	"context"
	"strings"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/SscSPs/attendance_bot/internal/models"
)

// UserRepository reads the Users table.
type UserRepository struct {
	BaseRepository
}

func newUserRepository(store portsrepo.TabularStore) *UserRepository {
	return &UserRepository{BaseRepository{Store: store, Table: portsrepo.TableUsers}}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func toDomainUser(m models.UserRow) domain.User {
	return domain.User{
		UserID: m.UserID,
		Name:   m.Name,
		Role:   domain.UserRole(strings.ToLower(m.Role)),
	}
}

// ListUsers returns every user with a non-empty id.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, cells := range rows {
		m := models.UserRowFromCells(cells)
		if m.UserID == "" {
			continue
		}
		users = append(users, toDomainUser(m))
	}
	return users, nil
}

// FindUserByID returns apperrors.ErrNotFound when no row carries userID.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].UserID == userID {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

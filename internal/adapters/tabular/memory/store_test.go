package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/attendance_bot/internal/adapters/tabular/memory"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendReadUpdate(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.EnsureTable(ctx, portsrepo.TableWorkLog, []string{"id", "user_id", "date", "check_in", "check_out"}))

	require.NoError(t, s.AppendRow(ctx, portsrepo.TableWorkLog, []string{"1", "42", "2024-01-10", "09:00"}))
	require.NoError(t, s.UpdateCell(ctx, portsrepo.TableWorkLog, portsrepo.RowNumber(0), 5, "17:00"))

	rows, err := s.ReadAll(ctx, portsrepo.TableWorkLog)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "42", "2024-01-10", "09:00", "17:00"}}, rows)
	assert.Equal(t, 2, s.Writes())
}

func TestStore_UpdateOutOfRange(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	s.Seed(portsrepo.TableTasks, []string{"task_id"}, []string{"1"})

	// Row 1 is the header row and is never addressable.
	assert.Error(t, s.UpdateCell(ctx, portsrepo.TableTasks, 1, 1, "x"))
	assert.Error(t, s.UpdateCell(ctx, portsrepo.TableTasks, 3, 1, "x"))
	assert.Equal(t, 0, s.Writes())
}

func TestStore_MissingTable(t *testing.T) {
	_, err := memory.NewStore().ReadAll(context.Background(), portsrepo.TableUsers)
	assert.Error(t, err)
}

func TestStore_ReadAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	s.Seed(portsrepo.TableUsers, []string{"user_id", "name", "role"}, []string{"42", "Ann", "employee"})

	rows, err := s.ReadAll(ctx, portsrepo.TableUsers)
	require.NoError(t, err)
	rows[0][1] = "mutated"

	again, err := s.ReadAll(ctx, portsrepo.TableUsers)
	require.NoError(t, err)
	assert.Equal(t, "Ann", again[0][1])
}

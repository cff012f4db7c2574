package tabular

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/SscSPs/attendance_bot/internal/models"
)

// Schema maps every table to its header row.
var Schema = map[portsrepo.Table][]string{
	portsrepo.TableUsers:   models.UserHeader,
	portsrepo.TableTasks:   models.TaskHeader,
	portsrepo.TableReports: models.ReportHeader,
	portsrepo.TableWorkLog: models.WorkLogHeader,
}

// NewRepositoryProvider builds all repositories on top of one store.
func NewRepositoryProvider(store portsrepo.TabularStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newUserRepository(store),
		WorkLogRepo: newWorkLogRepository(store),
		TaskRepo:    newTaskRepository(store),
		ReportRepo:  newReportRepository(store),
	}
}

// EnsureSchema creates any missing table with its header row.
func EnsureSchema(ctx context.Context, store portsrepo.TabularStore) error {
	for _, table := range []portsrepo.Table{portsrepo.TableUsers, portsrepo.TableTasks, portsrepo.TableReports, portsrepo.TableWorkLog} {
		if err := store.EnsureTable(ctx, table, Schema[table]); err != nil {
			return fmt.Errorf("failed to ensure table %s: %w", table, err)
		}
	}
	return nil
}

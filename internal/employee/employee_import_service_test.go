package employee_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rabbit1992/salary-query/internal/employee"
	employeeMock "github.com/Rabbit1992/salary-query/internal/employee/mock"
	"github.com/Rabbit1992/salary-query/internal/sheet"
	"github.com/Rabbit1992/salary-query/internal/shared/hash"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sha256("123456"), the digest stored for the default password
const defaultPasswordDigest = "8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92"

type serviceDeps struct {
	db      *gorm.DB
	repo    *employeeMock.MockRepository
	service employee.ImportService
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)
	return db
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db := openTestDB(t)
	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewImportService(db, repo, hash.SHA256Hasher{}, zap.NewNop())

	return &serviceDeps{
		db:      db,
		repo:    repo,
		service: svc,
	}
}

func rosterTable(rows ...[]string) *sheet.Table {
	return &sheet.Table{
		Header: []string{"employee_id", "username", "password", "name", "department", "position", "join_date", "role"},
		Rows:   rows,
	}
}

func TestRosterImport_Defaults(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	table := rosterTable([]string{"E1", "", "", "Alice", "Eng", "SWE", "", ""})

	deps.repo.EXPECT().
		IdentitySets(gomock.Any()).
		Return(employee.NewIdentitySets(), nil)
	deps.repo.EXPECT().
		WithTx(gomock.Any()).
		Return(deps.repo)
	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, "E1", emp.EmployeeID)
			assert.Equal(t, "E1", emp.Username) // falls back to the employee ID
			assert.Equal(t, defaultPasswordDigest, emp.Password)
			assert.Equal(t, employee.RoleEmployee, emp.Role)
			assert.Equal(t, time.Now().Format("2006-01-02"), emp.JoinDate)
			return nil
		})

	report, err := deps.service.Run(ctx, table)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.Inserted)
	assert.True(t, report.Ok())
	assert.Empty(t, report.RowErrors)
}

func TestRosterImport_DuplicateDetection(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	existing := employee.NewIdentitySets()
	existing.Add("E0", "olduser")

	table := rosterTable(
		[]string{"E0", "", "", "Old", "Eng", "SWE", "", ""},         // id already persisted
		[]string{"E1", "alice", "", "Alice", "Eng", "SWE", "", ""},  // ok
		[]string{"E1", "alice2", "", "Alia", "Eng", "SWE", "", ""},  // id duplicated in batch
		[]string{"E2", "alice", "", "Bob", "Fin", "Acct", "", ""},   // username duplicated in batch
		[]string{"E3", "olduser", "", "Carl", "Fin", "Acct", "", ""}, // username already persisted
	)

	deps.repo.EXPECT().IdentitySets(gomock.Any()).Return(existing, nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

	var inserted []string
	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
			inserted = append(inserted, emp.EmployeeID)
			return nil
		})

	report, err := deps.service.Run(ctx, table)
	assert.NoError(t, err)
	assert.Equal(t, []string{"E1"}, inserted)
	assert.Len(t, report.RowErrors, 4)
	assert.Equal(t, 2, report.RowErrors[0].Row)
	assert.Contains(t, report.RowErrors[0].Reason, `"E0" already exists`)
	assert.Equal(t, 4, report.RowErrors[1].Row)
	assert.Contains(t, report.RowErrors[2].Reason, `username "alice" already exists`)
}

func TestRosterImport_RequiredFields(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	table := rosterTable(
		[]string{"", "", "", "Ghost", "Eng", "SWE", "", ""}, // no employee id
		[]string{"E1", "", "", "", "Eng", "SWE", "", ""},    // no name
		[]string{"E2", "", "", "Bob", "", "SWE", "", ""},    // no department
		[]string{"E3", "", "", "Carl", "Fin", "", "", ""},   // no position
		[]string{"E4", "", "", "Dina", "Fin", "Acct", "", "admin"},
	)

	deps.repo.EXPECT().IdentitySets(gomock.Any()).Return(employee.NewIdentitySets(), nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, "E4", emp.EmployeeID)
			assert.Equal(t, employee.RoleAdmin, emp.Role)
			return nil
		})

	report, err := deps.service.Run(ctx, table)
	assert.NoError(t, err)
	assert.Len(t, report.RowErrors, 4)
	assert.Contains(t, report.RowErrors[0].Reason, "Employee ID is required")
	assert.Contains(t, report.RowErrors[1].Reason, "Name is required")
	assert.Contains(t, report.RowErrors[2].Reason, "Department is required")
	assert.Contains(t, report.RowErrors[3].Reason, "Position is required")
	assert.Equal(t, 1, report.Inserted)
}

func TestRosterImport_UnknownRoleCollapses(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	table := rosterTable([]string{"E1", "", "", "Alice", "Eng", "SWE", "", "superuser"})

	deps.repo.EXPECT().IdentitySets(gomock.Any()).Return(employee.NewIdentitySets(), nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, employee.RoleEmployee, emp.Role)
			return nil
		})

	_, err := deps.service.Run(ctx, table)
	assert.NoError(t, err)
}

func TestRosterImport_StoreReadSoftFailure(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	table := rosterTable([]string{"E1", "", "", "Alice", "Eng", "SWE", "", ""})

	// Loader failure degrades to empty sets; the run keeps going
	deps.repo.EXPECT().
		IdentitySets(gomock.Any()).
		Return(employee.IdentitySets{}, errors.New("database is locked"))
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	report, err := deps.service.Run(ctx, table)
	assert.NoError(t, err)
	assert.Equal(t, 0, report.ExistingRecords)
	assert.Equal(t, 1, report.Inserted)
}

func TestRosterImport_NoValidRows(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	table := rosterTable([]string{"", "", "", "", "", "", "", ""})

	deps.repo.EXPECT().IdentitySets(gomock.Any()).Return(employee.NewIdentitySets(), nil)

	report, err := deps.service.Run(ctx, table)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no valid rows")
	assert.Equal(t, 0, report.Accepted)
}

func TestRosterImport_PersistFailureIsIsolated(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	table := rosterTable(
		[]string{"E1", "", "", "Alice", "Eng", "SWE", "", ""},
		[]string{"E2", "", "", "Bob", "Fin", "Acct", "", ""},
	)

	deps.repo.EXPECT().IdentitySets(gomock.Any()).Return(employee.NewIdentitySets(), nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

	first := deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("UNIQUE constraint failed: employees.username"))
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).After(first)

	report, err := deps.service.Run(ctx, table)
	assert.NoError(t, err) // persistence failures surface through the report
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.Ok())
	assert.Contains(t, report.PersistErrors[0], "Username already exists")
}

func TestRosterImport_AmbiguousColumnsRejectFile(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	table := &sheet.Table{
		Header: []string{"工号", "employee_id", "name", "department", "position"},
		Rows:   [][]string{{"E1", "E1", "Alice", "Eng", "SWE"}},
	}

	deps.repo.EXPECT().IdentitySets(gomock.Any()).Return(employee.NewIdentitySets(), nil)

	_, err := deps.service.Run(ctx, table)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

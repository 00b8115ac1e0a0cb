package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rabbit1992/salary-query/internal/importer"
	"github.com/Rabbit1992/salary-query/internal/sheet"
	"github.com/Rabbit1992/salary-query/internal/shared/apperror"
	"github.com/Rabbit1992/salary-query/internal/shared/contextutil"
	"github.com/Rabbit1992/salary-query/internal/shared/hash"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPassword = "123456"

type ImportService interface {
	Run(ctx context.Context, table *sheet.Table) (*importer.Report, error)
}

type importService struct {
	db     *gorm.DB
	repo   Repository
	hasher hash.Hasher
	logger *zap.Logger
	now    func() time.Time
}

func NewImportService(db *gorm.DB, repo Repository, hasher hash.Hasher, logger ...*zap.Logger) ImportService {
	l := zap.L().Named("importer.roster")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importer.roster")
	}
	return &importService{
		db:     db,
		repo:   repo,
		hasher: hasher,
		logger: l,
		now:    time.Now,
	}
}

// Run executes the roster pipeline: load existing identity sets, normalize
// the header, validate and transform row by row, then insert the accepted
// records under one commit.
func (s *importService) Run(ctx context.Context, table *sheet.Table) (*importer.Report, error) {
	rid := contextutil.GetRunID(ctx)
	report := &importer.Report{RowsRead: len(table.Rows)}

	// Existing state. A read failure degrades to empty sets: the run keeps
	// going but in-store duplicate detection is effectively off.
	// TODO: consider making this fatal; re-accepting existing IDs only
	// surfaces later as per-row constraint failures.
	existing, err := s.repo.IdentitySets(ctx)
	if err != nil {
		s.logger.Warn("load existing employees failed, duplicate detection degraded",
			zap.String("run_id", rid),
			zap.Error(err),
		)
		existing = NewIdentitySets()
	}
	report.ExistingRecords = len(existing.EmployeeIDs)

	cols, err := sheet.Normalize(table.Header, sheet.EmployeeAliases)
	if err != nil {
		return report, apperror.Wrap(err, apperror.CodeInvalidInput, "column normalization failed")
	}

	records := s.validateRows(table, cols, existing, report)
	report.Accepted = len(records)
	if len(records) == 0 {
		return report, apperror.New(apperror.CodeInvalidInput, "no valid rows in the spreadsheet")
	}

	if err := s.persist(ctx, records, report); err != nil {
		return report, err
	}

	s.logger.Info("roster import finished",
		zap.String("run_id", rid),
		zap.Int("inserted", report.Inserted),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// validateRows walks the sheet in order. The identity sets double as the
// in-batch accumulator: each accepted row adds its keys before the next row
// is checked, so duplicates within one file are caught too.
func (s *importService) validateRows(
	table *sheet.Table,
	cols sheet.ColumnMap,
	existing IdentitySets,
	report *importer.Report,
) []*Employee {
	var records []*Employee

	for i := range table.Rows {
		rowNum := sheet.RowNumber(i)

		employeeID := cols.Value(table, i, "employee_id")
		if employeeID == "" {
			report.Reject(rowNum, apperror.RequiredField("Employee ID"))
			continue
		}
		if existing.HasEmployeeID(employeeID) {
			report.Reject(rowNum, fmt.Errorf("employee ID %q already exists", employeeID))
			continue
		}

		username := cols.Value(table, i, "username")
		if username == "" {
			username = employeeID
		}
		if existing.HasUsername(username) {
			report.Reject(rowNum, fmt.Errorf("username %q already exists", username))
			continue
		}

		password := cols.Value(table, i, "password")
		if password == "" {
			password = defaultPassword
		}
		digest, err := s.hasher.Hash(password)
		if err != nil {
			report.Reject(rowNum, fmt.Errorf("hash password: %w", err))
			continue
		}

		role := strings.ToLower(cols.Value(table, i, "role"))
		if role != RoleAdmin && role != RoleEmployee {
			role = RoleEmployee
		}

		emp := &Employee{
			EmployeeID: employeeID,
			Username:   username,
			Password:   digest,
			Name:       cols.Value(table, i, "name"),
			Department: cols.Value(table, i, "department"),
			Position:   cols.Value(table, i, "position"),
			JoinDate:   importer.ParseDate(cols.Value(table, i, "join_date"), s.now()),
			Role:       role,
		}

		if err := apperror.Validate(emp); err != nil {
			report.Reject(rowNum, err)
			continue
		}

		records = append(records, emp)
		existing.Add(employeeID, username)
	}

	return records
}

// persist inserts every accepted record inside one transaction. A failing row
// does not abort the batch; the commit at the end covers whatever succeeded.
func (s *importService) persist(ctx context.Context, records []*Employee, report *importer.Report) error {
	rid := contextutil.GetRunID(ctx)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("roster import begin tx failed", zap.String("run_id", rid), zap.Error(tx.Error))
		return apperror.Wrap(tx.Error, apperror.CodeStoreUnavailable, "begin transaction")
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, emp := range records {
		if err := qtx.Create(ctx, emp); err != nil {
			mapped := mapRepositoryError(err)
			report.Fail(fmt.Sprintf("employee %s - %s", emp.EmployeeID, emp.Name), mapped)
			s.logger.Warn("insert employee failed",
				zap.String("run_id", rid),
				zap.String("employee_id", emp.EmployeeID),
				zap.Error(mapped),
			)
			continue
		}
		report.Inserted++
		s.logger.Info("employee inserted",
			zap.String("run_id", rid),
			zap.String("employee_id", emp.EmployeeID),
			zap.String("name", emp.Name),
			zap.String("department", emp.Department),
			zap.String("position", emp.Position),
		)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("roster import commit failed", zap.String("run_id", rid), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeStoreUnavailable, "commit transaction")
	}
	return nil
}

package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/Rabbit1992/salary-query/internal/employee"
	"github.com/Rabbit1992/salary-query/internal/importer"
	salaryerrors "github.com/Rabbit1992/salary-query/internal/salary/errors"
	"github.com/Rabbit1992/salary-query/internal/sheet"
	"github.com/Rabbit1992/salary-query/internal/shared/apperror"
	"github.com/Rabbit1992/salary-query/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ImportService interface {
	Run(ctx context.Context, table *sheet.Table) (*importer.Report, error)
}

type importService struct {
	db      *gorm.DB
	repo    Repository
	empRepo employee.Repository
	logger  *zap.Logger
	now     func() time.Time
}

func NewImportService(db *gorm.DB, repo Repository, empRepo employee.Repository, logger ...*zap.Logger) ImportService {
	l := zap.L().Named("importer.compensation")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importer.compensation")
	}
	return &importService{
		db:      db,
		repo:    repo,
		empRepo: empRepo,
		logger:  l,
		now:     time.Now,
	}
}

// Run executes the compensation pipeline: load the employee map, normalize
// the header, validate and transform row by row, then upsert each accepted
// record by its (employee_id, year, month) key under one commit.
func (s *importService) Run(ctx context.Context, table *sheet.Table) (*importer.Report, error) {
	rid := contextutil.GetRunID(ctx)
	report := &importer.Report{RowsRead: len(table.Rows)}

	// Referential integrity is enforced against this map, not by the store,
	// so an empty map makes every row unverifiable: hard abort.
	profiles, err := s.empRepo.Profiles(ctx)
	if err != nil {
		return report, apperror.Wrap(err, apperror.CodeStoreUnavailable, "load employees")
	}
	if len(profiles) == 0 {
		return report, salaryerrors.ErrNoEmployees
	}
	report.ExistingRecords = len(profiles)

	cols, err := sheet.Normalize(table.Header, sheet.SalaryAliases)
	if err != nil {
		return report, apperror.Wrap(err, apperror.CodeInvalidInput, "column normalization failed")
	}

	records := s.validateRows(table, cols, profiles, report)
	report.Accepted = len(records)
	if len(records) == 0 {
		return report, apperror.New(apperror.CodeInvalidInput, "no valid rows in the spreadsheet")
	}

	if err := s.persist(ctx, records, report); err != nil {
		return report, err
	}

	s.logger.Info("compensation import finished",
		zap.String("run_id", rid),
		zap.Int("inserted", report.Inserted),
		zap.Int("updated", report.Updated),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

var componentFields = []struct {
	name string
	set  func(*Record, float64)
}{
	{"base_salary", func(r *Record, v float64) { r.BaseSalary = v }},
	{"position_salary", func(r *Record, v float64) { r.PositionSalary = v }},
	{"performance_salary", func(r *Record, v float64) { r.PerformanceSalary = v }},
	{"overtime_pay", func(r *Record, v float64) { r.OvertimePay = v }},
	{"bonus", func(r *Record, v float64) { r.Bonus = v }},
	{"allowance", func(r *Record, v float64) { r.Allowance = v }},
	{"deduction", func(r *Record, v float64) { r.Deduction = v }},
	{"full_time", func(r *Record, v float64) { r.FullTime = v }},
	{"other", func(r *Record, v float64) { r.Other = v }},
}

func (s *importService) validateRows(
	table *sheet.Table,
	cols sheet.ColumnMap,
	profiles map[string]employee.Profile,
	report *importer.Report,
) []*Record {
	var records []*Record

	for i := range table.Rows {
		rowNum := sheet.RowNumber(i)

		employeeID := cols.Value(table, i, "employee_id")
		if employeeID == "" {
			report.Reject(rowNum, apperror.RequiredField("Employee ID"))
			continue
		}
		if _, ok := profiles[employeeID]; !ok {
			report.Reject(rowNum, fmt.Errorf("employee ID %q does not exist in the system", employeeID))
			continue
		}

		rec := &Record{EmployeeID: employeeID}

		year, month, err := s.resolvePeriod(table, cols, i)
		if err != nil {
			report.Reject(rowNum, err)
			continue
		}
		rec.Year, rec.Month = year, month

		for _, f := range componentFields {
			f.set(rec, importer.ParseFloat(cols.Value(table, i, f.name)))
		}

		// An explicit total wins over the derived one; a total cell that is
		// present but not a number is a row error, not a silent zero.
		if raw := cols.Value(table, i, "total_salary"); raw != "" {
			total, ok := importer.ParseFloatStrict(raw)
			if !ok {
				report.Reject(rowNum, fmt.Errorf("total salary %q is not a number", raw))
				continue
			}
			rec.TotalSalary = total
		} else {
			rec.TotalSalary = rec.ComputeTotal()
		}

		if raw := cols.Value(table, i, "payment_date"); raw != "" {
			rec.PaymentDate = importer.ParseDate(raw, s.now())
		} else {
			rec.PaymentDate = importer.DefaultPaymentDate(rec.Year, rec.Month)
		}

		rec.Remarks = cols.Value(table, i, "remarks")

		// Month range and base_salary > 0 live on the entity's validate tags
		if err := apperror.Validate(rec); err != nil {
			report.Reject(rowNum, err)
			continue
		}

		records = append(records, rec)
	}

	return records
}

// resolvePeriod derives (year, month) for one row: a combined year_month cell
// takes precedence, otherwise separate year/month columns with the run date
// filling a blank. A cell that is present but not a number is a row error:
// defaulting it would book the record against the wrong month.
func (s *importService) resolvePeriod(table *sheet.Table, cols sheet.ColumnMap, row int) (int, int, error) {
	if raw := cols.Value(table, row, "year_month"); raw != "" {
		year, month, ok := importer.ParseYearMonth(raw)
		if !ok {
			return 0, 0, fmt.Errorf("year-month %q is not in a recognized format", raw)
		}
		return year, month, nil
	}

	current := s.now()

	rawYear := cols.Value(table, row, "year")
	year, ok := importer.ParseInt(rawYear)
	if !ok {
		if rawYear != "" {
			return 0, 0, fmt.Errorf("year %q is not a number", rawYear)
		}
		year = current.Year()
	}

	rawMonth := cols.Value(table, row, "month")
	month, ok := importer.ParseInt(rawMonth)
	if !ok {
		if rawMonth != "" {
			return 0, 0, fmt.Errorf("month %q is not a number", rawMonth)
		}
		month = int(current.Month())
	}
	return year, month, nil
}

// persist upserts each record by natural key inside one transaction. Failures
// are isolated per row; the final commit covers everything that succeeded.
func (s *importService) persist(ctx context.Context, records []*Record, report *importer.Report) error {
	rid := contextutil.GetRunID(ctx)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("compensation import begin tx failed", zap.String("run_id", rid), zap.Error(tx.Error))
		return apperror.Wrap(tx.Error, apperror.CodeStoreUnavailable, "begin transaction")
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, rec := range records {
		key := fmt.Sprintf("employee %s %d-%02d", rec.EmployeeID, rec.Year, rec.Month)

		existingID, err := qtx.FindIDByKey(ctx, rec.EmployeeID, rec.Year, rec.Month)
		if err != nil {
			mapped := mapRepositoryError(err)
			report.Fail(key, mapped)
			s.logger.Warn("lookup salary record failed", zap.String("run_id", rid), zap.String("key", key), zap.Error(mapped))
			continue
		}

		if existingID > 0 {
			if err := qtx.Update(ctx, existingID, rec); err != nil {
				mapped := mapRepositoryError(err)
				report.Fail(key, mapped)
				s.logger.Warn("update salary record failed", zap.String("run_id", rid), zap.String("key", key), zap.Error(mapped))
				continue
			}
			report.Updated++
			s.logger.Info("salary record updated", zap.String("run_id", rid), zap.String("key", key))
			continue
		}

		if err := qtx.Create(ctx, rec); err != nil {
			mapped := mapRepositoryError(err)
			report.Fail(key, mapped)
			s.logger.Warn("insert salary record failed", zap.String("run_id", rid), zap.String("key", key), zap.Error(mapped))
			continue
		}
		report.Inserted++
		s.logger.Info("salary record inserted", zap.String("run_id", rid), zap.String("key", key))
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("compensation import commit failed", zap.String("run_id", rid), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeStoreUnavailable, "commit transaction")
	}
	return nil
}

package salary

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindIDByKey(ctx context.Context, employeeID string, year, month int) (uint, error)
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, id uint, rec *Record) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto an open transaction. Lookups done
// through it see the batch's own uncommitted inserts, which is what makes
// duplicate employee-months within one file collapse into updates.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// FindIDByKey resolves the natural key to a row id. Returns 0 when no row
// exists for that employee-month.
func (r *repository) FindIDByKey(ctx context.Context, employeeID string, year, month int) (uint, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Select("id").
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update overwrites the mutable fields of an existing row. Columns the
// importer does not own (work_time_type, attendance_status, overtime-hour
// splits, remarks) are left as they are.
func (r *repository) Update(ctx context.Context, id uint, rec *Record) error {
	return r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"base_salary":        rec.BaseSalary,
			"position_salary":    rec.PositionSalary,
			"performance_salary": rec.PerformanceSalary,
			"overtime_pay":       rec.OvertimePay,
			"bonus":              rec.Bonus,
			"allowance":          rec.Allowance,
			"deduction":          rec.Deduction,
			"full_time":          rec.FullTime,
			"other":              rec.Other,
			"total_salary":       rec.TotalSalary,
			"payment_date":       rec.PaymentDate,
		}).Error
}

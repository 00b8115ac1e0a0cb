package salary

// Record maps the salaries table. One row per (employee_id, year, month);
// the importer upserts on that natural key.
//
// The table carries columns the spreadsheet pipeline never fills
// (work_time_type, attendance_status, the per-kind overtime hours). They stay
// on the struct so gorm sees the real schema; inserts write their zero values
// and updates leave them untouched.
type Record struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	EmployeeID string `gorm:"column:employee_id;not null;uniqueIndex:idx_employee_period" json:"employee_id" validate:"required"`
	Year       int    `gorm:"not null;uniqueIndex:idx_employee_period" json:"year"`
	Month      int    `gorm:"not null;uniqueIndex:idx_employee_period" json:"month" validate:"min=1,max=12"`

	BaseSalary        float64 `gorm:"column:base_salary;not null" json:"base_salary" validate:"gt=0"`
	PositionSalary    float64 `gorm:"column:position_salary;default:0" json:"position_salary"`
	PerformanceSalary float64 `gorm:"column:performance_salary;default:0" json:"performance_salary"`
	OvertimePay       float64 `gorm:"column:overtime_pay;default:0" json:"overtime_pay"`
	Bonus             float64 `gorm:"default:0" json:"bonus"`
	Allowance         float64 `gorm:"default:0" json:"allowance"`
	FullTime          float64 `gorm:"column:full_time;default:0" json:"full_time"`
	Other             float64 `gorm:"default:0" json:"other"`
	Deduction         float64 `gorm:"default:0" json:"deduction"`
	TotalSalary       float64 `gorm:"column:total_salary;not null" json:"total_salary"`

	WorkTimeType         string  `gorm:"column:work_time_type;default:''" json:"-"`
	AttendanceStatus     string  `gorm:"column:attendance_status;default:''" json:"-"`
	WeekdayOvertimeHours float64 `gorm:"column:weekday_overtime_hours;default:0" json:"-"`
	WeekendOvertimeHours float64 `gorm:"column:weekend_overtime_hours;default:0" json:"-"`
	HolidayOvertimeHours float64 `gorm:"column:holiday_overtime_hours;default:0" json:"-"`

	PaymentDate string `gorm:"column:payment_date;not null" json:"payment_date"`
	Remarks     string `gorm:"default:''" json:"remarks"`
}

func (Record) TableName() string {
	return "salaries"
}

// ComputeTotal is the derived total used when the source row does not supply
// one explicitly.
func (r *Record) ComputeTotal() float64 {
	return r.BaseSalary + r.PositionSalary + r.PerformanceSalary +
		r.OvertimePay + r.Bonus + r.Allowance + r.FullTime + r.Other -
		r.Deduction
}

package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/Rabbit1992/salary-query/internal/employee/errors"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			msg := sqliteErr.Error()
			if strings.Contains(msg, "employees.username") {
				return employeeerrors.ErrUsernameExists
			}
			if strings.Contains(msg, "employees.employee_id") {
				return employeeerrors.ErrEmployeeIDExists
			}
		}
	}

	// SQLite error text when the driver error was flattened along the way
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "username") {
		return employeeerrors.ErrUsernameExists
	}
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "employee_id") {
		return employeeerrors.ErrEmployeeIDExists
	}

	return err
}

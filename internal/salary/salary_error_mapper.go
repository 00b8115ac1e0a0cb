package salary

import (
	"errors"
	"strings"

	salaryerrors "github.com/Rabbit1992/salary-query/internal/salary/errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return salaryerrors.ErrDuplicatePeriod
		case sqlite3.ErrConstraintForeignKey:
			return salaryerrors.ErrUnknownEmployee
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") {
		return salaryerrors.ErrDuplicatePeriod
	}
	if strings.Contains(errMsg, "foreign key constraint failed") {
		return salaryerrors.ErrUnknownEmployee
	}

	return err
}

package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	IdentitySets(ctx context.Context) (IdentitySets, error)
	Profiles(ctx context.Context) (map[string]Profile, error)
	Create(ctx context.Context, emp *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto an open transaction so the persistence
// phase commits once for the whole batch.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) IdentitySets(ctx context.Context) (IdentitySets, error) {
	var rows []struct {
		EmployeeID string
		Username   string
	}
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("employee_id", "username").
		Find(&rows).Error
	if err != nil {
		return IdentitySets{}, err
	}

	sets := NewIdentitySets()
	for _, row := range rows {
		sets.Add(row.EmployeeID, row.Username)
	}
	return sets, nil
}

func (r *repository) Profiles(ctx context.Context) (map[string]Profile, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Select("employee_id", "name", "department", "position").
		Find(&emps).Error
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]Profile, len(emps))
	for _, emp := range emps {
		profiles[emp.EmployeeID] = Profile{
			Name:       emp.Name,
			Department: emp.Department,
			Position:   emp.Position,
		}
	}
	return profiles, nil
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

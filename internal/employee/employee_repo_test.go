package employee_test

import (
	"context"
	"testing"

	"github.com/Rabbit1992/salary-query/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestRepository(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.AutoMigrate(&employee.Employee{}))

	ctx := context.Background()
	repo := employee.NewRepository(db)

	alice := &employee.Employee{
		EmployeeID: "E1",
		Username:   "alice",
		Password:   "digest",
		Name:       "Alice",
		Department: "Engineering",
		Position:   "SWE",
		JoinDate:   "2020-01-15",
		Role:       employee.RoleEmployee,
	}
	assert.NoError(t, repo.Create(ctx, alice))
	assert.NoError(t, repo.Create(ctx, &employee.Employee{
		EmployeeID: "E2",
		Username:   "bob",
		Password:   "digest",
		Name:       "Bob",
		Department: "Finance",
		Position:   "Accountant",
		JoinDate:   "2021-03-10",
		Role:       employee.RoleAdmin,
	}))

	t.Run("identity sets cover both key columns", func(t *testing.T) {
		sets, err := repo.IdentitySets(ctx)
		assert.NoError(t, err)
		assert.True(t, sets.HasEmployeeID("E1"))
		assert.True(t, sets.HasEmployeeID("E2"))
		assert.True(t, sets.HasUsername("alice"))
		assert.True(t, sets.HasUsername("bob"))
		assert.False(t, sets.HasEmployeeID("E3"))
	})

	t.Run("profiles keyed by employee id", func(t *testing.T) {
		profiles, err := repo.Profiles(ctx)
		assert.NoError(t, err)
		assert.Len(t, profiles, 2)
		assert.Equal(t, employee.Profile{
			Name:       "Alice",
			Department: "Engineering",
			Position:   "SWE",
		}, profiles["E1"])
	})

	t.Run("duplicate employee id is rejected by the store", func(t *testing.T) {
		err := repo.Create(ctx, &employee.Employee{
			EmployeeID: "E1",
			Username:   "someone-else",
			Password:   "digest",
			Name:       "Dup",
			Department: "Eng",
			Position:   "SWE",
			JoinDate:   "2022-01-01",
			Role:       employee.RoleEmployee,
		})
		assert.Error(t, err)
	})

	t.Run("duplicate username is rejected by the store", func(t *testing.T) {
		err := repo.Create(ctx, &employee.Employee{
			EmployeeID: "E9",
			Username:   "alice",
			Password:   "digest",
			Name:       "Dup",
			Department: "Eng",
			Position:   "SWE",
			JoinDate:   "2022-01-01",
			Role:       employee.RoleEmployee,
		})
		assert.Error(t, err)
	})
}

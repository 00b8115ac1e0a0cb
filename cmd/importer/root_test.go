package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandRegistersImporters(t *testing.T) {
	root := newRootCommand()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "employees")
	assert.Contains(t, names, "salaries")

	assert.NotNil(t, root.PersistentFlags().Lookup("db"))
}

func TestResolveConfigDBOverride(t *testing.T) {
	t.Setenv("SALARY_DB_PATH", "from-env.db")

	empty := ""
	assert.Equal(t, "from-env.db", resolveConfig(&empty).DBPath)

	override := "from-flag.db"
	assert.Equal(t, "from-flag.db", resolveConfig(&override).DBPath)
}

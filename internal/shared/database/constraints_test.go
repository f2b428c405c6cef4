package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The migration runs on every boot, so each statement has to survive a
// rerun. Postgres accepts IF NOT EXISTS for indexes but not for ADD
// CONSTRAINT; a constraint must be guarded by an exception handler
// instead.
func TestConstraintStatementsAreRerunSafe(t *testing.T) {
	require.NotEmpty(t, constraintStatements)

	for _, stmt := range constraintStatements {
		t.Run(stmt.name, func(t *testing.T) {
			sql := strings.ToUpper(stmt.sql)

			assert.NotContains(t, sql, "ADD CONSTRAINT IF NOT EXISTS",
				"postgres rejects IF NOT EXISTS on ADD CONSTRAINT")

			if strings.Contains(sql, "ADD CONSTRAINT") {
				assert.Contains(t, sql, "EXCEPTION")
				assert.Contains(t, sql, "DUPLICATE_OBJECT")
				assert.Contains(t, sql, "DUPLICATE_TABLE")
			} else {
				assert.Contains(t, sql, "IF NOT EXISTS")
			}

			// CONCURRENTLY refuses to run inside a transaction block and
			// is pointless during boot.
			assert.NotContains(t, sql, "CONCURRENTLY")
		})
	}
}

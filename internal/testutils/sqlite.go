package testutils

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-idle/internal/repositories/saves"
)

// CreateTestSQLite opens a private in-memory SQLite database
func CreateTestSQLite(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := saves.OpenSQLite(dsn)
	require.NoError(t, err, "failed to open sqlite")

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return db, cleanup
}

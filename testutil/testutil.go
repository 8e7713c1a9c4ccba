package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jjmunozz/StrategicTeam-SGC/database"
	"github.com/jjmunozz/StrategicTeam-SGC/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a fresh SQLite database in a temp dir, migrated and seeded with
// the requirement catalog.
func DB(tb testing.TB) database.Database {
	tb.Helper()

	dsn := filepath.Join(tb.TempDir(), "sgc.db") + "?_foreign_keys=on"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		tb.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	db := database.New(gdb)
	if err := db.Migrate(); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	if _, err := db.SeedRequirements(context.Background()); err != nil {
		tb.Fatalf("seed requirements: %v", err)
	}
	return db
}

// SeedProject inserts an ACTIVO project named name.
func SeedProject(tb testing.TB, db database.Database, name string) *models.Project {
	tb.Helper()

	project, err := models.NewProject(models.ProjectInput{CompanyName: name})
	if err != nil {
		tb.Fatalf("new project: %v", err)
	}
	if err := db.ProjectRepo().Add(context.Background(), project); err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return project
}

// Requirements returns the seeded catalog ordered by chapter then id.
func Requirements(tb testing.TB, db database.Database) []*models.Requirement {
	tb.Helper()

	requirements, err := db.RequirementRepo().FindAll(context.Background())
	if err != nil {
		tb.Fatalf("find requirements: %v", err)
	}
	if len(requirements) == 0 {
		tb.Fatalf("requirement catalog is empty")
	}
	return requirements
}

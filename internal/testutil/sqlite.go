// Package testutil opens throwaway databases for repository and usecase tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"prenatal-care-api/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB returns a gorm handle on a fresh SQLite file with the full schema and
// foreign keys enforced. Unique and foreign key violations are translated to
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Patient{},
		&entity.Visit{},
		&entity.Exam{},
		&entity.PortalAccount{},
		&entity.ScheduledAppointment{},
		&entity.GestationLogEntry{},
		&entity.Reminder{},
		&entity.AuditLog{},
	)
	if err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDStaff, RoleName: entity.RoleStaff},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
	}
	if err := db.Create(&roles).Error; err != nil {
		t.Fatalf("seed roles: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// FixedClock reports a constant instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Location() *time.Location {
	return c.At.Location()
}

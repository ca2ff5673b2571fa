package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snowpeak/skistation/internal/db"
	"github.com/snowpeak/skistation/internal/models"
)

// TestWALMode verifies that the DSN parameters enable WAL journal mode.
func TestWALMode(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "wal_test.db") + db.DSNParams

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	var mode string
	gdb.Raw("PRAGMA journal_mode").Scan(&mode)
	if mode != "wal" {
		t.Errorf("expected journal_mode=wal, got %q", mode)
	}
}

// TestOpen_CreatesIndexes verifies that Open() migrates the schema and adds
// the two composite indexes on the registrations table.
func TestOpen_CreatesIndexes(t *testing.T) {
	gdb, err := db.Open(filepath.Join(t.TempDir(), "ski.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}

	found := indexNames(t, sqlDB, "registrations")
	for _, want := range []string{"idx_reg_skier_course_week", "idx_reg_course_week"} {
		if !found[want] {
			t.Errorf("index %q missing from registrations table; found: %v", want, found)
		}
	}
}

// TestUniqueRegistrationTriple checks the storage layer rejects a second
// registration for the same skier, course and week.
func TestUniqueRegistrationTriple(t *testing.T) {
	gdb, err := db.Open(filepath.Join(t.TempDir(), "ski.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	skier := models.NewSkier("Ali", "Ben Salah", models.NewDate(2010, 1, 1))
	if err := gdb.Create(&skier).Error; err != nil {
		t.Fatalf("create skier: %v", err)
	}
	course := models.Course{TypeCourse: models.CourseCollectiveChildren, Support: models.SupportSki}
	if err := gdb.Create(&course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}

	first := models.Registration{NumWeek: 3, Code: "REG-00000001", SkierID: &skier.ID, CourseID: &course.ID}
	if err := gdb.Create(&first).Error; err != nil {
		t.Fatalf("first registration: %v", err)
	}
	dup := models.Registration{NumWeek: 3, Code: "REG-00000002", SkierID: &skier.ID, CourseID: &course.ID}
	if err := gdb.Create(&dup).Error; err == nil {
		t.Fatal("expected unique index violation for duplicate (skier, course, week)")
	}
}

func indexNames(t *testing.T, sqlDB *sql.DB, table string) map[string]bool {
	t.Helper()
	rows, err := sqlDB.Query("PRAGMA index_list(" + table + ")")
	if err != nil {
		t.Fatalf("PRAGMA index_list: %v", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var seq int
		var name string
		var unique bool
		var origin, partial string
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			t.Fatalf("scan: %v", err)
		}
		out[name] = true
	}
	return out
}

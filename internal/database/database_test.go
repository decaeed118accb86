package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/auth"
	"github.com/bruno-marques98/CoreCrewApp/internal/database"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/messaging/kafka"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMigrate(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, database.Migrate(db))
	// idempotent
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{"departments", "employee_trainings", "audit_logs", "settings", "users", "outbox_events"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

type foreignKey struct {
	Table string `gorm:"column:table"`
	From  string `gorm:"column:from"`
	To    string `gorm:"column:to"`
}

func foreignKeys(t *testing.T, db *gorm.DB, table string) []foreignKey {
	t.Helper()
	var fks []foreignKey
	require.NoError(t, db.Raw(`SELECT "table", "from", "to" FROM pragma_foreign_key_list(?)`, table).Scan(&fks).Error)
	return fks
}

func TestMigrate_ForeignKeysPointAtParents(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, database.Migrate(db))

	employee := foreignKey{Table: "employees", From: "employee_id", To: "employee_id"}
	want := map[string][]foreignKey{
		"departments":         nil,
		"roles":               nil,
		"benefits":            nil,
		"settings":            nil,
		"audit_logs":          nil,
		"employees":           {{Table: "departments", From: "department_id", To: "department_id"}},
		"employee_roles":      {employee, {Table: "roles", From: "role_id", To: "role_id"}},
		"employee_benefits":   {employee, {Table: "benefits", From: "benefit_id", To: "benefit_id"}},
		"employee_projects":   {employee, {Table: "projects", From: "project_id", To: "project_id"}},
		"employee_trainings":  {employee, {Table: "training_programs", From: "training_program_id", To: "training_program_id"}},
		"projects":            {{Table: "employees", From: "manager_id", To: "employee_id"}},
		"training_programs":   {{Table: "employees", From: "trainer_id", To: "employee_id"}},
		"leave_requests":      {employee},
		"performance_reviews": {employee},
		"salaries":            {employee},
		"attendances":         {employee},
		"notifications":       {employee},
	}
	for table, fks := range want {
		got := foreignKeys(t, db, table)
		if len(fks) == 0 {
			assert.Empty(t, got, table)
			continue
		}
		assert.ElementsMatch(t, fks, got, table)
	}
}

func TestMigrate_ParentDeleteRestricted(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, database.Migrate(db))

	dept := domain.Department{Name: "Finance", Version: 1}
	require.NoError(t, db.Create(&dept).Error)
	emp := domain.Employee{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@corecrew.io",
		HireDate:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		DepartmentID: dept.DepartmentID,
		Version:      1,
	}
	require.NoError(t, db.Create(&emp).Error)

	orphan := emp
	orphan.EmployeeID = 0
	orphan.DepartmentID = dept.DepartmentID + 100
	assert.True(t, dberror.IsForeignKeyViolation(db.Create(&orphan).Error))
	assert.True(t, dberror.IsForeignKeyViolation(db.Delete(&domain.Department{}, dept.DepartmentID).Error))

	require.NoError(t, db.Delete(&domain.Employee{}, emp.EmployeeID).Error)
	require.NoError(t, db.Delete(&domain.Department{}, dept.DepartmentID).Error)
}

func TestSeedAdmin(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, database.Migrate(db))
	svc := auth.NewService(db, auth.NewRepository(db), kafka.NewOutboxRepository(db), auth.TokenConfig{Secret: "s", TTL: time.Hour})
	ctx := context.Background()

	require.NoError(t, database.SeedAdmin(ctx, svc, "", ""))
	var count int64
	require.NoError(t, db.Model(&auth.User{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, database.SeedAdmin(ctx, svc, "root@corecrew.local", "changeme"))
	require.NoError(t, database.SeedAdmin(ctx, svc, "root@corecrew.local", "changeme"))
	require.NoError(t, db.Model(&auth.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var admin auth.User
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, "Admin", admin.Role)
}

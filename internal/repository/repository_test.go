package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"clinicdesk/internal/model"
)

// dryRunDB builds SQL without ever dialing a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "clinic:clinic@tcp(127.0.0.1:1)/clinic?parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestAfterQuery(t *testing.T) {
	db := dryRunDB(t)
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return afterQuery(tx, now, 10).Find(&[]model.Appointment{})
	})

	assert.Contains(t, sql, "FROM `appointments`")
	assert.Contains(t, sql, "date_time > '2024-06-01 12:00:00")
	assert.Contains(t, sql, "ORDER BY date_time ASC")
	assert.Contains(t, sql, "LIMIT 10")
}

func TestBetweenQuery(t *testing.T) {
	db := dryRunDB(t)
	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1).Add(-time.Nanosecond)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return betweenQuery(tx, from, to).Find(&[]model.Appointment{})
	})

	assert.Contains(t, sql, "date_time >= '2024-06-01 00:00:00")
	assert.Contains(t, sql, "date_time <= '2024-06-01 23:59:59")
	assert.NotContains(t, sql, "LIMIT")
}

func TestRecentQuery(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return recentQuery(tx, 5).Find(&[]model.Patient{})
	})

	assert.Contains(t, sql, "FROM `patients`")
	assert.Contains(t, sql, "ORDER BY last_visit DESC")
	assert.Contains(t, sql, "LIMIT 5")
}

func TestAppointmentUpdate_EmptyFieldsIsNoop(t *testing.T) {
	// a nil handle would panic if Update touched the database
	repo := &appointmentRepository{db: nil}
	assert.NoError(t, repo.Update(context.Background(), uuid.New(), map[string]interface{}{}))
}

package workers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"guitar-learning-system/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, weekly int, hours float64, lastReset time.Time) {
	t.Helper()
	user := models.User{
		ID:              id,
		Name:            id,
		Username:        id,
		Level:           models.LevelBeginner,
		WeeklyPoints:    weekly,
		HoursThisWeek:   hours,
		TotalPoints:     1000,
		LastWeeklyReset: lastReset,
		JoinDate:        lastReset,
	}
	require.NoError(t, db.Create(&user).Error)
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2026-01-07 15:30 UTC -> Monday 2026-01-05 00:00 UTC
	wed := time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), StartOfWeek(wed))

	// Monday midnight is its own week start.
	mon := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, StartOfWeek(mon))

	// Sunday belongs to the week started the previous Monday.
	sun := time.Date(2026, 1, 11, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, mon, StartOfWeek(sun))
}

func TestResetDueUsers(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

	// Last reset in the previous week: due.
	seedUser(t, db, "user_stale", 320, 4.5, now.AddDate(0, 0, -7))
	// Last reset inside the current week: left alone.
	seedUser(t, db, "user_fresh", 80, 1.0, now.Add(-time.Hour))

	n, err := ResetDueUsers(db, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var stale models.User
	require.NoError(t, db.First(&stale, "id = ?", "user_stale").Error)
	assert.Zero(t, stale.WeeklyPoints)
	assert.Zero(t, stale.HoursThisWeek)
	assert.Equal(t, StartOfWeek(now), stale.LastWeeklyReset.UTC())
	// Lifetime totals never reset.
	assert.Equal(t, 1000, stale.TotalPoints)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", "user_fresh").Error)
	assert.Equal(t, 80, fresh.WeeklyPoints)
	assert.Equal(t, 1.0, fresh.HoursThisWeek)
}

func TestResetDueUsersIdempotentWithinWeek(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	seedUser(t, db, "user_stale", 320, 4.5, now.AddDate(0, 0, -7))

	n, err := ResetDueUsers(db, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A second pass in the same week resets nobody.
	n, err = ResetDueUsers(db, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	// The next week it triggers again.
	n, err = ResetDueUsers(db, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

package workers

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"guitar-learning-system/models"
)

// WeeklyResetWorker zeroes per-week counters (weekly points, hours this
// week) for users whose last reset predates the current week. Weeks start
// Monday 00:00 UTC. The job runs hourly so a restart never misses a
// boundary by more than an hour.
type WeeklyResetWorker struct {
	db    *gorm.DB
	sched gocron.Scheduler
}

func NewWeeklyResetWorker(db *gorm.DB) *WeeklyResetWorker {
	return &WeeklyResetWorker{db: db}
}

func (w *WeeklyResetWorker) Start() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[weekly-reset] scheduler init: %v", err)
		return
	}
	w.sched = sched

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			if n, err := ResetDueUsers(w.db, time.Now()); err != nil {
				log.Printf("[weekly-reset] %v", err)
			} else if n > 0 {
				log.Printf("✅ [weekly-reset] reset weekly stats for %d users", n)
			}
		}),
	)
	sched.Start()

	// Catch up immediately on startup.
	if n, err := ResetDueUsers(w.db, time.Now()); err != nil {
		log.Printf("[weekly-reset] startup pass: %v", err)
	} else if n > 0 {
		log.Printf("✅ [weekly-reset] startup pass reset %d users", n)
	}
}

func (w *WeeklyResetWorker) Stop() {
	if w.sched != nil {
		_ = w.sched.Shutdown()
	}
}

// ResetDueUsers resets weekly counters for every user whose LastWeeklyReset
// falls before the start of the week containing now. Returns the number of
// users reset.
func ResetDueUsers(db *gorm.DB, now time.Time) (int, error) {
	weekStart := StartOfWeek(now)

	var users []models.User
	if err := db.Where("last_weekly_reset < ?", weekStart).Find(&users).Error; err != nil {
		return 0, err
	}

	reset := 0
	for i := range users {
		users[i].WeeklyPoints = 0
		users[i].HoursThisWeek = 0
		users[i].LastWeeklyReset = weekStart
		if err := db.Save(&users[i]).Error; err != nil {
			return reset, err
		}
		reset++
	}
	return reset, nil
}

// StartOfWeek returns Monday 00:00 UTC of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"guitar-learning-system/models"
)

// demoUsers is the fixed cast every fresh database starts with, so search,
// friends and the community feed have people in them from day one.
var demoUsers = []models.User{
	{
		ID: "user_sarah", Name: "Sarah Martinez", Username: "sarah_guitarist",
		Email: "sarah@example.com", Avatar: "🎸",
		Level:            models.LevelIntermediate,
		MusicPreferences: []string{"rock", "pop", "indie"},
		PracticeStreak:   12, SongsMastered: 8, ChordsLearned: 15,
		HoursThisWeek: 4.5, TotalPoints: 2150, WeeklyPoints: 180, LevelProgress: 45,
	},
	{
		ID: "user_mike", Name: "Mike Rodriguez", Username: "mike_shredder",
		Email: "mike@example.com", Avatar: "🎵",
		Level:            models.LevelAdvanced,
		MusicPreferences: []string{"metal", "rock", "blues"},
		PracticeStreak:   25, SongsMastered: 18, ChordsLearned: 28,
		HoursThisWeek: 8.2, TotalPoints: 4500, WeeklyPoints: 290, LevelProgress: 75,
	},
	{
		ID: "user_emma", Name: "Emma Thompson", Username: "emma_strums",
		Email: "emma@example.com", Avatar: "🌟",
		Level:            models.LevelBeginner,
		MusicPreferences: []string{"pop", "folk", "country"},
		PracticeStreak:   8, SongsMastered: 3, ChordsLearned: 7,
		HoursThisWeek: 2.8, TotalPoints: 850, WeeklyPoints: 120, LevelProgress: 30,
	},
	{
		ID: "user_alex", Name: "Alex Chen", Username: "alex_fingers",
		Email: "alex@example.com", Avatar: "🎶",
		Level:            models.LevelIntermediate,
		MusicPreferences: []string{"jazz", "classical", "blues"},
		PracticeStreak:   15, SongsMastered: 12, ChordsLearned: 20,
		HoursThisWeek: 6.1, TotalPoints: 3200, WeeklyPoints: 220, LevelProgress: 60,
	},
	{
		ID: "user_lily", Name: "Lily Johnson", Username: "lily_acoustic",
		Email: "lily@example.com", Avatar: "✨",
		Level:            models.LevelProficient,
		MusicPreferences: []string{"folk", "indie", "world"},
		PracticeStreak:   33, SongsMastered: 22, ChordsLearned: 24,
		HoursThisWeek: 7.5, TotalPoints: 5800, WeeklyPoints: 340, LevelProgress: 85,
	},
}

// SeedDemoUsers inserts the demo cast and a couple of feed posts. Existing
// rows are left alone, so this is safe to run on every startup.
func SeedDemoUsers(db *gorm.DB) error {
	now := time.Now().UTC()
	for _, u := range demoUsers {
		u.JoinDate = now
		u.LastWeeklyReset = now
		res := db.Where("id = ?", u.ID).FirstOrCreate(&u)
		if res.Error != nil {
			return res.Error
		}
	}

	posts := []models.CommunityPost{
		{
			ID:     "post_demo_1",
			UserID: "user_sarah", UserName: "Sarah Martinez", Username: "sarah_guitarist",
			UserLevel: string(models.LevelIntermediate), Avatar: "🎸",
			Content: "Just nailed the solo from Hotel California! 🎸 Three weeks of practice finally paying off.",
			Likes:   2, LikedBy: []string{"user_mike", "user_alex"},
			Type: models.PostTypeAchievement, Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID:     "post_demo_2",
			UserID: "user_mike", UserName: "Mike Rodriguez", Username: "mike_shredder",
			UserLevel: string(models.LevelAdvanced), Avatar: "🎵",
			Content: "Hit a 25 day practice streak today. Consistency beats intensity, every time.",
			Likes:   3, LikedBy: []string{"user_sarah", "user_emma", "user_lily"},
			Type: models.PostTypeMilestone, Timestamp: now.Add(-5 * time.Hour),
		},
	}
	for _, p := range posts {
		res := db.Where("id = ?", p.ID).FirstOrCreate(&p)
		if res.Error != nil {
			return res.Error
		}
	}

	log.Printf("✅ [seed] demo users ready (%d users)", len(demoUsers))
	return nil
}

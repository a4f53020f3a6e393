package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guitar-learning-system/models"
)

func TestCalculatePoints(t *testing.T) {
	svc := NewProgressionService(newTestDB(t))

	// base + multiplier*difficulty, rounded
	assert.Equal(t, 13, svc.CalculatePoints(models.ActivityPractice, 2))           // 10 + 1.5*2
	assert.Equal(t, 80, svc.CalculatePoints(models.ActivitySongCompleted, 3))      // 50 + 10*3
	assert.Equal(t, 150, svc.CalculatePoints(models.ActivityAchievementEarned, 7)) // multiplier 0

	// difficulty 0 yields the base
	assert.Equal(t, 10, svc.CalculatePoints(models.ActivityPractice, 0))
	assert.Equal(t, 70, svc.CalculatePoints(models.ActivityBattleWon, -2))

	// unknown kinds score zero
	assert.Equal(t, 0, svc.CalculatePoints(models.ActivityType("air_guitar"), 5))
}

func TestCalculatePointsMonotonicInDifficulty(t *testing.T) {
	svc := NewProgressionService(newTestDB(t))
	for kind := range PointsConfig {
		prev := svc.CalculatePoints(kind, 0)
		for d := 1; d <= 10; d++ {
			cur := svc.CalculatePoints(kind, d)
			assert.GreaterOrEqual(t, cur, prev, "kind %s difficulty %d", kind, d)
			prev = cur
		}
	}
}

func TestAwardPointsUpdatesCounters(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewProgressionService(db)
	user := signUpTestUser(t, sessions, "Test Player", "player@example.com", models.LevelBeginner)

	activity, err := svc.AwardPoints(user.ID, ActivityInput{
		Type:        models.ActivityPractice,
		Points:      13,
		Description: "Practiced chord transitions",
		Difficulty:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, activity)
	assert.Equal(t, 13, activity.Points)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, 13, reloaded.TotalPoints)
	assert.Equal(t, 13, reloaded.WeeklyPoints)

	recent, err := svc.RecentActivities(user.ID)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, activity.ID, recent[0].ID)
}

func TestAwardPointsUnknownUserDropped(t *testing.T) {
	svc := NewProgressionService(newTestDB(t))

	activity, err := svc.AwardPoints("user_ghost", ActivityInput{
		Type:   models.ActivityPractice,
		Points: 10,
	})
	assert.NoError(t, err)
	assert.Nil(t, activity)

	var count int64
	svc.DB.Model(&models.PointsActivity{}).Count(&count)
	assert.Zero(t, count)
}

func TestActivityHistoryCapped(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewProgressionService(db)
	user := signUpTestUser(t, sessions, "Busy Player", "busy@example.com", models.LevelNovice)

	for i := 0; i < MaxRecentActivities+5; i++ {
		_, err := svc.AwardPoints(user.ID, ActivityInput{
			Type:        models.ActivityPractice,
			Points:      10,
			Description: fmt.Sprintf("session %d", i),
		})
		require.NoError(t, err)
	}

	var count int64
	db.Model(&models.PointsActivity{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(MaxRecentActivities), count)

	// Total points keep accumulating even though old entries are trimmed.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, 10*(MaxRecentActivities+5), reloaded.TotalPoints)
}

func TestLevelProgressComputed(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewProgressionService(db)

	// Beginner thresholds: 6 songs, 10 chords. Signup seeds 3 chords.
	user := signUpTestUser(t, sessions, "New Player", "new@example.com", models.LevelBeginner)
	// (0/6*100 + 3/10*100) / 2 = 15
	assert.Equal(t, 15, svc.LevelProgress(user.ID))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"songs_mastered": 3, "chords_learned": 5}).Error)
	// (50 + 50) / 2 = 50
	assert.Equal(t, 50, svc.LevelProgress(user.ID))

	// Ratios cap at 100 even past the thresholds.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"songs_mastered": 50, "chords_learned": 50}).Error)
	assert.Equal(t, 100, svc.LevelProgress(user.ID))
}

func TestLevelProgressExplicitOverrideWins(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewProgressionService(db)
	user := signUpTestUser(t, sessions, "Override Player", "override@example.com", models.LevelBeginner)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("level_progress", 65).Error)
	assert.Equal(t, 65, svc.LevelProgress(user.ID))
}

func TestLevelProgressUnknownUser(t *testing.T) {
	svc := NewProgressionService(newTestDB(t))
	assert.Zero(t, svc.LevelProgress("user_missing"))
}

func TestOverallProgressBounds(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewProgressionService(db)

	novice := signUpTestUser(t, sessions, "Novice P", "novice@example.com", models.LevelNovice)
	// Level index 0, no songs, no chords.
	assert.Equal(t, 0, svc.OverallProgress(novice.ID))

	expert := signUpTestUser(t, sessions, "Expert P", "expert@example.com", models.LevelExpert)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", expert.ID).
		Updates(map[string]interface{}{"songs_mastered": 40, "chords_learned": 40}).Error)
	// Base already 100 at expert; bonus cannot push past 100.
	assert.Equal(t, 100, svc.OverallProgress(expert.ID))
}

func TestOverallProgressBonusCapped(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewProgressionService(db)
	user := signUpTestUser(t, sessions, "Mid P", "mid@example.com", models.LevelNovice)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"songs_mastered": 100, "chords_learned": 100}).Error)
	// Base 0 + bonus capped at 20.
	assert.Equal(t, 20, svc.OverallProgress(user.ID))
}

func TestNewUserPracticeJourney(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewProgressionService(db)

	result, err := sessions.SignUp(SignUpInput{
		Name:             "Journey Player",
		Email:            "journey@example.com",
		Password:         "password123",
		Level:            models.LevelBeginner,
		MusicPreferences: []string{"rock", "pop", "blues"},
	})
	require.NoError(t, err)
	user := result.User
	assert.Equal(t, 3, user.ChordsLearned)

	points := svc.CalculatePoints(models.ActivityPractice, 2)
	assert.Equal(t, 13, points)

	_, err = svc.AwardPoints(user.ID, ActivityInput{
		Type:        models.ActivityPractice,
		Points:      points,
		Description: "Evening practice",
		Difficulty:  2,
	})
	require.NoError(t, err)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, points, reloaded.TotalPoints)

	recent, err := svc.RecentActivities(user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, recent)
	assert.Equal(t, models.ActivityPractice, recent[0].Type)
	assert.Equal(t, "Evening practice", recent[0].Description)
}

func TestThresholdsCoverEveryLevel(t *testing.T) {
	for _, level := range models.LevelOrder {
		th, ok := ThresholdsForLevel(level)
		assert.True(t, ok, "level %s", level)
		assert.Positive(t, th.SongsNeeded)
		assert.Positive(t, th.ChordsNeeded)
		assert.Positive(t, th.TechniquesNeeded)
	}
}

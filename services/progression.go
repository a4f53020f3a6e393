package services

import (
	"errors"
	"log"
	"math"
	"time"

	"guitar-learning-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsWeights define base and per-difficulty values for one activity kind.
type PointsWeights struct {
	Base       float64
	Multiplier float64
}

// PointsConfig maps every scoring activity kind to its weights.
// Unknown kinds score 0 by design.
var PointsConfig = map[models.ActivityType]PointsWeights{
	models.ActivityPractice:          {Base: 10, Multiplier: 1.5},
	models.ActivitySongCompleted:     {Base: 50, Multiplier: 10},
	models.ActivityChordLearned:      {Base: 25, Multiplier: 5},
	models.ActivityTheoryCompleted:   {Base: 30, Multiplier: 8},
	models.ActivityBattleWon:         {Base: 100, Multiplier: 15},
	models.ActivityStreakMilestone:   {Base: 75, Multiplier: 25},
	models.ActivityAchievementEarned: {Base: 150, Multiplier: 0},
	models.ActivityTechniqueMastered: {Base: 40, Multiplier: 12},
	models.ActivityQuizCompleted:     {Base: 20, Multiplier: 5},
}

// LevelThresholds holds the songs/chords/techniques counts required to
// complete each level.
type LevelThresholds struct {
	SongsNeeded      int
	ChordsNeeded     int
	TechniquesNeeded int
}

var levelThresholds = map[models.Level]LevelThresholds{
	models.LevelNovice:       {SongsNeeded: 3, ChordsNeeded: 5, TechniquesNeeded: 5},
	models.LevelBeginner:     {SongsNeeded: 6, ChordsNeeded: 10, TechniquesNeeded: 8},
	models.LevelElementary:   {SongsNeeded: 10, ChordsNeeded: 15, TechniquesNeeded: 12},
	models.LevelIntermediate: {SongsNeeded: 15, ChordsNeeded: 20, TechniquesNeeded: 15},
	models.LevelProficient:   {SongsNeeded: 20, ChordsNeeded: 25, TechniquesNeeded: 18},
	models.LevelAdvanced:     {SongsNeeded: 25, ChordsNeeded: 30, TechniquesNeeded: 22},
	models.LevelExpert:       {SongsNeeded: 30, ChordsNeeded: 35, TechniquesNeeded: 25},
}

// ThresholdsForLevel exposes the per-level completion thresholds.
func ThresholdsForLevel(level models.Level) (LevelThresholds, bool) {
	t, ok := levelThresholds[level]
	return t, ok
}

// MaxRecentActivities bounds the retained scoring history per user.
const MaxRecentActivities = 20

type ProgressionService struct {
	DB *gorm.DB
}

func NewProgressionService(db *gorm.DB) *ProgressionService {
	return &ProgressionService{DB: db}
}

// CalculatePoints returns round(base + multiplier*difficulty) for the activity
// kind. Unknown kinds yield 0 — a defensive default, not an error.
func (s *ProgressionService) CalculatePoints(activityType models.ActivityType, difficulty int) int {
	cfg, ok := PointsConfig[activityType]
	if !ok {
		return 0
	}
	return int(math.Round(cfg.Base + cfg.Multiplier*float64(difficulty)))
}

// ActivityInput is one scoring event as submitted by a caller.
type ActivityInput struct {
	Type        models.ActivityType `json:"type"`
	Points      int                 `json:"points"`
	Description string              `json:"description"`
	Difficulty  int                 `json:"difficulty"`
}

// AwardPoints appends an activity to the user's recent log and bumps both
// point counters in one transaction. Activities for unknown users are
// silently dropped — progression never hard-fails on a missing session.
func (s *ProgressionService) AwardPoints(userID string, in ActivityInput) (*models.PointsActivity, error) {
	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[progression] dropping activity %q for unknown user %s", in.Type, userID)
			return nil, nil
		}
		return nil, err
	}

	activity := models.PointsActivity{
		ID:          "activity_" + uuid.NewString(),
		UserID:      user.ID,
		Type:        in.Type,
		Points:      in.Points,
		Description: in.Description,
		Difficulty:  in.Difficulty,
		Timestamp:   time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}

		user.TotalPoints += in.Points
		user.WeeklyPoints += in.Points
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		// Trim history to the most recent entries.
		var stale []models.PointsActivity
		if err := tx.Where("user_id = ?", user.ID).
			Order("timestamp DESC").
			Offset(MaxRecentActivities).
			Find(&stale).Error; err != nil {
			return err
		}
		if len(stale) > 0 {
			if err := tx.Delete(&stale).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// RecentActivities returns the retained scoring history, most recent first.
func (s *ProgressionService) RecentActivities(userID string) ([]models.PointsActivity, error) {
	var activities []models.PointsActivity
	err := s.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(MaxRecentActivities).
		Find(&activities).Error
	return activities, err
}

// LevelProgress computes the within-level completion percentage (0..100):
// the average of the songs and chords ratios, each capped at 100. An explicit
// non-zero levelProgress on the user wins over the computed value. Unknown
// user or level yields 0.
func (s *ProgressionService) LevelProgress(userID string) int {
	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return 0
	}
	return levelProgressFor(&user)
}

func levelProgressFor(user *models.User) int {
	if user.LevelProgress != 0 {
		return clampPercent(user.LevelProgress)
	}

	t, ok := levelThresholds[user.Level]
	if !ok {
		return 0
	}

	songProgress := math.Min(float64(user.SongsMastered)/float64(t.SongsNeeded)*100, 100)
	chordProgress := math.Min(float64(user.ChordsLearned)/float64(t.ChordsNeeded)*100, 100)
	return clampPercent(int(math.Round((songProgress + chordProgress) / 2)))
}

// OverallProgress places the user on the whole novice→expert journey:
// the level index contributes the base, capped within-level work the rest.
func (s *ProgressionService) OverallProgress(userID string) int {
	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return 0
	}

	idx := user.Level.Index()
	if idx < 0 {
		return 0
	}
	base := float64(idx) / float64(len(models.LevelOrder)-1) * 100
	bonus := math.Min(float64(user.ChordsLearned*2+user.SongsMastered*5), 20)
	return clampPercent(int(math.Round(math.Min(base+bonus, 100))))
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

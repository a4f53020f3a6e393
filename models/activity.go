package models

import "time"

// ActivityType enumerates the scoring activity kinds.
type ActivityType string

const (
	ActivityPractice          ActivityType = "practice"
	ActivitySongCompleted     ActivityType = "song_completed"
	ActivityChordLearned      ActivityType = "chord_learned"
	ActivityTheoryCompleted   ActivityType = "theory_completed"
	ActivityBattleWon         ActivityType = "battle_won"
	ActivityStreakMilestone   ActivityType = "streak_milestone"
	ActivityAchievementEarned ActivityType = "achievement_earned"
	ActivityTechniqueMastered ActivityType = "technique_mastered"
	ActivityQuizCompleted     ActivityType = "quiz_completed"
)

// PointsActivity is an immutable log entry for one scoring event.
// Only the most recent entries per user are retained (see progression service).
type PointsActivity struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	UserID      string       `gorm:"index;not null" json:"user_id"`
	Type        ActivityType `gorm:"not null" json:"type"`
	Points      int          `json:"points"`
	Description string       `json:"description"`
	Difficulty  int          `json:"difficulty,omitempty"`
	Timestamp   time.Time    `gorm:"index" json:"timestamp"`
}

// ContentProgress records a user's progress on one catalog item. Progress
// changes only through explicit writes; reads never mutate it.
type ContentProgress struct {
	ID       string `gorm:"primaryKey" json:"id"`
	UserID   string `gorm:"not null;uniqueIndex:idx_content_progress_item" json:"user_id"`
	Kind     string `gorm:"not null;uniqueIndex:idx_content_progress_item" json:"kind"`
	ItemKey  string `gorm:"not null;uniqueIndex:idx_content_progress_item" json:"item_key"` // song title / technique name / ...
	Progress int    `json:"progress"`                                                       // 0..100

	Timestamps
}

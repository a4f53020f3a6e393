package models

import (
	"time"

	"gorm.io/gorm"
)

// Level is one of the seven ordered proficiency tiers gating content and thresholds.
type Level string

const (
	LevelNovice       Level = "novice"
	LevelBeginner     Level = "beginner"
	LevelElementary   Level = "elementary"
	LevelIntermediate Level = "intermediate"
	LevelProficient   Level = "proficient"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// LevelOrder lists all levels from lowest to highest.
var LevelOrder = []Level{
	LevelNovice,
	LevelBeginner,
	LevelElementary,
	LevelIntermediate,
	LevelProficient,
	LevelAdvanced,
	LevelExpert,
}

// Index returns the position of the level in LevelOrder, or -1 if unknown.
func (l Level) Index() int {
	for i, lvl := range LevelOrder {
		if lvl == l {
			return i
		}
	}
	return -1
}

func (l Level) Valid() bool {
	return l.Index() >= 0
}

// Account holds authentication credentials, separate from the user record
// so a missing user record can be recovered from the profile table on signin.
type Account struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	UserID       string `gorm:"uniqueIndex;not null" json:"user_id"`

	Timestamps
}

// User is the authoritative progression record for one player.
// Owned by the session service; mutated only through progression/profile operations.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"index" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Avatar   string `json:"avatar"`

	Level Level `gorm:"index;not null" json:"level"`
	// Exactly 3 genre tags once selected.
	MusicPreferences []string `gorm:"serializer:json" json:"musicPreferences"`

	PracticeStreak int     `gorm:"default:0" json:"practiceStreak"`
	SongsMastered  int     `gorm:"default:0" json:"songsMastered"`
	ChordsLearned  int     `gorm:"default:0" json:"chordsLearned"`
	HoursThisWeek  float64 `gorm:"default:0" json:"hoursThisWeek"`
	TotalPoints    int     `gorm:"default:0" json:"totalPoints"`
	WeeklyPoints   int     `gorm:"default:0" json:"weeklyPoints"`
	// Explicit override for the computed within-level progress; 0 means "computed".
	LevelProgress int `gorm:"default:0" json:"levelProgress"`

	JoinDate        time.Time `json:"joinDate"`
	LastWeeklyReset time.Time `json:"-"`

	// Derived from the presence set at read time, never persisted.
	IsOnline bool `gorm:"-" json:"isOnline"`

	Timestamps
}

// Profile is the secondary minimal record written alongside the user record.
// Signin falls back to it when the primary user record is missing.
type Profile struct {
	ID       string `gorm:"primaryKey" json:"id"`
	UserID   string `gorm:"uniqueIndex;not null" json:"user_id"`
	Username string `json:"username"`
	Level    Level  `json:"level"`
	Style1   string `json:"style_1"`
	Style2   string `json:"style_2"`
	Style3   string `json:"style_3"`

	Timestamps
}

// Session tracks an issued access token so signout can revoke it.
type Session struct {
	ID        string     `gorm:"primaryKey" json:"id"` // JWT token id (jti)
	UserID    string     `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	Timestamps
}

// UserUpdate carries a partial profile update; nil fields are left untouched.
// The whole set is applied as one atomic snapshot write.
type UserUpdate struct {
	Name             *string   `json:"name"`
	Email            *string   `json:"email"`
	Avatar           *string   `json:"avatar"`
	Level            *Level    `json:"level"`
	MusicPreferences *[]string `json:"musicPreferences"`
	PracticeStreak   *int      `json:"practiceStreak"`
	SongsMastered    *int      `json:"songsMastered"`
	ChordsLearned    *int      `json:"chordsLearned"`
	HoursThisWeek    *float64  `json:"hoursThisWeek"`
	TotalPoints      *int      `json:"totalPoints"`
	WeeklyPoints     *int      `json:"weeklyPoints"`
	LevelProgress    *int      `json:"levelProgress"`
}

// Apply copies the non-nil fields onto the user.
func (u *UserUpdate) Apply(target *User) {
	if u.Name != nil {
		target.Name = *u.Name
	}
	if u.Email != nil {
		target.Email = *u.Email
	}
	if u.Avatar != nil {
		target.Avatar = *u.Avatar
	}
	if u.Level != nil {
		target.Level = *u.Level
	}
	if u.MusicPreferences != nil {
		target.MusicPreferences = *u.MusicPreferences
	}
	if u.PracticeStreak != nil {
		target.PracticeStreak = *u.PracticeStreak
	}
	if u.SongsMastered != nil {
		target.SongsMastered = *u.SongsMastered
	}
	if u.ChordsLearned != nil {
		target.ChordsLearned = *u.ChordsLearned
	}
	if u.HoursThisWeek != nil {
		target.HoursThisWeek = *u.HoursThisWeek
	}
	if u.TotalPoints != nil {
		target.TotalPoints = *u.TotalPoints
	}
	if u.WeeklyPoints != nil {
		target.WeeklyPoints = *u.WeeklyPoints
	}
	if u.LevelProgress != nil {
		target.LevelProgress = *u.LevelProgress
	}
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"guitar-learning-system/content"
	"guitar-learning-system/models"
	"guitar-learning-system/utils"
)

// SessionService owns accounts, sign-in, token sessions and user profiles.
type SessionService struct {
	DB        *gorm.DB
	jwtSecret string
}

func NewSessionService(db *gorm.DB, jwtSecret string) *SessionService {
	return &SessionService{DB: db, jwtSecret: jwtSecret}
}

// SignUpInput is the registration payload. MusicPreferences must be exactly
// three distinct known themes.
type SignUpInput struct {
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Password         string       `json:"password"`
	Level            models.Level `json:"level"`
	MusicPreferences []string     `json:"musicPreferences"`
}

// AuthResult is returned by sign-up, sign-in and demo.
type AuthResult struct {
	User      *models.User     `json:"user"`
	Tokens    *utils.TokenPair `json:"tokens"`
	Recovered bool             `json:"recovered,omitempty"`
}

// SignUp registers a new account and its user record. The username is
// derived from the display name with a random suffix so it stays unique.
// Starting chord counts are seeded from the declared level.
func (s *SessionService) SignUp(in SignUpInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	if !in.Level.Valid() {
		return nil, ErrInvalidLevel
	}
	if !validPreferences(in.MusicPreferences) {
		return nil, ErrBadPreferences
	}

	var count int64
	if err := s.DB.Model(&models.Account{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	username, err := generateUsername(s.DB, in.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:               "user_" + uuid.NewString(),
		Name:             in.Name,
		Email:            in.Email,
		Username:         username,
		Avatar:           "🎸",
		Level:            in.Level,
		MusicPreferences: in.MusicPreferences,
		ChordsLearned:    startingChords(in.Level),
		JoinDate:         now,
		LastWeeklyReset:  now,
	}
	account := models.Account{
		ID:           "account_" + uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		UserID:       user.ID,
	}
	profile := profileFromUser(&user)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.openSession(user.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("[session] new user %s (%s)", user.Username, user.Level)
	return &AuthResult{User: &user, Tokens: tokens}, nil
}

// SignIn verifies credentials and opens a session. If the account exists but
// its user record is missing, the record is reconstructed from the stored
// profile so the player keeps their identity; stats start over.
func (s *SessionService) SignIn(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var account models.Account
	if err := s.DB.First(&account, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	recovered := false
	var user models.User
	err := s.DB.First(&user, "id = ?", account.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		restored, rerr := s.recoverUser(&account)
		if rerr != nil {
			return nil, rerr
		}
		user = *restored
		recovered = true
	} else if err != nil {
		return nil, err
	}

	tokens, err := s.openSession(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: &user, Tokens: tokens, Recovered: recovered}, nil
}

// recoverUser rebuilds a user record from the account's profile snapshot.
func (s *SessionService) recoverUser(account *models.Account) (*models.User, error) {
	var profile models.Profile
	if err := s.DB.First(&profile, "user_id = ?", account.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:               account.UserID,
		Name:             profile.Username,
		Email:            account.Email,
		Username:         profile.Username,
		Avatar:           "🎸",
		Level:            profile.Level,
		MusicPreferences: []string{profile.Style1, profile.Style2, profile.Style3},
		ChordsLearned:    startingChords(profile.Level),
		JoinDate:         now,
		LastWeeklyReset:  now,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("[session] recovered user %s from profile", user.Username)
	return &user, nil
}

// SignOut revokes the session behind the given token id.
func (s *SessionService) SignOut(tokenID string) error {
	now := time.Now().UTC()
	return s.DB.Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", tokenID).
		Update("revoked_at", &now).Error
}

// Demo opens a throwaway session on a pre-seeded demo user with enough
// history to make every screen interesting.
func (s *SessionService) Demo() (*AuthResult, error) {
	now := time.Now().UTC()
	user := models.User{
		ID:               "demo_" + uuid.NewString(),
		Name:             "Demo Player",
		Email:            "demo@example.com",
		Username:         "demo_player_" + fmt.Sprintf("%04d", rand.Intn(10000)),
		Avatar:           "🎸",
		Level:            models.LevelIntermediate,
		MusicPreferences: []string{"rock", "blues", "jazz"},
		PracticeStreak:   5,
		SongsMastered:    3,
		ChordsLearned:    8,
		HoursThisWeek:    2.5,
		TotalPoints:      1250,
		WeeklyPoints:     320,
		LevelProgress:    65,
		JoinDate:         now,
		LastWeeklyReset:  now,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	tokens, err := s.openSession(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: &user, Tokens: tokens}, nil
}

// GetUser loads a user by id.
func (s *SessionService) GetUser(userID string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update to the user and keeps the profile
// snapshot in sync, all in one transaction.
func (s *SessionService) UpdateProfile(userID string, update models.UserUpdate) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.Level != nil && !update.Level.Valid() {
		return nil, ErrInvalidLevel
	}
	if update.MusicPreferences != nil && !validPreferences(*update.MusicPreferences) {
		return nil, ErrBadPreferences
	}

	update.Apply(&user)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		var profile models.Profile
		if err := tx.First(&profile, "user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		syncProfile(&profile, &user)
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SessionService) openSession(userID string) (*utils.TokenPair, error) {
	tokens, err := utils.GenerateTokenPair(userID, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	session := models.Session{
		ID:        tokens.TokenID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(utils.RefreshTokenTTL),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

// SessionValid reports whether the token id still maps to a live session.
func (s *SessionService) SessionValid(tokenID string) bool {
	var session models.Session
	if err := s.DB.First(&session, "id = ?", tokenID).Error; err != nil {
		return false
	}
	return session.RevokedAt == nil && session.ExpiresAt.After(time.Now())
}

func validPreferences(prefs []string) bool {
	if len(prefs) != 3 {
		return false
	}
	seen := make(map[string]bool, 3)
	for _, p := range prefs {
		if !content.ValidTheme(p) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// usernameSuffix feeds the discriminator appended to generated usernames.
// Swapped out in tests to force collisions.
var usernameSuffix = func() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// generateUsername turns a display name into a unique handle, e.g.
// "Sarah Johnson" -> "sarah_johnson_4821". A taken suffix is retried so a
// duplicate never reaches the unique index.
func generateUsername(tx *gorm.DB, name string) (string, error) {
	base := strings.ReplaceAll(slug.Make(name), "-", "_")
	if base == "" {
		base = "player"
	}
	for i := 0; i < 25; i++ {
		candidate := fmt.Sprintf("%s_%s", base, usernameSuffix())
		var taken int64
		if err := tx.Model(&models.User{}).Where("username = ?", candidate).Count(&taken).Error; err != nil {
			return "", err
		}
		if taken == 0 {
			return candidate, nil
		}
	}
	return fmt.Sprintf("%s_%s", base, uuid.NewString()[:8]), nil
}

// startingChords seeds the chord count for a self-declared level.
func startingChords(level models.Level) int {
	switch level {
	case models.LevelNovice:
		return 0
	case models.LevelBeginner:
		return 3
	default:
		return 8
	}
}

func profileFromUser(u *models.User) models.Profile {
	p := models.Profile{
		ID:     "profile_" + uuid.NewString(),
		UserID: u.ID,
	}
	syncProfile(&p, u)
	return p
}

func syncProfile(p *models.Profile, u *models.User) {
	p.Username = u.Username
	p.Level = u.Level
	if len(u.MusicPreferences) == 3 {
		p.Style1 = u.MusicPreferences[0]
		p.Style2 = u.MusicPreferences[1]
		p.Style3 = u.MusicPreferences[2]
	}
}

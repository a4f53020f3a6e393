package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guitar-learning-system/models"
	"guitar-learning-system/utils"
)

func TestSignUp(t *testing.T) {
	sessions, db := newTestSession(t)

	result, err := sessions.SignUp(SignUpInput{
		Name:             "Sarah Johnson",
		Email:            "Sarah@Example.com",
		Password:         "secret123",
		Level:            models.LevelBeginner,
		MusicPreferences: []string{"rock", "pop", "indie"},
	})
	require.NoError(t, err)
	user := result.User
	assert.Equal(t, "sarah@example.com", user.Email)
	assert.True(t, strings.HasPrefix(user.Username, "sarah_johnson_"))
	assert.Equal(t, 3, user.ChordsLearned) // beginner seed
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	// Account never exposes the password and stores only a hash.
	var account models.Account
	require.NoError(t, db.First(&account, "email = ?", "sarah@example.com").Error)
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.NotEmpty(t, account.PasswordHash)

	// The profile snapshot mirrors the signup choices.
	var profile models.Profile
	require.NoError(t, db.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, user.Username, profile.Username)
	assert.Equal(t, models.LevelBeginner, profile.Level)
	assert.Equal(t, "rock", profile.Style1)
}

func TestSignUpChordSeeds(t *testing.T) {
	sessions, _ := newTestSession(t)

	novice := signUpTestUser(t, sessions, "Nova", "nova@example.com", models.LevelNovice)
	assert.Equal(t, 0, novice.ChordsLearned)

	advanced := signUpTestUser(t, sessions, "Ava", "ava@example.com", models.LevelAdvanced)
	assert.Equal(t, 8, advanced.ChordsLearned)
}

func TestSignUpValidation(t *testing.T) {
	sessions, _ := newTestSession(t)

	_, err := sessions.SignUp(SignUpInput{Email: "x@example.com", Password: "p"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = sessions.SignUp(SignUpInput{
		Name: "X", Email: "x@example.com", Password: "p",
		Level:            models.Level("legendary"),
		MusicPreferences: []string{"rock", "pop", "indie"},
	})
	assert.ErrorIs(t, err, ErrInvalidLevel)

	for name, prefs := range map[string][]string{
		"too few":   {"rock", "pop"},
		"duplicate": {"rock", "rock", "pop"},
		"unknown":   {"rock", "pop", "polka"},
	} {
		_, err = sessions.SignUp(SignUpInput{
			Name: "X", Email: "x@example.com", Password: "p",
			Level:            models.LevelNovice,
			MusicPreferences: prefs,
		})
		assert.ErrorIs(t, err, ErrBadPreferences, name)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	sessions, _ := newTestSession(t)
	signUpTestUser(t, sessions, "First", "dup@example.com", models.LevelNovice)

	_, err := sessions.SignUp(SignUpInput{
		Name: "Second", Email: "DUP@example.com", Password: "p",
		Level:            models.LevelNovice,
		MusicPreferences: []string{"rock", "blues", "jazz"},
	})
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestSignUpRetriesTakenUsernameSuffix(t *testing.T) {
	sessions, _ := newTestSession(t)

	orig := usernameSuffix
	defer func() { usernameSuffix = orig }()
	seq := []string{"0007", "0007", "0042"}
	calls := 0
	usernameSuffix = func() string {
		s := seq[calls%len(seq)]
		calls++
		return s
	}

	first := signUpTestUser(t, sessions, "Sarah Johnson", "sarah1@example.com", models.LevelNovice)
	assert.Equal(t, "sarah_johnson_0007", first.Username)

	// Same display name and a colliding first suffix: the generator retries
	// instead of letting the unique index reject the insert.
	second := signUpTestUser(t, sessions, "Sarah Johnson", "sarah2@example.com", models.LevelNovice)
	assert.Equal(t, "sarah_johnson_0042", second.Username)
}

func TestSignIn(t *testing.T) {
	sessions, _ := newTestSession(t)
	user := signUpTestUser(t, sessions, "Sam", "sam@example.com", models.LevelBeginner)

	result, err := sessions.SignIn("sam@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.False(t, result.Recovered)

	_, err = sessions.SignIn("sam@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = sessions.SignIn("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInRecoversMissingUser(t *testing.T) {
	sessions, db := newTestSession(t)
	user := signUpTestUser(t, sessions, "Lost Player", "lost@example.com", models.LevelIntermediate)

	// Simulate a lost user record; the profile snapshot survives.
	require.NoError(t, db.Unscoped().Delete(&models.User{}, "id = ?", user.ID).Error)

	result, err := sessions.SignIn("lost@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, result.Recovered)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, user.Username, result.User.Username)
	assert.Equal(t, models.LevelIntermediate, result.User.Level)
	// Stats start over; identity is what survives.
	assert.Zero(t, result.User.TotalPoints)

	// The reconstructed record is persisted.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
}

func TestSignOutRevokesSession(t *testing.T) {
	sessions, _ := newTestSession(t)
	signUpTestUser(t, sessions, "Out Player", "out@example.com", models.LevelNovice)

	result, err := sessions.SignIn("out@example.com", "password123")
	require.NoError(t, err)

	claims, err := utils.ParseAccessToken(result.Tokens.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.True(t, sessions.SessionValid(claims.TokenID))

	require.NoError(t, sessions.SignOut(claims.TokenID))
	assert.False(t, sessions.SessionValid(claims.TokenID))
}

func TestDemoSession(t *testing.T) {
	sessions, _ := newTestSession(t)

	result, err := sessions.Demo()
	require.NoError(t, err)
	user := result.User
	assert.True(t, strings.HasPrefix(user.ID, "demo_"))
	assert.Equal(t, models.LevelIntermediate, user.Level)
	assert.Equal(t, 5, user.PracticeStreak)
	assert.Equal(t, 1250, user.TotalPoints)
	assert.Equal(t, 320, user.WeeklyPoints)
	assert.Equal(t, 65, user.LevelProgress)
	assert.NotEmpty(t, result.Tokens.AccessToken)
}

func TestUpdateProfile(t *testing.T) {
	sessions, db := newTestSession(t)
	user := signUpTestUser(t, sessions, "Edit Player", "edit@example.com", models.LevelBeginner)

	newName := "Edited Player"
	newLevel := models.LevelIntermediate
	newStreak := 7
	updated, err := sessions.UpdateProfile(user.ID, models.UserUpdate{
		Name:           &newName,
		Level:          &newLevel,
		PracticeStreak: &newStreak,
	})
	require.NoError(t, err)
	assert.Equal(t, "Edited Player", updated.Name)
	assert.Equal(t, models.LevelIntermediate, updated.Level)
	assert.Equal(t, 7, updated.PracticeStreak)
	// Untouched fields survive.
	assert.Equal(t, user.Username, updated.Username)
	assert.Equal(t, 3, updated.ChordsLearned)

	// The profile snapshot follows the level change.
	var profile models.Profile
	require.NoError(t, db.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, models.LevelIntermediate, profile.Level)
}

func TestUpdateProfileValidation(t *testing.T) {
	sessions, _ := newTestSession(t)
	user := signUpTestUser(t, sessions, "Val Player", "val@example.com", models.LevelBeginner)

	bad := models.Level("cosmic")
	_, err := sessions.UpdateProfile(user.ID, models.UserUpdate{Level: &bad})
	assert.ErrorIs(t, err, ErrInvalidLevel)

	badPrefs := []string{"rock"}
	_, err = sessions.UpdateProfile(user.ID, models.UserUpdate{MusicPreferences: &badPrefs})
	assert.ErrorIs(t, err, ErrBadPreferences)

	_, err = sessions.UpdateProfile("user_missing", models.UserUpdate{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSeedDemoUsersIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedDemoUsers(db))
	require.NoError(t, SeedDemoUsers(db))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(5), users)

	var posts int64
	db.Model(&models.CommunityPost{}).Count(&posts)
	assert.Equal(t, int64(2), posts)

	var sarah models.User
	require.NoError(t, db.First(&sarah, "id = ?", "user_sarah").Error)
	assert.Equal(t, "sarah_guitarist", sarah.Username)
	assert.Equal(t, models.LevelIntermediate, sarah.Level)
}

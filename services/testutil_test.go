package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"guitar-learning-system/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test so parallel tests stay isolated
	// while all connections in the pool see the same schema.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.User{},
		&models.Profile{},
		&models.Session{},
		&models.PointsActivity{},
		&models.ContentProgress{},
		&models.FriendRequest{},
		&models.Friend{},
		&models.Chat{},
		&models.ChatMessage{},
		&models.CommunityPost{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestSession wires a session service over a fresh test database.
func newTestSession(t *testing.T) (*SessionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewSessionService(db, "test-secret"), db
}

// signUpTestUser registers a user and returns it.
func signUpTestUser(t *testing.T, sessions *SessionService, name, email string, level models.Level) *models.User {
	t.Helper()
	result, err := sessions.SignUp(SignUpInput{
		Name:             name,
		Email:            email,
		Password:         "password123",
		Level:            level,
		MusicPreferences: []string{"rock", "blues", "jazz"},
	})
	if err != nil {
		t.Fatalf("sign up %s: %v", name, err)
	}
	return result.User
}

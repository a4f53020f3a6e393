package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"guitar-learning-system/models"
	"guitar-learning-system/services"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))

	presence := services.NewPresenceService(nil)
	sessionService := services.NewSessionService(db, testSecret)
	progressionService := services.NewProgressionService(db)
	contentService := services.NewContentService(db)
	socialService := services.NewSocialService(db, presence)

	app := fiber.New()
	SetupAuthRoutes(app, sessionService, testSecret)
	SetupUserRoutes(app, sessionService, progressionService, contentService, testSecret)
	SetupSocialRoutes(app, sessionService, socialService, testSecret)
	SetupRealtimeRoutes(app, services.NewRelayHub(presence), testSecret)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func signUpViaAPI(t *testing.T, app *fiber.App, name, email string) (userID, token string) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/signup", "", fiber.Map{
		"name":             name,
		"email":            email,
		"password":         "password123",
		"level":            "beginner",
		"musicPreferences": []string{"rock", "blues", "jazz"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		User   models.User `json:"user"`
		Tokens struct {
			AccessToken string `json:"accessToken"`
		} `json:"tokens"`
	}
	decodeBody(t, resp, &body)
	return body.User.ID, body.Tokens.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "GET", "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSignUpSignInFlow(t *testing.T) {
	app, _ := newTestApp(t)
	userID, token := signUpViaAPI(t, app, "Flow Player", "flow@example.com")
	require.NotEmpty(t, userID)
	require.NotEmpty(t, token)

	// Duplicate email is rejected.
	resp := doJSON(t, app, "POST", "/signup", "", fiber.Map{
		"name":             "Other",
		"email":            "flow@example.com",
		"password":         "password123",
		"level":            "novice",
		"musicPreferences": []string{"rock", "blues", "jazz"},
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/signin", "", fiber.Map{
		"email":    "flow@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/signin", "", fiber.Map{
		"email":    "flow@example.com",
		"password": "nope",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSignUpValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/signup", "", fiber.Map{
		"name":             "Bad Prefs",
		"email":            "bad@example.com",
		"password":         "password123",
		"level":            "beginner",
		"musicPreferences": []string{"rock"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)
	userID, token := signUpViaAPI(t, app, "Secure Player", "secure@example.com")

	resp := doJSON(t, app, "GET", "/user/"+userID, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/user/"+userID, "bogus-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/user/"+userID, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSignOutRevokesToken(t *testing.T) {
	app, _ := newTestApp(t)
	userID, token := signUpViaAPI(t, app, "Out Player", "out@example.com")

	resp := doJSON(t, app, "POST", "/signout", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/user/"+userID, token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCannotActOnAnotherUser(t *testing.T) {
	app, _ := newTestApp(t)
	_, aliceToken := signUpViaAPI(t, app, "Alice", "alice@example.com")
	bobID, _ := signUpViaAPI(t, app, "Bob", "bob@example.com")

	resp := doJSON(t, app, "PUT", "/user/"+bobID, aliceToken, fiber.Map{"name": "Hacked"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/user/"+bobID+"/points", aliceToken, fiber.Map{
		"type": "practice", "points": 9999,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAwardPointsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	userID, token := signUpViaAPI(t, app, "Points Player", "points@example.com")

	resp := doJSON(t, app, "POST", "/user/"+userID+"/points", token, fiber.Map{
		"type":        "practice",
		"points":      13,
		"description": "Morning practice",
		"difficulty":  2,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Activity models.PointsActivity `json:"activity"`
		User     models.User           `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 13, body.Activity.Points)
	assert.Equal(t, 13, body.User.TotalPoints)
	assert.Equal(t, 13, body.User.WeeklyPoints)

	resp = doJSON(t, app, "GET", "/user/"+userID+"/activities", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var activities []models.PointsActivity
	decodeBody(t, resp, &activities)
	assert.Len(t, activities, 1)
}

func TestContentEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	_, token := signUpViaAPI(t, app, "Content Player", "content@example.com")

	resp := doJSON(t, app, "GET", "/content/songs", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var songs []map[string]interface{}
	decodeBody(t, resp, &songs)
	assert.NotEmpty(t, songs)

	resp = doJSON(t, app, "GET", "/content/podcasts", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/content/songs/progress", token, fiber.Map{
		"itemKey":  "Wonderwall",
		"progress": 55,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestFriendAndPostEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	_, aliceToken := signUpViaAPI(t, app, "Alice", "alice@example.com")
	_, bobToken := signUpViaAPI(t, app, "Bob", "bob@example.com")

	// Alice finds Bob and sends a request.
	resp := doJSON(t, app, "GET", "/users/search?q=bob", aliceToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var found []models.User
	decodeBody(t, resp, &found)
	require.Len(t, found, 1)

	resp = doJSON(t, app, "POST", "/friends/requests", aliceToken, fiber.Map{
		"username": found[0].Username,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var req models.FriendRequest
	decodeBody(t, resp, &req)

	// Bob accepts; both sides now list each other.
	resp = doJSON(t, app, "POST", "/friends/requests/"+req.ID+"/accept", bobToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/friends", aliceToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var friends []models.User
	decodeBody(t, resp, &friends)
	assert.Len(t, friends, 1)

	// Accepting again conflicts.
	resp = doJSON(t, app, "POST", "/friends/requests/"+req.ID+"/accept", bobToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// A post and a like.
	resp = doJSON(t, app, "POST", "/posts", aliceToken, fiber.Map{
		"content": "First jam with a friend!",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var post models.CommunityPost
	decodeBody(t, resp, &post)

	resp = doJSON(t, app, "POST", "/posts/"+post.ID+"/like", bobToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var liked models.CommunityPost
	decodeBody(t, resp, &liked)
	assert.Equal(t, 1, liked.Likes)
}

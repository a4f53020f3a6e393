package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guitar-learning-system/content"
	"guitar-learning-system/models"
)

func TestFilteredSongsMatchPreferences(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewContentService(db)
	user := signUpTestUser(t, sessions, "Song Player", "songs@example.com", models.LevelBeginner)

	songs := svc.FilteredSongs(user.ID)
	require.NotEmpty(t, songs)

	// signUpTestUser picks rock/blues/jazz
	allowed := map[string]bool{"rock": true, "blues": true, "jazz": true}
	for _, s := range songs {
		assert.True(t, allowed[s.Genre], "unexpected genre %q for %q", s.Genre, s.Title)
	}
}

func TestFilteredSongsNoDuplicateTitles(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewContentService(db)

	for _, level := range models.LevelOrder {
		user := signUpTestUser(t, sessions, "P "+string(level), string(level)+"@example.com", level)
		seen := map[string]bool{}
		for _, s := range svc.FilteredSongs(user.ID) {
			assert.False(t, seen[s.Title], "duplicate title %q at level %s", s.Title, level)
			seen[s.Title] = true
		}
	}
}

func TestFilteredSongsStableOrder(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewContentService(db)
	user := signUpTestUser(t, sessions, "Stable Player", "stable@example.com", models.LevelBeginner)

	first := svc.FilteredSongs(user.ID)
	second := svc.FilteredSongs(user.ID)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
	}
}

func TestFilteredContentUnknownUserEmpty(t *testing.T) {
	svc := NewContentService(newTestDB(t))
	assert.Empty(t, svc.FilteredSongs("user_ghost"))
	assert.Empty(t, svc.FilteredTechniques("user_ghost"))
	assert.Empty(t, svc.FilteredTheory("user_ghost"))
	assert.Empty(t, svc.FilteredCompetitions("user_ghost"))
}

func TestFilteredTechniquesAndTheory(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewContentService(db)
	user := signUpTestUser(t, sessions, "Tech Player", "tech@example.com", models.LevelIntermediate)

	techniques := svc.FilteredTechniques(user.ID)
	require.NotEmpty(t, techniques)
	seen := map[string]bool{}
	for _, tq := range techniques {
		assert.False(t, seen[tq.Name], "duplicate technique %q", tq.Name)
		seen[tq.Name] = true
	}

	theory := svc.FilteredTheory(user.ID)
	require.NotEmpty(t, theory)

	comps := svc.FilteredCompetitions(user.ID)
	require.NotEmpty(t, comps)
}

func TestSetItemProgress(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewContentService(db)
	user := signUpTestUser(t, sessions, "Prog Player", "prog@example.com", models.LevelBeginner)

	songs := svc.FilteredSongs(user.ID)
	require.NotEmpty(t, songs)
	title := songs[0].Title
	assert.Zero(t, songs[0].Progress)

	require.NoError(t, svc.SetItemProgress(user.ID, content.KindSongs, title, 40))

	// Reading never changes progress; only the mutation does.
	for i := 0; i < 3; i++ {
		songs = svc.FilteredSongs(user.ID)
		assert.Equal(t, 40, songs[0].Progress)
	}

	// Updates overwrite in place.
	require.NoError(t, svc.SetItemProgress(user.ID, content.KindSongs, title, 85))
	songs = svc.FilteredSongs(user.ID)
	assert.Equal(t, 85, songs[0].Progress)

	var count int64
	db.Model(&models.ContentProgress{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSetItemProgressClampsAndValidates(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewContentService(db)
	user := signUpTestUser(t, sessions, "Clamp Player", "clamp@example.com", models.LevelBeginner)

	require.NoError(t, svc.SetItemProgress(user.ID, content.KindSongs, "Wonderwall", 150))
	var record models.ContentProgress
	require.NoError(t, db.First(&record, "item_key = ?", "Wonderwall").Error)
	assert.Equal(t, 100, record.Progress)

	require.NoError(t, svc.SetItemProgress(user.ID, content.KindSongs, "Wonderwall", -5))
	require.NoError(t, db.First(&record, "item_key = ?", "Wonderwall").Error)
	assert.Zero(t, record.Progress)

	err := svc.SetItemProgress(user.ID, content.Kind("podcasts"), "x", 10)
	assert.ErrorIs(t, err, ErrUnknownContentKind)
}

func TestProgressIsolatedPerKind(t *testing.T) {
	sessions, db := newTestSession(t)
	svc := NewContentService(db)
	user := signUpTestUser(t, sessions, "Iso Player", "iso@example.com", models.LevelBeginner)

	require.NoError(t, svc.SetItemProgress(user.ID, content.KindSongs, "Shared Name", 30))
	require.NoError(t, svc.SetItemProgress(user.ID, content.KindTechniques, "Shared Name", 70))

	var records []models.ContentProgress
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&records).Error)
	assert.Len(t, records, 2)
}

func TestMusicThemeCatalog(t *testing.T) {
	assert.Len(t, content.MusicThemes, 12)
	assert.True(t, content.ValidTheme("rock"))
	assert.True(t, content.ValidTheme("world"))
	assert.False(t, content.ValidTheme("Rock"))
	assert.False(t, content.ValidTheme("polka"))
}

func TestCatalogCoversEveryLevel(t *testing.T) {
	for _, level := range models.LevelOrder {
		assert.NotNil(t, content.SongsForLevel(level), "songs at %s", level)
		assert.NotNil(t, content.TechniquesForLevel(level), "techniques at %s", level)
		assert.NotNil(t, content.TheoryForLevel(level), "theory at %s", level)
		assert.NotEmpty(t, content.CompetitionsForLevel(level), "competitions at %s", level)
	}
}

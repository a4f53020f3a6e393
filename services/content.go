package services

import (
	"errors"
	"log"
	"sort"

	"guitar-learning-system/content"
	"guitar-learning-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentService answers personalized catalog queries for one user: items for
// their level, songs narrowed to their three preferred genres, deduplicated,
// and annotated with the stored per-item progress.
type ContentService struct {
	DB *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

// AnnotatedSong is a catalog song plus the user's stored progress.
type AnnotatedSong struct {
	content.Song
	Progress int `json:"progress"`
}

type AnnotatedTechnique struct {
	content.Technique
	Progress int `json:"progress"`
}

type AnnotatedTheoryTopic struct {
	content.TheoryTopic
	Progress int `json:"progress"`
}

type AnnotatedCompetition struct {
	content.Competition
	Progress int `json:"progress"`
}

// FilteredContent resolves a kind-keyed query. All queries fail soft: an
// unknown user, level without catalog entry, or invalid kind returns an
// empty list, never an error surfaced to the caller.
func (s *ContentService) FilteredContent(userID string, kind content.Kind) interface{} {
	switch kind {
	case content.KindSongs:
		return s.FilteredSongs(userID)
	case content.KindTechniques:
		return s.FilteredTechniques(userID)
	case content.KindTheory:
		return s.FilteredTheory(userID)
	case content.KindCompetitions:
		return s.FilteredCompetitions(userID)
	}
	return []struct{}{}
}

// FilteredSongs returns the user's level catalog narrowed to their music
// preferences, deduplicated by title (first occurrence wins, stable order).
func (s *ContentService) FilteredSongs(userID string) []AnnotatedSong {
	user, ok := s.lookupUser(userID)
	if !ok {
		return []AnnotatedSong{}
	}

	byGenre := content.SongsForLevel(user.Level)
	if byGenre == nil {
		return []AnnotatedSong{}
	}

	progress := s.progressIndex(userID, content.KindSongs)
	out := []AnnotatedSong{}
	seen := map[string]bool{}
	for _, genre := range user.MusicPreferences {
		for _, song := range byGenre[genre] {
			if seen[song.Title] {
				continue
			}
			seen[song.Title] = true
			out = append(out, AnnotatedSong{Song: song, Progress: progress[song.Title]})
		}
	}
	return out
}

// FilteredTechniques flattens every category at the user's level.
func (s *ContentService) FilteredTechniques(userID string) []AnnotatedTechnique {
	user, ok := s.lookupUser(userID)
	if !ok {
		return []AnnotatedTechnique{}
	}

	byCategory := content.TechniquesForLevel(user.Level)
	if byCategory == nil {
		return []AnnotatedTechnique{}
	}

	progress := s.progressIndex(userID, content.KindTechniques)
	out := []AnnotatedTechnique{}
	seen := map[string]bool{}
	for _, category := range orderedKeys(byCategory) {
		for _, t := range byCategory[category] {
			if seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			out = append(out, AnnotatedTechnique{Technique: t, Progress: progress[t.Name]})
		}
	}
	return out
}

// FilteredTheory flattens every category at the user's level.
func (s *ContentService) FilteredTheory(userID string) []AnnotatedTheoryTopic {
	user, ok := s.lookupUser(userID)
	if !ok {
		return []AnnotatedTheoryTopic{}
	}

	byCategory := content.TheoryForLevel(user.Level)
	if byCategory == nil {
		return []AnnotatedTheoryTopic{}
	}

	progress := s.progressIndex(userID, content.KindTheory)
	out := []AnnotatedTheoryTopic{}
	seen := map[string]bool{}
	for _, category := range orderedKeys(byCategory) {
		for _, t := range byCategory[category] {
			if seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			out = append(out, AnnotatedTheoryTopic{TheoryTopic: t, Progress: progress[t.Name]})
		}
	}
	return out
}

// FilteredCompetitions returns the level's list verbatim.
func (s *ContentService) FilteredCompetitions(userID string) []AnnotatedCompetition {
	user, ok := s.lookupUser(userID)
	if !ok {
		return []AnnotatedCompetition{}
	}

	comps := content.CompetitionsForLevel(user.Level)
	progress := s.progressIndex(userID, content.KindCompetitions)
	out := []AnnotatedCompetition{}
	for _, c := range comps {
		out = append(out, AnnotatedCompetition{Competition: c, Progress: progress[c.Name]})
	}
	return out
}

// SetItemProgress records the user's progress (0..100) on one catalog item.
// Progress is deterministic per user and item: repeating a query never
// changes it, only this mutation does.
func (s *ContentService) SetItemProgress(userID string, kind content.Kind, itemKey string, progress int) error {
	if !kind.Valid() {
		return ErrUnknownContentKind
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	var record models.ContentProgress
	err := s.DB.Where("user_id = ? AND kind = ? AND item_key = ?", userID, string(kind), itemKey).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.ContentProgress{
			ID:       uuid.NewString(),
			UserID:   userID,
			Kind:     string(kind),
			ItemKey:  itemKey,
			Progress: progress,
		}
		return s.DB.Create(&record).Error
	}
	if err != nil {
		return err
	}
	record.Progress = progress
	return s.DB.Save(&record).Error
}

func (s *ContentService) lookupUser(userID string) (*models.User, bool) {
	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[content] user lookup failed: %v", err)
		}
		return nil, false
	}
	return &user, true
}

// orderedKeys gives a stable category iteration order for flattened lists.
func orderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *ContentService) progressIndex(userID string, kind content.Kind) map[string]int {
	idx := map[string]int{}
	var records []models.ContentProgress
	if err := s.DB.Where("user_id = ? AND kind = ?", userID, string(kind)).Find(&records).Error; err != nil {
		log.Printf("[content] progress lookup failed: %v", err)
		return idx
	}
	for _, r := range records {
		idx[r.ItemKey] = r.Progress
	}
	return idx
}

// Package content holds the immutable learning-content catalog: songs,
// techniques, theory topics and competitions keyed by level and genre/category.
package content

import "guitar-learning-system/models"

// Kind selects one of the four catalog tables.
type Kind string

const (
	KindSongs        Kind = "songs"
	KindTechniques   Kind = "techniques"
	KindTheory       Kind = "theory"
	KindCompetitions Kind = "competitions"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSongs, KindTechniques, KindTheory, KindCompetitions:
		return true
	}
	return false
}

// Song is one learnable song entry.
type Song struct {
	Title        string   `json:"title"`
	Artist       string   `json:"artist"`
	Difficulty   int      `json:"difficulty"`
	Chords       []string `json:"chords"`
	Genre        string   `json:"genre"`
	Duration     string   `json:"duration"`
	BPM          int      `json:"bpm"`
	LearningTime string   `json:"learningTime"`
}

// Technique is one playable technique entry.
type Technique struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Difficulty   int    `json:"difficulty"`
	Description  string `json:"description"`
	PracticeTime string `json:"practiceTime"`
	MasteryTime  string `json:"masteryTime"`
}

// TheoryTopic is one music-theory study entry.
type TheoryTopic struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Difficulty  int    `json:"difficulty"`
	Description string `json:"description"`
	StudyTime   string `json:"studyTime"`
	MasteryTime string `json:"masteryTime"`
}

// Competition is one challenge entry.
type Competition struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Difficulty  int    `json:"difficulty"`
	Description string `json:"description"`
	TimeLimit   int    `json:"timeLimit"` // seconds
	MinScore    int    `json:"minScore"`
}

// MusicTheme is one selectable style preference.
type MusicTheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MusicThemes is the fixed catalog of styles users pick exactly 3 of at signup.
var MusicThemes = []MusicTheme{
	{ID: "rock", Name: "Rock", Description: "Classic and modern rock music"},
	{ID: "pop", Name: "Pop", Description: "Popular contemporary music"},
	{ID: "classical", Name: "Classical", Description: "Classical and orchestral pieces"},
	{ID: "folk", Name: "Folk", Description: "Traditional and folk songs"},
	{ID: "blues", Name: "Blues", Description: "Blues and soul music"},
	{ID: "jazz", Name: "Jazz", Description: "Jazz standards and improvisation"},
	{ID: "country", Name: "Country", Description: "Country and western music"},
	{ID: "reggae", Name: "Reggae", Description: "Reggae and ska music"},
	{ID: "metal", Name: "Metal", Description: "Heavy metal and progressive rock"},
	{ID: "indie", Name: "Indie", Description: "Independent and alternative music"},
	{ID: "latin", Name: "Latin", Description: "Latin American rhythms"},
	{ID: "world", Name: "World Music", Description: "Global and ethnic music"},
}

// ValidTheme reports whether id names a known music theme.
func ValidTheme(id string) bool {
	for _, t := range MusicThemes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// SongsForLevel returns the genre→songs table for a level, or nil.
func SongsForLevel(level models.Level) map[string][]Song {
	return Songs[level]
}

// TechniquesForLevel returns the category→techniques table for a level, or nil.
func TechniquesForLevel(level models.Level) map[string][]Technique {
	return Techniques[level]
}

// TheoryForLevel returns the category→topics table for a level, or nil.
func TheoryForLevel(level models.Level) map[string][]TheoryTopic {
	return Theory[level]
}

// CompetitionsForLevel returns the competitions list for a level, or nil.
func CompetitionsForLevel(level models.Level) []Competition {
	return Competitions[level]
}

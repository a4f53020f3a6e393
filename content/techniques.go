package content

import "guitar-learning-system/models"

// Techniques maps level → category → technique list.
var Techniques = map[models.Level]map[string][]Technique{
	models.LevelNovice: {
		"foundation": {
			{Name: "Proper Posture", Category: "Foundation", Difficulty: 1, Description: "Learn correct sitting and standing positions", PracticeTime: "5 min daily", MasteryTime: "1 week"},
			{Name: "Hand Positioning", Category: "Foundation", Difficulty: 1, Description: "Proper fretting and picking hand placement", PracticeTime: "10 min daily", MasteryTime: "1 week"},
			{Name: "String Names", Category: "Foundation", Difficulty: 1, Description: "Memorize E-A-D-G-B-E", PracticeTime: "5 min daily", MasteryTime: "3 days"},
			{Name: "Fret Numbers", Category: "Foundation", Difficulty: 1, Description: "Understanding fret numbering system", PracticeTime: "5 min daily", MasteryTime: "3 days"},
		},
		"picking": {
			{Name: "Single Note Picking", Category: "Picking", Difficulty: 1, Description: "Clean individual string picking", PracticeTime: "10 min daily", MasteryTime: "1 week"},
			{Name: "Downstrokes Only", Category: "Picking", Difficulty: 1, Description: "Basic downstroke rhythm", PracticeTime: "10 min daily", MasteryTime: "5 days"},
		},
		"chords": {
			{Name: "Open E Major", Category: "Chords", Difficulty: 1, Description: "First chord - E major", PracticeTime: "15 min daily", MasteryTime: "3 days"},
			{Name: "Open A Major", Category: "Chords", Difficulty: 1, Description: "Second chord - A major", PracticeTime: "15 min daily", MasteryTime: "4 days"},
			{Name: "Open D Major", Category: "Chords", Difficulty: 1, Description: "Third chord - D major", PracticeTime: "15 min daily", MasteryTime: "5 days"},
		},
	},
	models.LevelBeginner: {
		"chords": {
			{Name: "Major Chord Family", Category: "Chords", Difficulty: 2, Description: "C, D, E, G, A major chords", PracticeTime: "20 min daily", MasteryTime: "2 weeks"},
			{Name: "Minor Chord Family", Category: "Chords", Difficulty: 2, Description: "Am, Dm, Em minor chords", PracticeTime: "20 min daily", MasteryTime: "2 weeks"},
			{Name: "Chord Transitions", Category: "Chords", Difficulty: 2, Description: "Smooth changes between chords", PracticeTime: "15 min daily", MasteryTime: "3 weeks"},
			{Name: "Barre Chord Preparation", Category: "Chords", Difficulty: 2, Description: "Building finger strength for barres", PracticeTime: "10 min daily", MasteryTime: "4 weeks"},
		},
		"strumming": {
			{Name: "Down-Up Strumming", Category: "Rhythm", Difficulty: 2, Description: "Basic down-up pattern", PracticeTime: "15 min daily", MasteryTime: "1 week"},
			{Name: "Quarter Note Rhythm", Category: "Rhythm", Difficulty: 2, Description: "Steady quarter note strumming", PracticeTime: "10 min daily", MasteryTime: "5 days"},
			{Name: "Eighth Note Rhythm", Category: "Rhythm", Difficulty: 2, Description: "Basic eighth note patterns", PracticeTime: "15 min daily", MasteryTime: "2 weeks"},
		},
		"picking": {
			{Name: "Alternate Picking", Category: "Picking", Difficulty: 2, Description: "Down-up picking technique", PracticeTime: "15 min daily", MasteryTime: "3 weeks"},
			{Name: "Single String Scales", Category: "Picking", Difficulty: 2, Description: "Scale practice on one string", PracticeTime: "10 min daily", MasteryTime: "2 weeks"},
		},
	},
	models.LevelElementary: {
		"chords": {
			{Name: "F Major Barre", Category: "Chords", Difficulty: 3, Description: "First barre chord", PracticeTime: "25 min daily", MasteryTime: "4 weeks"},
			{Name: "B Minor Barre", Category: "Chords", Difficulty: 3, Description: "Minor barre chord", PracticeTime: "25 min daily", MasteryTime: "3 weeks"},
			{Name: "Seventh Chords", Category: "Chords", Difficulty: 3, Description: "G7, C7, D7, E7", PracticeTime: "20 min daily", MasteryTime: "3 weeks"},
			{Name: "Sus Chords", Category: "Chords", Difficulty: 3, Description: "sus2 and sus4 variations", PracticeTime: "15 min daily", MasteryTime: "2 weeks"},
		},
		"scales": {
			{Name: "Pentatonic Minor", Category: "Scales", Difficulty: 3, Description: "Box 1 pentatonic pattern", PracticeTime: "20 min daily", MasteryTime: "3 weeks"},
			{Name: "Major Scale (1 Position)", Category: "Scales", Difficulty: 3, Description: "Basic major scale pattern", PracticeTime: "15 min daily", MasteryTime: "4 weeks"},
		},
		"techniques": {
			{Name: "Palm Muting", Category: "Techniques", Difficulty: 3, Description: "Muted strumming technique", PracticeTime: "15 min daily", MasteryTime: "2 weeks"},
			{Name: "Basic Fingerpicking", Category: "Techniques", Difficulty: 3, Description: "P-i-m-a finger assignments", PracticeTime: "20 min daily", MasteryTime: "4 weeks"},
		},
	},
	models.LevelIntermediate: {
		"chords": {
			{Name: "Extended Chords", Category: "Chords", Difficulty: 4, Description: "maj7, min7, dom7 variations", PracticeTime: "25 min daily", MasteryTime: "4 weeks"},
			{Name: "Moveable Barre Shapes", Category: "Chords", Difficulty: 4, Description: "Major and minor barre patterns", PracticeTime: "30 min daily", MasteryTime: "6 weeks"},
			{Name: "Slash Chords", Category: "Chords", Difficulty: 4, Description: "Chords with bass notes", PracticeTime: "20 min daily", MasteryTime: "3 weeks"},
		},
		"scales": {
			{Name: "Complete Pentatonic", Category: "Scales", Difficulty: 4, Description: "All 5 pentatonic positions", PracticeTime: "30 min daily", MasteryTime: "8 weeks"},
			{Name: "Major Scale (CAGED)", Category: "Scales", Difficulty: 4, Description: "5 major scale positions", PracticeTime: "35 min daily", MasteryTime: "10 weeks"},
			{Name: "Natural Minor Scale", Category: "Scales", Difficulty: 4, Description: "Minor scale patterns", PracticeTime: "25 min daily", MasteryTime: "6 weeks"},
		},
		"techniques": {
			{Name: "Travis Picking", Category: "Fingerpicking", Difficulty: 4, Description: "Alternating bass fingerpicking", PracticeTime: "25 min daily", MasteryTime: "6 weeks"},
			{Name: "Hammer-ons and Pull-offs", Category: "Techniques", Difficulty: 4, Description: "Legato techniques", PracticeTime: "20 min daily", MasteryTime: "4 weeks"},
			{Name: "Basic Bending", Category: "Techniques", Difficulty: 4, Description: "Half and whole step bends", PracticeTime: "15 min daily", MasteryTime: "3 weeks"},
		},
	},
	models.LevelProficient: {
		"chords": {
			{Name: "Jazz Chord Voicings", Category: "Chords", Difficulty: 5, Description: "Drop 2 and drop 3 voicings", PracticeTime: "30 min daily", MasteryTime: "8 weeks"},
			{Name: "Altered Dominants", Category: "Chords", Difficulty: 5, Description: "b5, #5, b9, #9 alterations", PracticeTime: "25 min daily", MasteryTime: "6 weeks"},
			{Name: "Quartal Harmony", Category: "Chords", Difficulty: 5, Description: "Fourth-based chord structures", PracticeTime: "20 min daily", MasteryTime: "4 weeks"},
		},
		"scales": {
			{Name: "Modes of Major Scale", Category: "Scales", Difficulty: 5, Description: "Ionian through Locrian", PracticeTime: "40 min daily", MasteryTime: "12 weeks"},
			{Name: "Harmonic Minor", Category: "Scales", Difficulty: 5, Description: "Harmonic minor and its modes", PracticeTime: "30 min daily", MasteryTime: "8 weeks"},
			{Name: "Diminished Scales", Category: "Scales", Difficulty: 5, Description: "Half-whole and whole-half", PracticeTime: "25 min daily", MasteryTime: "6 weeks"},
		},
		"techniques": {
			{Name: "Advanced Fingerpicking", Category: "Fingerpicking", Difficulty: 5, Description: "Complex arpeggiated patterns", PracticeTime: "35 min daily", MasteryTime: "10 weeks"},
			{Name: "Artificial Harmonics", Category: "Techniques", Difficulty: 5, Description: "Pinch and tap harmonics", PracticeTime: "20 min daily", MasteryTime: "6 weeks"},
			{Name: "Advanced Bending", Category: "Techniques", Difficulty: 5, Description: "Pre-bends, release bends", PracticeTime: "25 min daily", MasteryTime: "4 weeks"},
		},
	},
	models.LevelAdvanced: {
		"techniques": {
			{Name: "Sweep Picking", Category: "Advanced", Difficulty: 6, Description: "Arpeggiated sweep technique", PracticeTime: "45 min daily", MasteryTime: "16 weeks"},
			{Name: "Tapping", Category: "Advanced", Difficulty: 6, Description: "Two-handed tapping", PracticeTime: "30 min daily", MasteryTime: "12 weeks"},
			{Name: "Economy Picking", Category: "Advanced", Difficulty: 6, Description: "Efficient picking technique", PracticeTime: "40 min daily", MasteryTime: "10 weeks"},
			{Name: "String Skipping", Category: "Advanced", Difficulty: 6, Description: "Non-adjacent string technique", PracticeTime: "25 min daily", MasteryTime: "8 weeks"},
		},
		"scales": {
			{Name: "Exotic Scales", Category: "Scales", Difficulty: 6, Description: "Hungarian, Byzantine, etc.", PracticeTime: "35 min daily", MasteryTime: "12 weeks"},
			{Name: "Bebop Scales", Category: "Scales", Difficulty: 6, Description: "Jazz bebop variations", PracticeTime: "30 min daily", MasteryTime: "8 weeks"},
		},
		"classical": {
			{Name: "Classical Tremolo", Category: "Classical", Difficulty: 6, Description: "p-a-m-i tremolo technique", PracticeTime: "30 min daily", MasteryTime: "20 weeks"},
			{Name: "Rasgueado", Category: "Classical", Difficulty: 6, Description: "Flamenco strumming technique", PracticeTime: "25 min daily", MasteryTime: "12 weeks"},
		},
	},
	models.LevelExpert: {
		"techniques": {
			{Name: "Advanced Tremolo", Category: "Master", Difficulty: 7, Description: "Rapid alternation classical technique", PracticeTime: "60 min daily", MasteryTime: "6 months"},
			{Name: "Polyphonic Playing", Category: "Master", Difficulty: 7, Description: "Multiple independent voices", PracticeTime: "45 min daily", MasteryTime: "8 months"},
			{Name: "Extended Techniques", Category: "Master", Difficulty: 7, Description: "Harmonics, rasgueado, and more", PracticeTime: "40 min daily", MasteryTime: "1 year"},
			{Name: "Eight-Finger Tapping", Category: "Master", Difficulty: 7, Description: "Advanced two-handed tapping", PracticeTime: "50 min daily", MasteryTime: "1 year"},
		},
		"classical": {
			{Name: "Chord Melody", Category: "Master", Difficulty: 7, Description: "Melody and harmony simultaneously", PracticeTime: "60 min daily", MasteryTime: "1 year"},
			{Name: "Advanced Comping", Category: "Master", Difficulty: 7, Description: "Complex jazz accompaniment", PracticeTime: "45 min daily", MasteryTime: "8 months"},
		},
		"metal": {
			{Name: "Sweep Picking Mastery", Category: "Master", Difficulty: 7, Description: "Advanced sweep picking patterns", PracticeTime: "45 min daily", MasteryTime: "1 year"},
			{Name: "Extreme Alternate Picking", Category: "Master", Difficulty: 7, Description: "High-speed precision picking", PracticeTime: "60 min daily", MasteryTime: "2 years"},
		},
	},
}

package content

import "guitar-learning-system/models"

// Theory maps level → category → topic list.
var Theory = map[models.Level]map[string][]TheoryTopic{
	models.LevelNovice: {
		"basics": {
			{Name: "Guitar Anatomy", Category: "Basics", Difficulty: 1, Description: "Parts of the guitar", StudyTime: "30 min", MasteryTime: "1 day"},
			{Name: "String Names", Category: "Basics", Difficulty: 1, Description: "Learn the six string names", StudyTime: "15 min", MasteryTime: "1 day"},
			{Name: "Fret Numbers", Category: "Basics", Difficulty: 1, Description: "Understanding fret positions", StudyTime: "20 min", MasteryTime: "2 days"},
			{Name: "Tablature Reading", Category: "Basics", Difficulty: 1, Description: "How to read guitar tabs", StudyTime: "45 min", MasteryTime: "3 days"},
		},
		"rhythm": {
			{Name: "Beat and Tempo", Category: "Rhythm", Difficulty: 1, Description: "Understanding musical time", StudyTime: "30 min", MasteryTime: "2 days"},
			{Name: "Counting Time", Category: "Rhythm", Difficulty: 1, Description: "1-2-3-4 counting", StudyTime: "20 min", MasteryTime: "1 day"},
		},
	},
	models.LevelBeginner: {
		"chords": {
			{Name: "Major vs Minor", Category: "Chords", Difficulty: 2, Description: "Understanding chord quality", StudyTime: "45 min", MasteryTime: "3 days"},
			{Name: "Chord Symbols", Category: "Chords", Difficulty: 2, Description: "Reading chord charts", StudyTime: "30 min", MasteryTime: "2 days"},
			{Name: "Triad Construction", Category: "Chords", Difficulty: 2, Description: "How chords are built", StudyTime: "60 min", MasteryTime: "1 week"},
		},
		"scales": {
			{Name: "Major Scale", Category: "Scales", Difficulty: 2, Description: "The foundation scale", StudyTime: "90 min", MasteryTime: "2 weeks"},
			{Name: "Scale Degrees", Category: "Scales", Difficulty: 2, Description: "1-2-3-4-5-6-7-8 system", StudyTime: "45 min", MasteryTime: "1 week"},
		},
		"intervals": {
			{Name: "Basic Intervals", Category: "Intervals", Difficulty: 2, Description: "Unison to octave", StudyTime: "75 min", MasteryTime: "1 week"},
			{Name: "Half Steps and Whole Steps", Category: "Intervals", Difficulty: 2, Description: "Building blocks of music", StudyTime: "30 min", MasteryTime: "3 days"},
		},
	},
	models.LevelElementary: {
		"keys": {
			{Name: "Key Signatures", Category: "Keys", Difficulty: 3, Description: "Major key signatures", StudyTime: "90 min", MasteryTime: "2 weeks"},
			{Name: "Relative Minor", Category: "Keys", Difficulty: 3, Description: "Major-minor relationships", StudyTime: "60 min", MasteryTime: "1 week"},
		},
		"progressions": {
			{Name: "I-IV-V Progression", Category: "Progressions", Difficulty: 3, Description: "Most common progression", StudyTime: "75 min", MasteryTime: "1 week"},
			{Name: "vi-IV-I-V Progression", Category: "Progressions", Difficulty: 3, Description: "Pop progression", StudyTime: "60 min", MasteryTime: "1 week"},
		},
		"scales": {
			{Name: "Natural Minor Scale", Category: "Scales", Difficulty: 3, Description: "Minor scale construction", StudyTime: "90 min", MasteryTime: "2 weeks"},
			{Name: "Pentatonic Scales", Category: "Scales", Difficulty: 3, Description: "5-note scales", StudyTime: "75 min", MasteryTime: "1 week"},
		},
	},
	models.LevelIntermediate: {
		"harmony": {
			{Name: "Diatonic Harmony", Category: "Harmony", Difficulty: 4, Description: "Chords in major keys", StudyTime: "120 min", MasteryTime: "3 weeks"},
			{Name: "Secondary Dominants", Category: "Harmony", Difficulty: 4, Description: "V/V, V/vi, etc.", StudyTime: "90 min", MasteryTime: "2 weeks"},
			{Name: "Borrowed Chords", Category: "Harmony", Difficulty: 4, Description: "Modal interchange", StudyTime: "105 min", MasteryTime: "3 weeks"},
		},
		"modes": {
			{Name: "Church Modes", Category: "Modes", Difficulty: 4, Description: "Dorian, Phrygian, etc.", StudyTime: "150 min", MasteryTime: "4 weeks"},
			{Name: "Modal Harmony", Category: "Modes", Difficulty: 4, Description: "Using modes harmonically", StudyTime: "120 min", MasteryTime: "3 weeks"},
		},
		"progressions": {
			{Name: "Circle of Fifths", Category: "Progressions", Difficulty: 4, Description: "Key relationships", StudyTime: "90 min", MasteryTime: "2 weeks"},
			{Name: "Tritone Substitution", Category: "Progressions", Difficulty: 4, Description: "Jazz substitution", StudyTime: "75 min", MasteryTime: "2 weeks"},
		},
	},
	models.LevelProficient: {
		"jazz": {
			{Name: "Jazz Chord Symbols", Category: "Jazz", Difficulty: 5, Description: "Extended chord notation", StudyTime: "120 min", MasteryTime: "3 weeks"},
			{Name: "ii-V-I Progressions", Category: "Jazz", Difficulty: 5, Description: "Jazz standard progression", StudyTime: "90 min", MasteryTime: "2 weeks"},
			{Name: "Chord Scales", Category: "Jazz", Difficulty: 5, Description: "Scales for chord types", StudyTime: "180 min", MasteryTime: "6 weeks"},
		},
		"advanced_harmony": {
			{Name: "Voice Leading", Category: "Advanced", Difficulty: 5, Description: "Smooth chord connections", StudyTime: "150 min", MasteryTime: "4 weeks"},
			{Name: "Chromatic Harmony", Category: "Advanced", Difficulty: 5, Description: "Non-diatonic progressions", StudyTime: "120 min", MasteryTime: "3 weeks"},
		},
	},
	models.LevelAdvanced: {
		"composition": {
			{Name: "Song Form", Category: "Composition", Difficulty: 6, Description: "AABA, verse-chorus, etc.", StudyTime: "180 min", MasteryTime: "4 weeks"},
			{Name: "Motivic Development", Category: "Composition", Difficulty: 6, Description: "Developing musical ideas", StudyTime: "150 min", MasteryTime: "6 weeks"},
			{Name: "Counterpoint Basics", Category: "Composition", Difficulty: 6, Description: "Independent melodic lines", StudyTime: "240 min", MasteryTime: "8 weeks"},
		},
		"analysis": {
			{Name: "Roman Numeral Analysis", Category: "Analysis", Difficulty: 6, Description: "Harmonic analysis system", StudyTime: "120 min", MasteryTime: "4 weeks"},
			{Name: "Form Analysis", Category: "Analysis", Difficulty: 6, Description: "Analyzing musical structure", StudyTime: "150 min", MasteryTime: "6 weeks"},
		},
	},
	models.LevelExpert: {
		"master_theory": {
			{Name: "Advanced Jazz Harmony", Category: "Master", Difficulty: 7, Description: "Complex jazz chord progressions", StudyTime: "300 min", MasteryTime: "12 weeks"},
			{Name: "Counterpoint", Category: "Master", Difficulty: 7, Description: "Bach-style voice leading", StudyTime: "400 min", MasteryTime: "6 months"},
			{Name: "Modal Interchange", Category: "Master", Difficulty: 7, Description: "Borrowing from parallel modes", StudyTime: "240 min", MasteryTime: "8 weeks"},
			{Name: "Advanced Analysis", Category: "Master", Difficulty: 7, Description: "Deep harmonic analysis", StudyTime: "360 min", MasteryTime: "4 months"},
		},
		"composition": {
			{Name: "Serialism", Category: "Master", Difficulty: 7, Description: "12-tone composition", StudyTime: "480 min", MasteryTime: "1 year"},
			{Name: "Neo-Riemannian Theory", Category: "Master", Difficulty: 7, Description: "Modern harmonic theory", StudyTime: "360 min", MasteryTime: "8 months"},
		},
	},
}

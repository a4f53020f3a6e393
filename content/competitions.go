package content

import "guitar-learning-system/models"

// Competitions maps level → challenge list.
var Competitions = map[models.Level][]Competition{
	models.LevelNovice: {
		{Name: "Chord Speed Challenge", Type: "speed", Difficulty: 1, Description: "Switch between 3 chords in 30 seconds", TimeLimit: 30, MinScore: 15},
		{Name: "String Name Quiz", Type: "knowledge", Difficulty: 1, Description: "Identify string names", TimeLimit: 60, MinScore: 80},
		{Name: "Simple Rhythm Match", Type: "rhythm", Difficulty: 1, Description: "Clap along to basic beats", TimeLimit: 45, MinScore: 70},
	},
	models.LevelBeginner: {
		{Name: "Chord Progression Race", Type: "speed", Difficulty: 2, Description: "Play G-C-D progression cleanly", TimeLimit: 45, MinScore: 20},
		{Name: "Scale Knowledge Test", Type: "knowledge", Difficulty: 2, Description: "Major scale intervals", TimeLimit: 90, MinScore: 75},
		{Name: "Strumming Pattern Challenge", Type: "rhythm", Difficulty: 2, Description: "Down-up strumming accuracy", TimeLimit: 60, MinScore: 80},
	},
	models.LevelElementary: {
		{Name: "Barre Chord Endurance", Type: "endurance", Difficulty: 3, Description: "Hold F major for 2 minutes", TimeLimit: 120, MinScore: 90},
		{Name: "Key Signature Challenge", Type: "knowledge", Difficulty: 3, Description: "Identify major key signatures", TimeLimit: 120, MinScore: 70},
		{Name: "Fingerpicking Accuracy", Type: "technique", Difficulty: 3, Description: "Basic fingerpicking pattern", TimeLimit: 90, MinScore: 75},
	},
	models.LevelIntermediate: {
		{Name: "Scale Speed Test", Type: "speed", Difficulty: 4, Description: "Pentatonic scale at 120 BPM", TimeLimit: 60, MinScore: 85},
		{Name: "Chord Theory Challenge", Type: "knowledge", Difficulty: 4, Description: "Identify chord progressions", TimeLimit: 180, MinScore: 80},
		{Name: "Technique Showcase", Type: "technique", Difficulty: 4, Description: "Demonstrate 5 techniques", TimeLimit: 300, MinScore: 85},
	},
	models.LevelProficient: {
		{Name: "Modal Mastery", Type: "knowledge", Difficulty: 5, Description: "Modes and their applications", TimeLimit: 240, MinScore: 85},
		{Name: "Jazz Comping Test", Type: "technique", Difficulty: 5, Description: "Chord melody playing", TimeLimit: 180, MinScore: 80},
		{Name: "Improvisation Challenge", Type: "creativity", Difficulty: 5, Description: "Solo over changes", TimeLimit: 120, MinScore: 75},
	},
	models.LevelAdvanced: {
		{Name: "Sweep Picking Precision", Type: "technique", Difficulty: 6, Description: "Clean arpeggiated sweeps", TimeLimit: 90, MinScore: 90},
		{Name: "Advanced Theory Test", Type: "knowledge", Difficulty: 6, Description: "Voice leading and analysis", TimeLimit: 300, MinScore: 85},
		{Name: "Speed Demon Challenge", Type: "speed", Difficulty: 6, Description: "16th notes at 160 BPM", TimeLimit: 45, MinScore: 95},
	},
	models.LevelExpert: {
		{Name: "Master's Showcase", Type: "performance", Difficulty: 7, Description: "Perform a complete piece", TimeLimit: 600, MinScore: 95},
		{Name: "Theory Doctorate", Type: "knowledge", Difficulty: 7, Description: "Advanced harmonic analysis", TimeLimit: 480, MinScore: 90},
		{Name: "Technique Perfection", Type: "technique", Difficulty: 7, Description: "Flawless execution test", TimeLimit: 180, MinScore: 98},
	},
}

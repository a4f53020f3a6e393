package content

import "guitar-learning-system/models"

// Songs maps level → genre → song list.
var Songs = map[models.Level]map[string][]Song{
	models.LevelNovice: {
		"rock": {
			{Title: "Smoke on the Water (Riff Only)", Artist: "Deep Purple", Difficulty: 1, Chords: []string{"G", "Bb", "C"}, Genre: "rock", Duration: "2:30", BPM: 112, LearningTime: "1 week"},
			{Title: "Wild Thing", Artist: "The Troggs", Difficulty: 1, Chords: []string{"A", "D", "E"}, Genre: "rock", Duration: "2:45", BPM: 108, LearningTime: "3 days"},
			{Title: "Louie Louie (Simple)", Artist: "The Kingsmen", Difficulty: 1, Chords: []string{"A", "D", "Em"}, Genre: "rock", Duration: "2:20", BPM: 126, LearningTime: "4 days"},
		},
		"pop": {
			{Title: "Happy Birthday", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "F", "G"}, Genre: "pop", Duration: "1:30", BPM: 120, LearningTime: "2 days"},
			{Title: "Twinkle Twinkle Little Star", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "G"}, Genre: "pop", Duration: "1:00", BPM: 120, LearningTime: "1 day"},
			{Title: "Row Row Row Your Boat", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "G7"}, Genre: "pop", Duration: "1:15", BPM: 100, LearningTime: "2 days"},
		},
		"classical": {
			{Title: "Ode to Joy (Simple)", Artist: "Beethoven", Difficulty: 1, Chords: []string{"C", "G", "Am"}, Genre: "classical", Duration: "2:00", BPM: 120, LearningTime: "5 days"},
			{Title: "Mary Had a Little Lamb", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "F", "G"}, Genre: "classical", Duration: "1:30", BPM: 108, LearningTime: "3 days"},
		},
		"folk": {
			{Title: "This Old Man", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "G"}, Genre: "folk", Duration: "2:00", BPM: 110, LearningTime: "3 days"},
			{Title: "Old MacDonald", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "F", "G"}, Genre: "folk", Duration: "2:30", BPM: 120, LearningTime: "4 days"},
			{Title: "Kumbaya", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "F", "G"}, Genre: "folk", Duration: "3:00", BPM: 90, LearningTime: "4 days"},
		},
		"blues": {
			{Title: "Simple 12-Bar Blues", Artist: "Traditional", Difficulty: 1, Chords: []string{"E", "A", "B7"}, Genre: "blues", Duration: "3:00", BPM: 80, LearningTime: "1 week"},
			{Title: "Freight Train", Artist: "Elizabeth Cotten", Difficulty: 1, Chords: []string{"C", "G"}, Genre: "blues", Duration: "2:45", BPM: 100, LearningTime: "5 days"},
		},
		"country": {
			{Title: "Home on the Range", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "F", "G"}, Genre: "country", Duration: "3:00", BPM: 110, LearningTime: "5 days"},
			{Title: "She'll Be Coming Round", Artist: "Traditional", Difficulty: 1, Chords: []string{"C", "G"}, Genre: "country", Duration: "2:30", BPM: 130, LearningTime: "4 days"},
		},
	},
	models.LevelBeginner: {
		"rock": {
			{Title: "Wonderwall", Artist: "Oasis", Difficulty: 2, Chords: []string{"Em", "C", "D", "G"}, Genre: "rock", Duration: "4:18", BPM: 87, LearningTime: "2 weeks"},
			{Title: "Horse with No Name", Artist: "America", Difficulty: 2, Chords: []string{"Em", "D"}, Genre: "rock", Duration: "4:08", BPM: 120, LearningTime: "1 week"},
			{Title: "Bad Moon Rising", Artist: "CCR", Difficulty: 2, Chords: []string{"D", "A", "G"}, Genre: "rock", Duration: "2:20", BPM: 180, LearningTime: "1 week"},
			{Title: "Paperback Writer", Artist: "The Beatles", Difficulty: 2, Chords: []string{"G", "C"}, Genre: "rock", Duration: "2:18", BPM: 132, LearningTime: "1 week"},
		},
		"pop": {
			{Title: "Let It Be", Artist: "The Beatles", Difficulty: 2, Chords: []string{"C", "G", "Am", "F"}, Genre: "pop", Duration: "4:03", BPM: 73, LearningTime: "2 weeks"},
			{Title: "Perfect", Artist: "Ed Sheeran", Difficulty: 2, Chords: []string{"G", "Em", "C", "D"}, Genre: "pop", Duration: "4:23", BPM: 95, LearningTime: "2 weeks"},
			{Title: "Someone Like You", Artist: "Adele", Difficulty: 2, Chords: []string{"G", "D", "Em", "C"}, Genre: "pop", Duration: "4:45", BPM: 67, LearningTime: "2 weeks"},
			{Title: "Hey Jude", Artist: "The Beatles", Difficulty: 2, Chords: []string{"F", "C", "G", "Am"}, Genre: "pop", Duration: "7:11", BPM: 75, LearningTime: "3 weeks"},
		},
		"classical": {
			{Title: "Canon in D (Simple)", Artist: "Pachelbel", Difficulty: 2, Chords: []string{"D", "A", "Bm", "G"}, Genre: "classical", Duration: "5:00", BPM: 50, LearningTime: "3 weeks"},
			{Title: "Minuet in G", Artist: "Bach", Difficulty: 2, Chords: []string{"G", "D", "C"}, Genre: "classical", Duration: "2:30", BPM: 120, LearningTime: "2 weeks"},
			{Title: "Air on G String (Simple)", Artist: "Bach", Difficulty: 2, Chords: []string{"D", "G", "A"}, Genre: "classical", Duration: "3:00", BPM: 60, LearningTime: "2 weeks"},
		},
		"folk": {
			{Title: "Blowin' in the Wind", Artist: "Bob Dylan", Difficulty: 2, Chords: []string{"C", "F", "G"}, Genre: "folk", Duration: "2:48", BPM: 90, LearningTime: "1 week"},
			{Title: "Scarborough Fair", Artist: "Traditional", Difficulty: 2, Chords: []string{"Am", "C", "Dm"}, Genre: "folk", Duration: "3:10", BPM: 100, LearningTime: "2 weeks"},
			{Title: "The Times They Are A-Changin'", Artist: "Bob Dylan", Difficulty: 2, Chords: []string{"G", "Em", "C", "D"}, Genre: "folk", Duration: "3:14", BPM: 120, LearningTime: "2 weeks"},
		},
		"blues": {
			{Title: "House of the Rising Sun", Artist: "The Animals", Difficulty: 2, Chords: []string{"Am", "C", "D", "F"}, Genre: "blues", Duration: "4:29", BPM: 90, LearningTime: "2 weeks"},
			{Title: "Midnight Special", Artist: "Traditional", Difficulty: 2, Chords: []string{"E", "A", "B7"}, Genre: "blues", Duration: "3:30", BPM: 120, LearningTime: "1 week"},
			{Title: "The Thrill Is Gone (Simple)", Artist: "B.B. King", Difficulty: 2, Chords: []string{"Am", "Dm", "E7"}, Genre: "blues", Duration: "5:24", BPM: 60, LearningTime: "2 weeks"},
		},
		"country": {
			{Title: "Take Me Home, Country Roads", Artist: "John Denver", Difficulty: 2, Chords: []string{"G", "Em", "C", "D"}, Genre: "country", Duration: "3:15", BPM: 80, LearningTime: "2 weeks"},
			{Title: "Ring of Fire", Artist: "Johnny Cash", Difficulty: 2, Chords: []string{"G", "C", "D"}, Genre: "country", Duration: "2:38", BPM: 150, LearningTime: "1 week"},
			{Title: "Friends in Low Places", Artist: "Garth Brooks", Difficulty: 2, Chords: []string{"A", "D", "E"}, Genre: "country", Duration: "4:28", BPM: 120, LearningTime: "2 weeks"},
		},
	},
	models.LevelElementary: {
		"rock": {
			{Title: "Zombie", Artist: "The Cranberries", Difficulty: 3, Chords: []string{"Em", "C", "G", "D"}, Genre: "rock", Duration: "5:07", BPM: 84, LearningTime: "3 weeks"},
			{Title: "Creep", Artist: "Radiohead", Difficulty: 3, Chords: []string{"G", "B", "C", "Cm"}, Genre: "rock", Duration: "3:58", BPM: 92, LearningTime: "3 weeks"},
			{Title: "With or Without You", Artist: "U2", Difficulty: 3, Chords: []string{"D", "A", "Bm", "G"}, Genre: "rock", Duration: "4:56", BPM: 110, LearningTime: "3 weeks"},
		},
		"pop": {
			{Title: "Someone You Loved", Artist: "Lewis Capaldi", Difficulty: 3, Chords: []string{"C", "G", "Am", "F"}, Genre: "pop", Duration: "3:02", BPM: 110, LearningTime: "2 weeks"},
			{Title: "All of Me", Artist: "John Legend", Difficulty: 3, Chords: []string{"Em", "C", "G", "D"}, Genre: "pop", Duration: "4:29", BPM: 120, LearningTime: "3 weeks"},
			{Title: "Stay With Me", Artist: "Sam Smith", Difficulty: 3, Chords: []string{"Am", "C", "F"}, Genre: "pop", Duration: "2:52", BPM: 84, LearningTime: "2 weeks"},
		},
		"folk": {
			{Title: "Fast Car", Artist: "Tracy Chapman", Difficulty: 3, Chords: []string{"C", "G", "Em", "D"}, Genre: "folk", Duration: "4:56", BPM: 104, LearningTime: "3 weeks"},
			{Title: "Mad World", Artist: "Gary Jules", Difficulty: 3, Chords: []string{"Em", "G", "D", "C"}, Genre: "folk", Duration: "3:07", BPM: 75, LearningTime: "2 weeks"},
		},
	},
	models.LevelIntermediate: {
		"rock": {
			{Title: "Stairway to Heaven", Artist: "Led Zeppelin", Difficulty: 4, Chords: []string{"Am", "C", "D", "F", "G"}, Genre: "rock", Duration: "8:02", BPM: 82, LearningTime: "4 weeks"},
			{Title: "More Than Words", Artist: "Extreme", Difficulty: 4, Chords: []string{"G", "C", "Am", "D", "Em"}, Genre: "rock", Duration: "5:34", BPM: 91, LearningTime: "4 weeks"},
			{Title: "Blackbird", Artist: "The Beatles", Difficulty: 4, Chords: []string{"G", "Am", "C", "D", "Em"}, Genre: "rock", Duration: "2:18", BPM: 96, LearningTime: "5 weeks"},
		},
		"classical": {
			{Title: "Romance de Amor", Artist: "Anonymous", Difficulty: 4, Chords: []string{"Em", "Am", "B7", "C", "D"}, Genre: "classical", Duration: "3:30", BPM: 60, LearningTime: "6 weeks"},
			{Title: "Lágrima", Artist: "Francisco Tárrega", Difficulty: 4, Chords: []string{"E", "Am", "C", "G"}, Genre: "classical", Duration: "2:45", BPM: 70, LearningTime: "8 weeks"},
		},
		"jazz": {
			{Title: "Autumn Leaves", Artist: "Joseph Kosma", Difficulty: 4, Chords: []string{"Cm", "F7", "BbMaj7", "EbMaj7", "Am7b5", "D7", "Gm"}, Genre: "jazz", Duration: "3:00", BPM: 120, LearningTime: "6 weeks"},
			{Title: "Fly Me to the Moon", Artist: "Frank Sinatra", Difficulty: 4, Chords: []string{"Am", "Dm", "G", "C", "F", "Bm7b5", "E7"}, Genre: "jazz", Duration: "2:30", BPM: 110, LearningTime: "5 weeks"},
		},
	},
	models.LevelProficient: {
		"rock": {
			{Title: "Hotel California", Artist: "Eagles", Difficulty: 5, Chords: []string{"Bm", "F#", "A", "E", "G", "D", "Em"}, Genre: "rock", Duration: "6:30", BPM: 74, LearningTime: "6 weeks"},
			{Title: "Nothing Else Matters", Artist: "Metallica", Difficulty: 5, Chords: []string{"Em", "Am", "C", "D", "G", "B7"}, Genre: "rock", Duration: "6:28", BPM: 72, LearningTime: "8 weeks"},
		},
		"classical": {
			{Title: "Asturias", Artist: "Isaac Albéniz", Difficulty: 5, Chords: []string{"Em", "Am", "B7", "C", "D", "G"}, Genre: "classical", Duration: "6:00", BPM: 120, LearningTime: "12 weeks"},
			{Title: "Recuerdos de la Alhambra", Artist: "Francisco Tárrega", Difficulty: 5, Chords: []string{"Am", "E7", "Dm", "G7", "C"}, Genre: "classical", Duration: "4:20", BPM: 60, LearningTime: "16 weeks"},
		},
		"jazz": {
			{Title: "All The Things You Are", Artist: "Jerome Kern", Difficulty: 5, Chords: []string{"Fm", "Bb7", "EbMaj7", "AbMaj7", "DbMaj7", "G7", "CMaj7"}, Genre: "jazz", Duration: "4:00", BPM: 120, LearningTime: "8 weeks"},
			{Title: "Body and Soul", Artist: "Johnny Green", Difficulty: 5, Chords: []string{"DbMaj7", "Dm7b5", "G7", "CMaj7", "Em7", "A7", "Dm7"}, Genre: "jazz", Duration: "3:30", BPM: 60, LearningTime: "10 weeks"},
		},
	},
	models.LevelAdvanced: {
		"rock": {
			{Title: "Cliffs of Dover", Artist: "Eric Johnson", Difficulty: 6, Chords: []string{"G", "D", "Em", "C", "Am", "F"}, Genre: "rock", Duration: "4:16", BPM: 134, LearningTime: "12 weeks"},
			{Title: "Little Wing", Artist: "Jimi Hendrix", Difficulty: 6, Chords: []string{"Em", "G", "Am", "C", "D", "Bm", "Bb"}, Genre: "rock", Duration: "2:24", BPM: 63, LearningTime: "10 weeks"},
		},
		"classical": {
			{Title: "Concierto de Aranjuez", Artist: "Joaquín Rodrigo", Difficulty: 6, Chords: []string{"Am", "E7", "F", "C", "G", "Dm"}, Genre: "classical", Duration: "11:24", BPM: 60, LearningTime: "6 months"},
			{Title: "Capricho Árabe", Artist: "Francisco Tárrega", Difficulty: 6, Chords: []string{"Dm", "A7", "Gm", "C7", "F", "Bb"}, Genre: "classical", Duration: "5:30", BPM: 80, LearningTime: "4 months"},
		},
		"jazz": {
			{Title: "Giant Steps", Artist: "John Coltrane", Difficulty: 6, Chords: []string{"B", "D7", "G", "Bb7", "Eb", "Am7", "D7"}, Genre: "jazz", Duration: "4:43", BPM: 266, LearningTime: "12 weeks"},
			{Title: "Cherokee", Artist: "Ray Noble", Difficulty: 6, Chords: []string{"BbMaj7", "G7", "Cm7", "F7", "Dm7", "G7", "CMaj7"}, Genre: "jazz", Duration: "3:00", BPM: 300, LearningTime: "10 weeks"},
		},
	},
	models.LevelExpert: {
		"rock": {
			{Title: "Eruption", Artist: "Van Halen", Difficulty: 7, Chords: []string{"E", "A", "D", "G"}, Genre: "rock", Duration: "1:42", BPM: 100, LearningTime: "6 months"},
			{Title: "YYZ", Artist: "Rush", Difficulty: 7, Chords: []string{"E", "F#", "G#", "A"}, Genre: "rock", Duration: "4:24", BPM: 88, LearningTime: "8 months"},
			{Title: "For the Love of God", Artist: "Steve Vai", Difficulty: 7, Chords: []string{"Em", "C", "G", "D"}, Genre: "rock", Duration: "6:02", BPM: 65, LearningTime: "1 year"},
		},
		"classical": {
			{Title: "Cello Suite No. 1", Artist: "Bach", Difficulty: 7, Chords: []string{"G", "D", "C"}, Genre: "classical", Duration: "18:00", BPM: 60, LearningTime: "1 year"},
			{Title: "Caprice No. 24", Artist: "Paganini", Difficulty: 7, Chords: []string{"Am", "E", "F", "G"}, Genre: "classical", Duration: "4:30", BPM: 120, LearningTime: "2 years"},
			{Title: "Chaconne", Artist: "Bach", Difficulty: 7, Chords: []string{"Dm", "A", "Bb", "F"}, Genre: "classical", Duration: "13:30", BPM: 60, LearningTime: "2 years"},
		},
		"jazz": {
			{Title: "Giant Steps (Advanced)", Artist: "John Coltrane", Difficulty: 7, Chords: []string{"B", "D", "G", "Bb", "Eb"}, Genre: "jazz", Duration: "4:43", BPM: 266, LearningTime: "1 year"},
			{Title: "Donna Lee", Artist: "Charlie Parker", Difficulty: 7, Chords: []string{"AbMaj7", "F7", "BbMaj7", "G7", "CMaj7", "C7"}, Genre: "jazz", Duration: "2:33", BPM: 200, LearningTime: "8 months"},
		},
		"metal": {
			{Title: "Technical Difficulties", Artist: "Paul Gilbert", Difficulty: 7, Chords: []string{"Em", "G", "D", "C"}, Genre: "metal", Duration: "3:14", BPM: 140, LearningTime: "10 months"},
			{Title: "The Dance of Eternity", Artist: "Dream Theater", Difficulty: 7, Chords: []string{"Em", "C", "G", "D"}, Genre: "metal", Duration: "6:13", BPM: 120, LearningTime: "1 year"},
		},
	},
}

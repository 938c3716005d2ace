package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type StudyStyle string

const (
	StylePomodoro      StudyStyle = "Pomodoro"
	StyleDeepWork      StudyStyle = "Deep Work"
	StyleShortSessions StudyStyle = "Short Sessions"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"Easy": true, "Medium": true, "Hard": true,
}

// ValidStudyStyles is the canonical set of accepted study style strings.
var ValidStudyStyles = map[string]bool{
	"Pomodoro": true, "Deep Work": true, "Short Sessions": true,
}

package seed

// Dataset is the static document a seed run consumes: quizzes with their
// questions and options, in the order they should be inserted.
type Dataset struct {
	Quizzes []QuizDefinition `json:"quizzes"`
}

type QuizDefinition struct {
	Title     string               `json:"title"`
	Questions []QuestionDefinition `json:"questions"`
}

type QuestionDefinition struct {
	Text    string             `json:"text"`
	Options []OptionDefinition `json:"options"`
}

type OptionDefinition struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

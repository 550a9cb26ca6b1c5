package services

import (
	"testing"

	"quizhub/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Quiz{}, &models.Question{}, &models.Option{}))
	return db
}

// seedTestQuiz creates a quiz with three questions whose correct options sit
// at positions 1, 1 and 2. Returns the quiz ID.
func seedTestQuiz(t *testing.T, svc *QuizService) uint {
	t.Helper()

	quiz, err := svc.CreateQuiz(&CreateQuizRequest{Title: "Test Quiz"})
	require.NoError(t, err)

	questions := []AddQuestionRequest{
		{
			Text: "What is 2 + 2?",
			Options: []OptionRequest{
				{Text: "3"}, {Text: "4", IsCorrect: true}, {Text: "5"}, {Text: "6"},
			},
		},
		{
			Text: "What is the capital of France?",
			Options: []OptionRequest{
				{Text: "London"}, {Text: "Paris", IsCorrect: true}, {Text: "Berlin"}, {Text: "Madrid"},
			},
		},
		{
			Text: "What is 10 / 2?",
			Options: []OptionRequest{
				{Text: "3"}, {Text: "4"}, {Text: "5", IsCorrect: true}, {Text: "6"},
			},
		},
	}
	for i := range questions {
		_, err := svc.AddQuestion(quiz.ID, &questions[i])
		require.NoError(t, err)
	}

	return quiz.ID
}

// answersFor builds a submission selecting the option at the given position
// for each question, in question order.
func answersFor(t *testing.T, svc *QuizService, quizID uint, positions ...int) []AnswerSubmission {
	t.Helper()

	questions, err := svc.GetQuestionsForQuiz(quizID)
	require.NoError(t, err)
	require.Len(t, questions, len(positions))

	answers := make([]AnswerSubmission, 0, len(positions))
	for i, pos := range positions {
		answers = append(answers, AnswerSubmission{
			QuestionID:       questions[i].ID,
			SelectedOptionID: questions[i].Options[pos].ID,
		})
	}
	return answers
}

func submission(answers []AnswerSubmission) *SubmitQuizRequest {
	return &SubmitQuizRequest{Answers: &answers}
}

func TestCreateQuiz(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	quiz, err := svc.CreateQuiz(&CreateQuizRequest{Title: "General Knowledge"})
	require.NoError(t, err)
	assert.NotZero(t, quiz.ID)
	assert.Equal(t, "General Knowledge", quiz.Title)
}

func TestCreateQuiz_BlankTitle(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	_, err := svc.CreateQuiz(&CreateQuizRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetQuiz_NotFound(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	_, err := svc.GetQuiz(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListQuizzes(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	first, err := svc.CreateQuiz(&CreateQuizRequest{Title: "First"})
	require.NoError(t, err)
	second, err := svc.CreateQuiz(&CreateQuizRequest{Title: "Second"})
	require.NoError(t, err)

	quizzes, err := svc.ListQuizzes()
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, QuizSummary{ID: first.ID, Title: "First"}, quizzes[0])
	assert.Equal(t, QuizSummary{ID: second.ID, Title: "Second"}, quizzes[1])
}

func TestAddQuestion_CorrectOptionCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)

	quiz, err := svc.CreateQuiz(&CreateQuizRequest{Title: "Validation"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		options []OptionRequest
		wantErr bool
	}{
		{
			name:    "zero correct",
			options: []OptionRequest{{Text: "A"}, {Text: "B"}},
			wantErr: true,
		},
		{
			name: "two correct",
			options: []OptionRequest{
				{Text: "A", IsCorrect: true}, {Text: "B", IsCorrect: true}, {Text: "C"},
			},
			wantErr: true,
		},
		{
			name:    "single option correct",
			options: []OptionRequest{{Text: "A", IsCorrect: true}},
			wantErr: false,
		},
		{
			name: "exactly one correct",
			options: []OptionRequest{
				{Text: "A"}, {Text: "B", IsCorrect: true}, {Text: "C"}, {Text: "D"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionID, err := svc.AddQuestion(quiz.ID, &AddQuestionRequest{
				Text:    "Pick one",
				Options: tt.options,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, questionID)
			}
		})
	}

	// Rejected requests must not leave partial rows behind.
	var questionCount int64
	require.NoError(t, db.Model(&models.Question{}).Count(&questionCount).Error)
	assert.EqualValues(t, 2, questionCount)
}

func TestAddQuestion_QuizNotFound(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	_, err := svc.AddQuestion(999, &AddQuestionRequest{
		Text:    "Orphan question",
		Options: []OptionRequest{{Text: "A", IsCorrect: true}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetQuestionsForQuiz_Order(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	questions, err := svc.GetQuestionsForQuiz(quizID)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, "What is 2 + 2?", questions[0].Text)
	assert.Equal(t, "What is the capital of France?", questions[1].Text)
	assert.Equal(t, "What is 10 / 2?", questions[2].Text)

	require.Len(t, questions[0].Options, 4)
	assert.Equal(t, "3", questions[0].Options[0].Text)
	assert.Equal(t, "6", questions[0].Options[3].Text)
}

func TestGetQuestionsForQuiz_NotFound(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	_, err := svc.GetQuestionsForQuiz(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitQuiz_AllCorrect(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	result, err := svc.SubmitQuiz(quizID, submission(answersFor(t, svc, quizID, 1, 1, 2)))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 100.0, result.Percentage)
	for _, res := range result.Results {
		assert.True(t, res.IsCorrect)
	}
}

func TestSubmitQuiz_AllWrong(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	result, err := svc.SubmitQuiz(quizID, submission(answersFor(t, svc, quizID, 0, 0, 0)))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 0.0, result.Percentage)
}

func TestSubmitQuiz_PartialWithOmittedAnswer(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	// Answer the first two correctly, omit the third entirely.
	answers := answersFor(t, svc, quizID, 1, 1, 2)[:2]
	result, err := svc.SubmitQuiz(quizID, submission(answers))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 66.67, result.Percentage)

	require.Len(t, result.Results, 3)
	omitted := result.Results[2]
	assert.Equal(t, "Not Answered", omitted.UserAnswer)
	assert.Equal(t, "5", omitted.CorrectAnswer)
	assert.False(t, omitted.IsCorrect)
}

func TestSubmitQuiz_ResultDetail(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	result, err := svc.SubmitQuiz(quizID, submission(answersFor(t, svc, quizID, 1, 0, 2)))
	require.NoError(t, err)

	require.Len(t, result.Results, 3)
	assert.Equal(t, "What is 2 + 2?", result.Results[0].QuestionText)
	assert.Equal(t, "4", result.Results[0].UserAnswer)
	assert.Equal(t, "4", result.Results[0].CorrectAnswer)
	assert.True(t, result.Results[0].IsCorrect)

	assert.Equal(t, "London", result.Results[1].UserAnswer)
	assert.Equal(t, "Paris", result.Results[1].CorrectAnswer)
	assert.False(t, result.Results[1].IsCorrect)
}

func TestSubmitQuiz_Idempotent(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	answers := answersFor(t, svc, quizID, 1, 0, 2)
	first, err := svc.SubmitQuiz(quizID, submission(answers))
	require.NoError(t, err)
	second, err := svc.SubmitQuiz(quizID, submission(answers))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSubmitQuiz_ScoreMonotonic(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	all := answersFor(t, svc, quizID, 1, 1, 2)

	prevScore := -1
	for n := 0; n <= len(all); n++ {
		result, err := svc.SubmitQuiz(quizID, submission(all[:n]))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Score, prevScore,
			"adding a correct answer must never decrease the score")
		prevScore = result.Score
	}
	assert.Equal(t, 3, prevScore)
}

func TestSubmitQuiz_EmptyAnswers(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	result, err := svc.SubmitQuiz(quizID, submission([]AnswerSubmission{}))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 3, result.Total)
	for _, res := range result.Results {
		assert.Equal(t, "Not Answered", res.UserAnswer)
	}
}

func TestSubmitQuiz_MissingAnswersField(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	_, err := svc.SubmitQuiz(quizID, &SubmitQuizRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitQuiz_QuizNotFound(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	_, err := svc.SubmitQuiz(999, submission([]AnswerSubmission{{QuestionID: 1, SelectedOptionID: 1}}))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitQuiz_NoQuestions(t *testing.T) {
	svc := NewQuizService(newTestDB(t))

	quiz, err := svc.CreateQuiz(&CreateQuizRequest{Title: "Empty"})
	require.NoError(t, err)

	result, err := svc.SubmitQuiz(quiz.ID, submission([]AnswerSubmission{}))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0.0, result.Percentage)
	assert.Empty(t, result.Results)
}

func TestSubmitQuiz_QuestionWithoutCorrectOption(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)

	quiz, err := svc.CreateQuiz(&CreateQuizRequest{Title: "Broken"})
	require.NoError(t, err)

	// Write past the service layer to violate the invariant.
	question := models.Question{QuizID: quiz.ID, Text: "No right answer"}
	require.NoError(t, db.Create(&question).Error)
	option := models.Option{QuestionID: question.ID, Text: "Only choice"}
	require.NoError(t, db.Create(&option).Error)

	result, err := svc.SubmitQuiz(quiz.ID, submission([]AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionID: option.ID},
	}))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Only choice", result.Results[0].UserAnswer)
	assert.Equal(t, "N/A", result.Results[0].CorrectAnswer)
	assert.False(t, result.Results[0].IsCorrect)
}

func TestSubmitQuiz_DuplicateQuestionLastWins(t *testing.T) {
	svc := NewQuizService(newTestDB(t))
	quizID := seedTestQuiz(t, svc)

	questions, err := svc.GetQuestionsForQuiz(quizID)
	require.NoError(t, err)

	// Wrong answer first, correct answer second for the same question.
	answers := []AnswerSubmission{
		{QuestionID: questions[0].ID, SelectedOptionID: questions[0].Options[0].ID},
		{QuestionID: questions[0].ID, SelectedOptionID: questions[0].Options[1].ID},
	}
	result, err := svc.SubmitQuiz(quizID, submission(answers))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, "4", result.Results[0].UserAnswer)
}

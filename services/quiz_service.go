package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"quizhub/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title string `json:"title" binding:"required,max=100"`
}

type AddQuestionRequest struct {
	Text    string          `json:"text" binding:"required,max=300"`
	Options []OptionRequest `json:"options" binding:"required,min=1,dive"`
}

type OptionRequest struct {
	Text      string `json:"text" binding:"required,max=200"`
	IsCorrect bool   `json:"is_correct"`
}

type SubmitQuizRequest struct {
	// Pointer so an absent "answers" key is rejected while an explicit
	// empty array is a valid zero-score submission.
	Answers *[]AnswerSubmission `json:"answers" binding:"required"`
}

type AnswerSubmission struct {
	QuestionID       uint `json:"questionId"`
	SelectedOptionID uint `json:"selectedOptionId"`
}

// QuizSummary is the read shape for quiz listings and lookups.
type QuizSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// QuestionView is a question as served to quiz takers. Option correctness is
// deliberately absent from this shape.
type QuestionView struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
}

type OptionView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionResult struct {
	QuestionID    uint   `json:"questionId"`
	QuestionText  string `json:"questionText"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type SubmissionResult struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage float64          `json:"percentage"`
	Results    []QuestionResult `json:"results"`
}

// Sentinels surfaced in submission results when no option text applies.
const (
	notAnsweredText     = "Not Answered"
	noCorrectOptionText = "N/A"
)

func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	quiz := models.Quiz{Title: req.Title}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	return &quiz, nil
}

func (s *QuizService) ListQuizzes() ([]QuizSummary, error) {
	var quizzes []models.Quiz
	if err := s.db.Order("id").Find(&quizzes).Error; err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	summaries := make([]QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, QuizSummary{ID: quiz.ID, Title: quiz.Title})
	}
	return summaries, nil
}

func (s *QuizService) GetQuiz(quizID uint) (*QuizSummary, error) {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}
	return &QuizSummary{ID: quiz.ID, Title: quiz.Title}, nil
}

// AddQuestion creates a question with its options under one transaction.
// Exactly one option must be marked correct; this is the only write path that
// enforces the invariant, so it rejects before any row is written.
func (s *QuizService) AddQuestion(quizID uint, req *AddQuestionRequest) (uint, error) {
	if _, err := s.getQuiz(quizID); err != nil {
		return 0, err
	}

	correctCount := 0
	for _, opt := range req.Options {
		if opt.IsCorrect {
			correctCount++
		}
	}
	if correctCount != 1 {
		return 0, fmt.Errorf("%w: exactly one option must be marked as correct", ErrValidation)
	}

	question := models.Question{
		QuizID: quizID,
		Text:   req.Text,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for _, opt := range req.Options {
			option := models.Option{
				QuestionID: question.ID,
				Text:       opt.Text,
				IsCorrect:  opt.IsCorrect,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create question: %w", err)
	}

	return question.ID, nil
}

// GetQuestionsForQuiz returns the quiz's questions in insertion order, with
// option correctness stripped.
func (s *QuizService) GetQuestionsForQuiz(quizID uint) ([]QuestionView, error) {
	if _, err := s.getQuiz(quizID); err != nil {
		return nil, err
	}

	questions, err := s.questionsWithOptions(quizID)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, question := range questions {
		options := make([]OptionView, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, OptionView{ID: option.ID, Text: option.Text})
		}
		views = append(views, QuestionView{
			ID:      question.ID,
			Text:    question.Text,
			Options: options,
		})
	}
	return views, nil
}

// SubmitQuiz scores a set of answers against the quiz's stored correct
// options. Scoring reads only; resubmitting the same answers yields the same
// result.
func (s *QuizService) SubmitQuiz(quizID uint, req *SubmitQuizRequest) (*SubmissionResult, error) {
	if _, err := s.getQuiz(quizID); err != nil {
		return nil, err
	}
	if req.Answers == nil {
		return nil, fmt.Errorf("%w: missing answers", ErrValidation)
	}

	questions, err := s.questionsWithOptions(quizID)
	if err != nil {
		return nil, err
	}

	// Duplicate questionIds are not deduplicated; a later entry overwrites
	// an earlier one for the same question.
	selected := make(map[uint]uint, len(*req.Answers))
	for _, answer := range *req.Answers {
		selected[answer.QuestionID] = answer.SelectedOptionID
	}

	score := 0
	results := make([]QuestionResult, 0, len(questions))
	for _, question := range questions {
		correct := question.CorrectOption()
		selectedID, answered := selected[question.ID]

		isCorrect := false
		if correct != nil && answered && selectedID == correct.ID {
			score++
			isCorrect = true
		}

		userAnswer := notAnsweredText
		if answered {
			for _, option := range question.Options {
				if option.ID == selectedID {
					userAnswer = option.Text
					break
				}
			}
		}

		correctAnswer := noCorrectOptionText
		if correct != nil {
			correctAnswer = correct.Text
		}

		results = append(results, QuestionResult{
			QuestionID:    question.ID,
			QuestionText:  question.Text,
			UserAnswer:    userAnswer,
			CorrectAnswer: correctAnswer,
			IsCorrect:     isCorrect,
		})
	}

	total := len(questions)
	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(score)/float64(total)*100*100) / 100
	}

	return &SubmissionResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Results:    results,
	}, nil
}

func (s *QuizService) getQuiz(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: quiz %d", ErrNotFound, quizID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quiz %d: %w", quizID, err)
	}
	return &quiz, nil
}

func (s *QuizService) questionsWithOptions(quizID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("quiz_id = ?", quizID).
		Order("id").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id")
		}).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions for quiz %d: %w", quizID, err)
	}
	return questions, nil
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"quizhub/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req)
	if err != nil {
		respondError(c, err, "Failed to create quiz")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": quiz.ID, "title": quiz.Title})
}

func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		respondError(c, err, "Failed to fetch quizzes")
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		return
	}

	quiz, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		respondError(c, err, "Failed to fetch quiz")
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) AddQuestion(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		return
	}

	var req services.AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unknown quiz outranks a bad body; the lookup decides 404 vs 400.
		if _, lookupErr := h.quizService.GetQuiz(quizID); lookupErr != nil {
			respondError(c, lookupErr, "Failed to add question")
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text or options"})
		return
	}

	questionID, err := h.quizService.AddQuestion(quizID, &req)
	if err != nil {
		respondError(c, err, "Failed to add question")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Question added successfully",
		"question_id": questionID,
	})
}

func (h *QuizHandler) GetQuestions(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		return
	}

	questions, err := h.quizService.GetQuestionsForQuiz(quizID)
	if err != nil {
		respondError(c, err, "Failed to fetch questions")
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	quizID, ok := quizIDParam(c)
	if !ok {
		return
	}

	var req services.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, lookupErr := h.quizService.GetQuiz(quizID); lookupErr != nil {
			respondError(c, lookupErr, "Failed to score submission")
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing answers"})
		return
	}

	result, err := h.quizService.SubmitQuiz(quizID, &req)
	if err != nil {
		respondError(c, err, "Failed to score submission")
		return
	}

	c.JSON(http.StatusOK, result)
}

func quizIDParam(c *gin.Context) (uint, bool) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return 0, false
	}
	return uint(quizID), true
}

// respondError maps service errors to status codes. Unknown errors are logged
// server-side and reported to the client only as a generic message.
func respondError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
